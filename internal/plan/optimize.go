package plan

import "github.com/tkoval83/axidraw/internal/geom"

// Reorder returns a greedy nearest-neighbor permutation of geoms that tends
// to reduce pen-up travel: starting from the origin, the geometry whose
// first coordinate is closest to the pen's current position is plotted next,
// and the pen position advances to that geometry's last coordinate.
//
// This is an explicit opt-in step before Build, never applied implicitly:
// Build always preserves the order it is given. Ties break on the lower
// input index, so the result is deterministic. Geometries with no
// coordinates keep their relative order at the end. The input slice is not
// modified.
func Reorder(geoms []geom.Geometry) []geom.Geometry {
	out := make([]geom.Geometry, 0, len(geoms))
	remaining := make([]geom.Geometry, len(geoms))
	copy(remaining, geoms)

	var empty []geom.Geometry
	cur := geom.Point{}
	for len(remaining) > 0 {
		best := -1
		bestD := 0.0
		for i, g := range remaining {
			c := g.Coords()
			if len(c) == 0 {
				continue
			}
			d := dist(cur, c[0])
			if best == -1 || d < bestD {
				best = i
				bestD = d
			}
		}
		if best == -1 {
			empty = append(empty, remaining...)
			break
		}
		g := remaining[best]
		out = append(out, g)
		c := g.Coords()
		cur = c[len(c)-1]
		remaining = append(remaining[:best:best], remaining[best+1:]...)
	}
	return append(out, empty...)
}
