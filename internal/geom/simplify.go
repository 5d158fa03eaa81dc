package geom

import "math"

// perpDist is the perpendicular distance from p to the line through a and b,
// using the implicit line form ax + by + c = 0. Coincident endpoints fall
// back to the point distance.
func perpDist(p, a, b Point) float64 {
	la := b.Y - a.Y
	lb := a.X - b.X
	lc := b.X*a.Y - a.X*b.Y
	den := math.Sqrt(la*la + lb*lb)
	if den == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs(la*p.X+lb*p.Y+lc) / den
}

// SimplifyPath reduces the vertex count of pts with the Ramer-Douglas-Peucker
// algorithm. Every dropped point lies within tol of the simplified path. The
// first and last point are always kept; sequences of up to 2 points are
// returned unchanged. tol is exclusive: a point must deviate by more than tol
// to survive.
func SimplifyPath(pts []Point, tol float64) []Point {
	if len(pts) <= 2 {
		return append([]Point(nil), pts...)
	}

	end := len(pts) - 1
	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < end; i++ {
		d := perpDist(pts[i], pts[0], pts[end])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > tol {
		left := SimplifyPath(pts[:maxIdx+1], tol)
		right := SimplifyPath(pts[maxIdx:], tol)
		// drop the duplicated junction point
		return append(left, right[1:]...)
	}
	return []Point{pts[0], pts[end]}
}
