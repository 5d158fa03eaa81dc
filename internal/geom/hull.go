package geom

import (
	"math"
	"sort"
)

// cross returns the z-component of (b-a) x (c-a). Positive means a->b->c is
// a counter-clockwise turn, negative clockwise, zero collinear.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func sqDist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// ConvexHull computes the convex hull of pts with a Graham scan and returns
// the hull vertices in counter-clockwise order. Duplicates and strictly
// collinear interior points are removed. Inputs of 0, 1 or 2 points are
// returned as-is (copied, in input order).
func ConvexHull(pts []Point) []Point {
	if len(pts) <= 2 {
		return append([]Point(nil), pts...)
	}

	sorted := append([]Point(nil), pts...)

	// pivot: lowest y, ties broken by lowest x
	pivot := sorted[0]
	for _, p := range sorted[1:] {
		if p.Y < pivot.Y || (p.Y == pivot.Y && p.X < pivot.X) {
			pivot = p
		}
	}

	// sort by polar angle around the pivot, ties by distance from the pivot
	sort.SliceStable(sorted, func(i, j int) bool {
		ai := math.Atan2(sorted[i].Y-pivot.Y, sorted[i].X-pivot.X)
		aj := math.Atan2(sorted[j].Y-pivot.Y, sorted[j].X-pivot.X)
		if ai != aj {
			return ai < aj
		}
		return sqDist(sorted[i], pivot) < sqDist(sorted[j], pivot)
	})

	// scan: pop while the last two stack points and the candidate turn clockwise
	stack := make([]Point, 0, len(sorted))
	stack = append(stack, sorted[0], sorted[1])
	for _, p := range sorted[2:] {
		for len(stack) >= 2 && cross(stack[len(stack)-2], stack[len(stack)-1], p) < 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}

	// collapse runs of exactly collinear points (and coincident duplicates,
	// whose cross is also zero) to their two extremes
	hull := make([]Point, 0, len(stack))
	for _, p := range stack {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) == 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}
