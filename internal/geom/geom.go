// Package geom models the 2D vector shapes a pen plotter can draw and the
// operations shared by all of them: affine transforms, validation,
// simplification and bounds. All values are immutable; every operation
// returns a new value and never mutates its receiver.
package geom

import (
	"fmt"
	"math"
)

// Point is an immutable 2D coordinate, the atomic geometry.
type Point struct {
	X float64
	Y float64
}

// Bounds is an axis-aligned bounding box: Min <= Max component-wise.
type Bounds struct {
	Min Point
	Max Point
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Polyline is an ordered open curve; valid iff it has at least 2 points.
type Polyline struct {
	Points []Point
}

// Polygon is an exterior ring plus zero or more interior rings (holes).
// Rings are conventionally closed (first point equals last) but the type
// does not enforce closure.
type Polygon struct {
	Exterior  Polyline
	Interiors []Polyline
}

// MultiPoint is a homogeneous collection of points.
type MultiPoint struct {
	Points []Point
}

// MultiPolygon is a homogeneous collection of polygons.
type MultiPolygon struct {
	Polygons []Polygon
}

// Geometry is the capability set shared by every shape variant. The variant
// set is closed: Point, Polyline, Polygon, MultiPoint, MultiPolygon.
//
// Translate, Rotate and Scale are total over real inputs today but stay
// fallible so numerically degenerate transforms can fail later without an
// interface change.
type Geometry interface {
	// Translate adds (dx, dy) to every coordinate.
	Translate(dx, dy float64) (Geometry, error)
	// Rotate turns every point about origin by deg degrees, positive
	// counter-clockwise.
	Rotate(deg float64, origin Point) (Geometry, error)
	// Scale multiplies every coordinate by f. f = 0 collapses the shape to
	// the origin; that is not an error.
	Scale(f float64) (Geometry, error)
	// Coords returns the flattened point list. For Polygon this is only the
	// exterior ring.
	Coords() []Point
	// Validate reports whether the shape satisfies its invariant.
	Validate() error
	// Decompose splits the shape into atomic parts. Every current variant
	// decomposes to itself; the hook exists for future shape splitting.
	Decompose() []Geometry
	// Simplify reduces vertex count within the given tolerance. Points have
	// nothing to simplify and return themselves.
	Simplify(tol float64) (Geometry, error)
	// Bounds returns the axis-aligned bounding box.
	Bounds() (Bounds, error)
}

func rotatePoint(p Point, deg float64, origin Point) Point {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	// translate to origin, rotate, translate back
	x := p.X - origin.X
	y := p.Y - origin.Y
	return Point{
		X: origin.X + x*cos - y*sin,
		Y: origin.Y + x*sin + y*cos,
	}
}

func translatePoints(pts []Point, dx, dy float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

func rotatePoints(pts []Point, deg float64, origin Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = rotatePoint(p, deg, origin)
	}
	return out
}

func scalePoints(pts []Point, f float64) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X * f, Y: p.Y * f}
	}
	return out
}

// boundsOf runs the convex hull over pts and scans the hull vertices for the
// four extrema. A direct min/max scan would be equivalent and cheaper; the
// hull detour is kept because bounds are defined in terms of hull vertices.
func boundsOf(pts []Point) (Bounds, error) {
	if len(pts) == 0 {
		return Bounds{}, ErrEmptyGeometry
	}
	hull := ConvexHull(pts)
	b := Bounds{Min: hull[0], Max: hull[0]}
	for _, p := range hull[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b, nil
}

// Point

func (p Point) Translate(dx, dy float64) (Geometry, error) {
	return Point{X: p.X + dx, Y: p.Y + dy}, nil
}

func (p Point) Rotate(deg float64, origin Point) (Geometry, error) {
	return rotatePoint(p, deg, origin), nil
}

func (p Point) Scale(f float64) (Geometry, error) {
	return Point{X: p.X * f, Y: p.Y * f}, nil
}

func (p Point) Coords() []Point { return []Point{p} }

func (p Point) Validate() error { return nil }

func (p Point) Decompose() []Geometry { return []Geometry{p} }

func (p Point) Simplify(tol float64) (Geometry, error) { return p, nil }

func (p Point) Bounds() (Bounds, error) { return Bounds{Min: p, Max: p}, nil }

// Polyline

func (l Polyline) Translate(dx, dy float64) (Geometry, error) {
	return Polyline{Points: translatePoints(l.Points, dx, dy)}, nil
}

func (l Polyline) Rotate(deg float64, origin Point) (Geometry, error) {
	return Polyline{Points: rotatePoints(l.Points, deg, origin)}, nil
}

func (l Polyline) Scale(f float64) (Geometry, error) {
	return Polyline{Points: scalePoints(l.Points, f)}, nil
}

func (l Polyline) Coords() []Point { return l.Points }

func (l Polyline) Validate() error {
	if len(l.Points) < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidLineString, len(l.Points))
	}
	return nil
}

func (l Polyline) Decompose() []Geometry { return []Geometry{l} }

func (l Polyline) Simplify(tol float64) (Geometry, error) {
	return Polyline{Points: SimplifyPath(l.Points, tol)}, nil
}

func (l Polyline) Bounds() (Bounds, error) {
	if err := l.Validate(); err != nil {
		return Bounds{}, err
	}
	return boundsOf(l.Points)
}

// Polygon

func (pg Polygon) rings() []Polyline {
	rings := make([]Polyline, 0, 1+len(pg.Interiors))
	rings = append(rings, pg.Exterior)
	rings = append(rings, pg.Interiors...)
	return rings
}

func (pg Polygon) mapRings(f func(Polyline) (Geometry, error)) (Polygon, error) {
	ext, err := f(pg.Exterior)
	if err != nil {
		return Polygon{}, err
	}
	out := Polygon{Exterior: ext.(Polyline)}
	if len(pg.Interiors) > 0 {
		out.Interiors = make([]Polyline, len(pg.Interiors))
		for i, r := range pg.Interiors {
			g, err := f(r)
			if err != nil {
				return Polygon{}, err
			}
			out.Interiors[i] = g.(Polyline)
		}
	}
	return out, nil
}

func (pg Polygon) Translate(dx, dy float64) (Geometry, error) {
	return pg.mapRings(func(r Polyline) (Geometry, error) { return r.Translate(dx, dy) })
}

func (pg Polygon) Rotate(deg float64, origin Point) (Geometry, error) {
	return pg.mapRings(func(r Polyline) (Geometry, error) { return r.Rotate(deg, origin) })
}

func (pg Polygon) Scale(f float64) (Geometry, error) {
	return pg.mapRings(func(r Polyline) (Geometry, error) { return r.Scale(f) })
}

// Coords returns the exterior ring only; holes are reachable via Interiors.
func (pg Polygon) Coords() []Point { return pg.Exterior.Points }

func (pg Polygon) Validate() error {
	for _, r := range pg.rings() {
		if len(r.Points) < 2 {
			return fmt.Errorf("%w: got %d", ErrInvalidPolygon, len(r.Points))
		}
	}
	return nil
}

func (pg Polygon) Decompose() []Geometry { return []Geometry{pg} }

func (pg Polygon) Simplify(tol float64) (Geometry, error) {
	return pg.mapRings(func(r Polyline) (Geometry, error) { return r.Simplify(tol) })
}

func (pg Polygon) Bounds() (Bounds, error) {
	if err := pg.Validate(); err != nil {
		return Bounds{}, err
	}
	// holes lie inside the exterior, so the exterior alone decides the box
	return boundsOf(pg.Exterior.Points)
}

// MultiPoint

func (mp MultiPoint) Translate(dx, dy float64) (Geometry, error) {
	return MultiPoint{Points: translatePoints(mp.Points, dx, dy)}, nil
}

func (mp MultiPoint) Rotate(deg float64, origin Point) (Geometry, error) {
	return MultiPoint{Points: rotatePoints(mp.Points, deg, origin)}, nil
}

func (mp MultiPoint) Scale(f float64) (Geometry, error) {
	return MultiPoint{Points: scalePoints(mp.Points, f)}, nil
}

func (mp MultiPoint) Coords() []Point { return mp.Points }

func (mp MultiPoint) Validate() error { return nil }

func (mp MultiPoint) Decompose() []Geometry { return []Geometry{mp} }

func (mp MultiPoint) Simplify(tol float64) (Geometry, error) { return mp, nil }

func (mp MultiPoint) Bounds() (Bounds, error) { return boundsOf(mp.Points) }

// MultiPolygon

func (m MultiPolygon) mapPolys(f func(Polygon) (Geometry, error)) (MultiPolygon, error) {
	out := MultiPolygon{Polygons: make([]Polygon, len(m.Polygons))}
	for i, pg := range m.Polygons {
		g, err := f(pg)
		if err != nil {
			return MultiPolygon{}, err
		}
		out.Polygons[i] = g.(Polygon)
	}
	return out, nil
}

func (m MultiPolygon) Translate(dx, dy float64) (Geometry, error) {
	return m.mapPolys(func(pg Polygon) (Geometry, error) { return pg.Translate(dx, dy) })
}

func (m MultiPolygon) Rotate(deg float64, origin Point) (Geometry, error) {
	return m.mapPolys(func(pg Polygon) (Geometry, error) { return pg.Rotate(deg, origin) })
}

func (m MultiPolygon) Scale(f float64) (Geometry, error) {
	return m.mapPolys(func(pg Polygon) (Geometry, error) { return pg.Scale(f) })
}

// Coords concatenates the exterior rings of every contained polygon.
func (m MultiPolygon) Coords() []Point {
	var out []Point
	for _, pg := range m.Polygons {
		out = append(out, pg.Exterior.Points...)
	}
	return out
}

func (m MultiPolygon) Validate() error {
	for _, pg := range m.Polygons {
		if err := pg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiPolygon) Decompose() []Geometry { return []Geometry{m} }

func (m MultiPolygon) Simplify(tol float64) (Geometry, error) {
	return m.mapPolys(func(pg Polygon) (Geometry, error) { return pg.Simplify(tol) })
}

func (m MultiPolygon) Bounds() (Bounds, error) {
	if len(m.Polygons) == 0 {
		return Bounds{}, ErrEmptyGeometry
	}
	if err := m.Validate(); err != nil {
		return Bounds{}, err
	}
	return boundsOf(m.Coords())
}
