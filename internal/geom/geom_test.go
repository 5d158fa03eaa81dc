package geom

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestPointTransforms(t *testing.T) {
	p := Point{X: 1, Y: 2}

	g, err := p.Translate(3, -1)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got := g.(Point); got != (Point{X: 4, Y: 1}) {
		t.Fatalf("Translate = %v", got)
	}

	g, err = p.Scale(2)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if got := g.(Point); got != (Point{X: 2, Y: 4}) {
		t.Fatalf("Scale = %v", got)
	}

	// 90 degrees counter-clockwise about the origin: (1,0) -> (0,1)
	g, err = Point{X: 1, Y: 0}.Rotate(90, Point{})
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if got := g.(Point); !almostEqual(got, Point{X: 0, Y: 1}) {
		t.Fatalf("Rotate 90 = %v; want (0,1)", got)
	}

	// rotation about a non-origin point
	g, err = Point{X: 2, Y: 1}.Rotate(180, Point{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if got := g.(Point); !almostEqual(got, Point{X: 0, Y: 1}) {
		t.Fatalf("Rotate 180 about (1,1) = %v; want (0,1)", got)
	}
}

func TestScaleZeroCollapsesToOrigin(t *testing.T) {
	l := Polyline{Points: []Point{{1, 2}, {3, 4}}}
	g, err := l.Scale(0)
	if err != nil {
		t.Fatalf("Scale(0): %v", err)
	}
	for _, p := range g.Coords() {
		if p != (Point{}) {
			t.Fatalf("Scale(0) left %v; want origin", p)
		}
	}
}

func TestTransformsDoNotMutate(t *testing.T) {
	l := Polyline{Points: []Point{{1, 2}, {3, 4}}}
	if _, err := l.Translate(10, 10); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if l.Points[0] != (Point{X: 1, Y: 2}) {
		t.Fatalf("receiver mutated: %v", l.Points)
	}
}

func TestPolylineValidate(t *testing.T) {
	if err := (Polyline{Points: []Point{{0, 0}, {1, 1}}}).Validate(); err != nil {
		t.Fatalf("valid polyline rejected: %v", err)
	}
	err := (Polyline{Points: []Point{{0, 0}}}).Validate()
	if !errors.Is(err, ErrInvalidLineString) {
		t.Fatalf("1-point polyline: got %v; want ErrInvalidLineString", err)
	}
}

func TestPolygonValidate(t *testing.T) {
	ring := Polyline{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}
	pg := Polygon{Exterior: ring}
	if err := pg.Validate(); err != nil {
		t.Fatalf("valid polygon rejected: %v", err)
	}

	// a 1-point interior ring invalidates the whole polygon
	bad := Polygon{
		Exterior:  ring,
		Interiors: []Polyline{{Points: []Point{{1, 1}}}},
	}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidPolygon) {
		t.Fatalf("1-point hole: got %v; want ErrInvalidPolygon", err)
	}

	// and propagates out of a MultiPolygon
	m := MultiPolygon{Polygons: []Polygon{pg, bad}}
	if err := m.Validate(); !errors.Is(err, ErrInvalidPolygon) {
		t.Fatalf("multipolygon: got %v; want ErrInvalidPolygon", err)
	}
}

func TestBounds(t *testing.T) {
	l := Polyline{Points: []Point{{12, 32}, {45, 98}, {65, 12}, {10, 30}}}
	b, err := l.Bounds()
	if err != nil {
		t.Fatalf("Bounds: %v", err)
	}
	want := Bounds{Min: Point{X: 10, Y: 12}, Max: Point{X: 65, Y: 98}}
	if b != want {
		t.Fatalf("Bounds = %+v; want %+v", b, want)
	}
}

func TestBoundsErrors(t *testing.T) {
	if _, err := (MultiPoint{}).Bounds(); !errors.Is(err, ErrEmptyGeometry) {
		t.Fatalf("empty multipoint bounds: got %v; want ErrEmptyGeometry", err)
	}
	if _, err := (MultiPolygon{}).Bounds(); !errors.Is(err, ErrEmptyGeometry) {
		t.Fatalf("empty multipolygon bounds: got %v; want ErrEmptyGeometry", err)
	}
	if _, err := (Polyline{}).Bounds(); !errors.Is(err, ErrInvalidLineString) {
		t.Fatalf("empty polyline bounds: got %v; want ErrInvalidLineString", err)
	}
	bad := Polygon{Exterior: Polyline{Points: []Point{{0, 0}}}}
	if _, err := bad.Bounds(); !errors.Is(err, ErrInvalidPolygon) {
		t.Fatalf("invalid polygon bounds: got %v; want ErrInvalidPolygon", err)
	}
}

func TestPolygonCoordsIsExteriorOnly(t *testing.T) {
	pg := Polygon{
		Exterior:  Polyline{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 0}}},
		Interiors: []Polyline{{Points: []Point{{1, 1}, {2, 1}, {1, 1}}}},
	}
	if got := pg.Coords(); !pointsEqual(got, pg.Exterior.Points) {
		t.Fatalf("Coords = %v; want exterior ring only", got)
	}
}

func TestDecomposeIsSelf(t *testing.T) {
	geoms := []Geometry{
		Point{X: 1, Y: 1},
		Polyline{Points: []Point{{0, 0}, {1, 1}}},
		Polygon{Exterior: Polyline{Points: []Point{{0, 0}, {1, 0}, {0, 0}}}},
		MultiPoint{Points: []Point{{0, 0}}},
		MultiPolygon{},
	}
	for _, g := range geoms {
		parts := g.Decompose()
		if len(parts) != 1 {
			t.Fatalf("%T.Decompose() returned %d parts; want 1", g, len(parts))
		}
	}
}

func TestSimplifyGeometry(t *testing.T) {
	// points and multipoints are no-ops
	p := Point{X: 1, Y: 2}
	g, err := p.Simplify(10)
	if err != nil || g.(Point) != p {
		t.Fatalf("Point.Simplify = %v, %v; want identity", g, err)
	}

	// polygon rings simplify independently
	pg := Polygon{
		Exterior:  Polyline{Points: []Point{{0, 0}, {1, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}},
		Interiors: []Polyline{{Points: []Point{{0.5, 0.5}, {1, 0.5}, {1.5, 0.5}, {1.5, 1.5}, {0.5, 0.5}}}},
	}
	g, err = pg.Simplify(0)
	if err != nil {
		t.Fatalf("Polygon.Simplify: %v", err)
	}
	got := g.(Polygon)
	if len(got.Exterior.Points) != 5 {
		t.Fatalf("exterior = %v; want collinear (1,0) dropped", got.Exterior.Points)
	}
	if len(got.Interiors[0].Points) != 4 {
		t.Fatalf("interior = %v; want collinear (1,0.5) dropped", got.Interiors[0].Points)
	}
}
