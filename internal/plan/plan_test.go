package plan

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tkoval83/axidraw/internal/geom"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func checkNodesMatchEdges(t *testing.T, p Plan) {
	t.Helper()
	var want []geom.Point
	for _, e := range p.Edges {
		want = append(want, e.From, e.To)
	}
	if !reflect.DeepEqual(p.Nodes, want) {
		t.Fatalf("nodes = %v; want flattening of edges %v", p.Nodes, want)
	}
}

func TestBuild_PreservesInputOrder(t *testing.T) {
	geoms := []geom.Geometry{
		geom.Polyline{Points: []geom.Point{pt(0, 0), pt(1, 0)}},
		geom.Polyline{Points: []geom.Point{pt(5, 5), pt(6, 5)}},
	}
	p, err := Build(geoms)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []Segment{
		{From: pt(0, 0), To: pt(1, 0), Speed: 1},
		{From: pt(1, 0), To: pt(5, 5), PenUp: true, Speed: 1},
		{From: pt(5, 5), To: pt(6, 5), Speed: 1},
	}
	if !reflect.DeepEqual(p.Edges, want) {
		t.Fatalf("edges = %v; want %v", p.Edges, want)
	}
	checkNodesMatchEdges(t, p)
}

func TestBuild_PolygonRings(t *testing.T) {
	pg := geom.Polygon{
		Exterior:  geom.Polyline{Points: []geom.Point{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 0)}},
		Interiors: []geom.Polyline{{Points: []geom.Point{pt(1, 1), pt(2, 1), pt(1, 1)}}},
	}
	p, err := Build([]geom.Geometry{pg})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// 3 drawn exterior edges, 1 transit into the hole, 2 drawn hole edges
	if len(p.Edges) != 6 {
		t.Fatalf("got %d edges; want 6: %v", len(p.Edges), p.Edges)
	}
	transit := p.Edges[3]
	if !transit.PenUp || transit.From != pt(0, 0) || transit.To != pt(1, 1) {
		t.Fatalf("ring transit = %+v", transit)
	}
	for i, e := range p.Edges {
		if i != 3 && e.PenUp {
			t.Fatalf("edge %d unexpectedly pen-up: %+v", i, e)
		}
	}
	checkNodesMatchEdges(t, p)
}

func TestBuild_MultiPolygonLiftsBetweenPolygons(t *testing.T) {
	mp := geom.MultiPolygon{Polygons: []geom.Polygon{
		{Exterior: geom.Polyline{Points: []geom.Point{pt(0, 0), pt(1, 0), pt(0, 0)}}},
		{Exterior: geom.Polyline{Points: []geom.Point{pt(5, 5), pt(6, 5), pt(5, 5)}}},
	}}
	p, err := Build([]geom.Geometry{mp})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var transits int
	for _, e := range p.Edges {
		if e.PenUp {
			transits++
		}
	}
	if transits != 1 {
		t.Fatalf("got %d transits; want 1 between the polygons: %v", transits, p.Edges)
	}
	checkNodesMatchEdges(t, p)
}

func TestBuild_LonePointFirstCreatesNoSegments(t *testing.T) {
	geoms := []geom.Geometry{
		geom.Point{X: 9, Y: 9},
		geom.Polyline{Points: []geom.Point{pt(0, 0), pt(1, 0)}},
	}
	p, err := Build(geoms)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// the lone point has no pairs and the plan had no previous position, so
	// the polyline starts without a transit
	want := []Segment{{From: pt(0, 0), To: pt(1, 0), Speed: 1}}
	if !reflect.DeepEqual(p.Edges, want) {
		t.Fatalf("edges = %v; want %v", p.Edges, want)
	}
	checkNodesMatchEdges(t, p)
}

func TestBuild_FailFast(t *testing.T) {
	geoms := []geom.Geometry{
		geom.Polyline{Points: []geom.Point{pt(0, 0), pt(1, 0)}},
		geom.Polygon{Exterior: geom.Polyline{Points: []geom.Point{pt(0, 0)}}},
		geom.Polyline{Points: []geom.Point{pt(5, 5), pt(6, 5)}},
	}
	p, err := Build(geoms)
	if !errors.Is(err, geom.ErrInvalidPolygon) {
		t.Fatalf("got %v; want ErrInvalidPolygon", err)
	}
	if len(p.Edges) != 0 || len(p.Nodes) != 0 {
		t.Fatalf("partial plan returned: %+v", p)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	geoms := []geom.Geometry{
		geom.Polyline{Points: []geom.Point{pt(0, 0), pt(1, 2), pt(3, 1)}},
		geom.MultiPoint{Points: []geom.Point{pt(7, 7), pt(8, 8)}},
	}
	a, err := Build(geoms)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(geoms)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("plans differ across builds:\n%v\n%v", a, b)
	}
}

func TestPlanDistances(t *testing.T) {
	geoms := []geom.Geometry{
		geom.Polyline{Points: []geom.Point{pt(0, 0), pt(3, 4)}},
		geom.Polyline{Points: []geom.Point{pt(3, 4), pt(3, 10)}},
	}
	p, err := Build(geoms)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := p.DrawDistance(); got != 11 {
		t.Fatalf("DrawDistance = %v; want 11", got)
	}
	// transit from (3,4) to (3,4) has zero length
	if got := p.TravelDistance(); got != 0 {
		t.Fatalf("TravelDistance = %v; want 0", got)
	}
}
