// Package plan turns an ordered collection of geometries into the sequence
// of pen movements a plotting engine executes.
package plan

import (
	"math"

	"github.com/tkoval83/axidraw/internal/geom"
)

// DefaultSpeed is the speed hint attached to every segment the builder emits.
const DefaultSpeed = 1

// Segment is one atomic pen movement. PenUp means the move happens with the
// instrument lifted (non-marking transit); otherwise the segment is drawn.
type Segment struct {
	From  geom.Point
	To    geom.Point
	PenUp bool
	Speed int
}

// Plan is the materialized movement graph for a whole drawing. Edges, read
// in order, is the exact pen trajectory. Nodes is the flattening of every
// edge's endpoints in emission order; it is derived alongside Edges and is
// not an independent source of truth.
type Plan struct {
	Nodes []geom.Point
	Edges []Segment
}

// Bounds returns the axis-aligned extent of every node the pen visits.
func (p Plan) Bounds() (geom.Bounds, error) {
	return geom.MultiPoint{Points: p.Nodes}.Bounds()
}

// DrawDistance is the total length of pen-down segments.
func (p Plan) DrawDistance() float64 { return p.distance(false) }

// TravelDistance is the total length of pen-up transits.
func (p Plan) TravelDistance() float64 { return p.distance(true) }

func (p Plan) distance(penUp bool) float64 {
	total := 0.0
	for _, e := range p.Edges {
		if e.PenUp == penUp {
			total += dist(e.From, e.To)
		}
	}
	return total
}

// Build folds geoms into a Plan in input order. Each geometry contributes
// one drawn segment per consecutive point pair; a pen-up transit connects
// the plan's previous position to the next point sequence. Polygons plot
// their exterior ring first, then each interior ring, with a transit between
// rings. The fold is fail-fast: the first invalid geometry aborts the build
// and no partial plan is returned.
func Build(geoms []geom.Geometry) (Plan, error) {
	var p Plan
	for _, g := range geoms {
		if err := g.Validate(); err != nil {
			return Plan{}, err
		}
		for _, seq := range pointSequences(g) {
			p.appendSequence(seq)
		}
	}
	return p, nil
}

// pointSequences lists the pen strokes a geometry plots: one per ring for
// polygons, a single coordinate run for everything else.
func pointSequences(g geom.Geometry) [][]geom.Point {
	switch t := g.(type) {
	case geom.Polygon:
		return ringSequences(t)
	case geom.MultiPolygon:
		var out [][]geom.Point
		for _, pg := range t.Polygons {
			out = append(out, ringSequences(pg)...)
		}
		return out
	default:
		return [][]geom.Point{g.Coords()}
	}
}

func ringSequences(pg geom.Polygon) [][]geom.Point {
	out := make([][]geom.Point, 0, 1+len(pg.Interiors))
	out = append(out, pg.Exterior.Points)
	for _, r := range pg.Interiors {
		out = append(out, r.Points)
	}
	return out
}

// appendSequence emits the segments for one stroke: a pen-up transit from
// the plan's last position (when one exists), then a drawn segment per
// consecutive point pair. Nodes and edges are accumulated in the same pass
// so they can never diverge.
func (p *Plan) appendSequence(seq []geom.Point) {
	if len(seq) == 0 {
		return
	}
	if n := len(p.Edges); n > 0 {
		p.appendEdge(Segment{
			From:  p.Edges[n-1].To,
			To:    seq[0],
			PenUp: true,
			Speed: DefaultSpeed,
		})
	}
	for i := 1; i < len(seq); i++ {
		p.appendEdge(Segment{
			From:  seq[i-1],
			To:    seq[i],
			Speed: DefaultSpeed,
		})
	}
}

func (p *Plan) appendEdge(s Segment) {
	p.Edges = append(p.Edges, s)
	p.Nodes = append(p.Nodes, s.From, s.To)
}

func dist(a, b geom.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
