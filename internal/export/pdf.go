package export

import (
	"errors"

	"github.com/jung-kurt/gofpdf"

	"github.com/tkoval83/axidraw/internal/geom"
	"github.com/tkoval83/axidraw/internal/plan"
)

// PDF writes the pen-down segments of the plan to a single-page A4 PDF at
// path. Coordinates are fitted to the page, preserving aspect ratio.
func PDF(path string, p plan.Plan) error {
	if len(p.Edges) == 0 {
		return errors.New("export: empty plan")
	}
	b, err := p.Bounds()
	if err != nil {
		return err
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(0.3)

	pw, ph := doc.GetPageSize()
	l, t, r, bm := doc.GetMargins()
	availW := pw - l - r
	availH := ph - t - bm

	scale := 1.0
	if b.Width() > 0 && availW/b.Width() < scale {
		scale = availW / b.Width()
	}
	if b.Height() > 0 && availH/b.Height() < scale {
		scale = availH / b.Height()
	}
	fit := func(pt geom.Point) (float64, float64) {
		return l + (pt.X-b.Min.X)*scale, t + (pt.Y-b.Min.Y)*scale
	}

	for _, e := range p.Edges {
		if e.PenUp {
			continue
		}
		x1, y1 := fit(e.From)
		x2, y2 := fit(e.To)
		doc.Line(x1, y1, x2, y2)
	}
	return doc.OutputFileAndClose(path)
}
