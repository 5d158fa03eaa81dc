// Package export writes a plan to vector file formats for previewing a plot
// before sending it to hardware.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/tkoval83/axidraw/internal/plan"
)

// SVGOptions controls how a plan is rendered to SVG.
type SVGOptions struct {
	// Transits draws pen-up moves as dashed grey lines.
	Transits bool
	// StrokeWidth in user units; 0 means 1.
	StrokeWidth float64
}

// SVG writes the plan as an SVG document of line elements. Pen-down segments
// are drawn solid black; pen-up transits are included only when requested.
func SVG(w io.Writer, p plan.Plan, opts SVGOptions) error {
	if len(p.Edges) == 0 {
		return errors.New("export: empty plan")
	}
	b, err := p.Bounds()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	sw := opts.StrokeWidth
	if sw == 0 {
		sw = 1
	}
	if _, err := fmt.Fprintf(w, `<?xml version="1.0"?>
<svg version="1.1" xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">
`, b.Min.X, b.Min.Y, b.Width(), b.Height()); err != nil {
		return err
	}
	for _, e := range p.Edges {
		if e.PenUp {
			if !opts.Transits {
				continue
			}
			_, err = fmt.Fprintf(w, "<line x1='%g' y1='%g' x2='%g' y2='%g' stroke='grey' stroke-width='%g' stroke-dasharray='4 2'/>\n",
				e.From.X, e.From.Y, e.To.X, e.To.Y, sw)
		} else {
			_, err = fmt.Fprintf(w, "<line x1='%g' y1='%g' x2='%g' y2='%g' stroke='black' stroke-width='%g'/>\n",
				e.From.X, e.From.Y, e.To.X, e.To.Y, sw)
		}
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(w, "</svg>\n")
	return err
}
