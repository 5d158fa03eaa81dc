package tui

import (
	"strings"

	"github.com/tkoval83/axidraw/internal/geom"
)

// renderPlot rasterizes the current plan into a w x h cell canvas. Pen-down
// segments are always drawn; pen-up transits only when the overlay is on.
func (m Model) renderPlot(w, h int) string {
	if !m.hasPlan {
		empty := make([]string, h)
		for i := range empty {
			empty[i] = strings.Repeat(" ", w)
		}
		return strings.Join(empty, "\n")
	}
	br := newBrailleBuf(w, h)
	for _, e := range m.p.Edges {
		if e.PenUp && !m.showTransits {
			continue
		}
		x0, y0 := m.screenXYMicro(e.From, w, h)
		x1, y1 := m.screenXYMicro(e.To, w, h)
		br.line(x0, y0, x1, y1)
	}
	return strings.Join(br.toLines(), "\n")
}

// screenXYMicro maps a plan coordinate into the 2x4 microgrid per cell,
// applying zoom about the viewport center and integer cell panning. The Y
// axis flips so plan-space "up" is screen "up". Degenerate extents (a flat
// drawing) fall back to a unit span so the drawing still lands on screen.
func (m Model) screenXYMicro(p geom.Point, w, h int) (int, int) {
	spanX := m.bounds.Width()
	if spanX == 0 {
		spanX = 1
	}
	spanY := m.bounds.Height()
	if spanY == 0 {
		spanY = 1
	}
	nx := (p.X - m.bounds.Min.X) / spanX
	ny := (p.Y - m.bounds.Min.Y) / spanY
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy
}
