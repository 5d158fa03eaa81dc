package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshSegments rebuilds the segment inspector table from the current plan.
func (m *Model) refreshSegments() {
	if len(m.p.Edges) == 0 {
		m.showSegments = false
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "from", Width: 18},
		{Title: "to", Width: 18},
		{Title: "pen", Width: 5},
		{Title: "speed", Width: 6},
	}
	rows := make([]table.Row, 0, len(m.p.Edges))
	for i, e := range m.p.Edges {
		pen := "down"
		if e.PenUp {
			pen = "up"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f, %.2f", e.From.X, e.From.Y),
			fmt.Sprintf("%.2f, %.2f", e.To.X, e.To.Y),
			pen,
			fmt.Sprintf("%d", e.Speed),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
