package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tkoval83/axidraw/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				var geoms []geom.Geometry
				for _, line := range strings.Split(w, "\n") {
					line = strings.TrimSpace(line)
					if line == "" {
						continue
					}
					g, err := geom.ParseWKT(line)
					if err != nil {
						m.status = "wkt error: " + err.Error()
						return m, nil
					}
					geoms = append(geoms, g)
				}
				m.drawing = geoms
				m.tolerance = 0
				m.optimized = false
				m.zoom = 1.0
				m.offsetX, m.offsetY = 0, 0
				m.rebuild()
				if m.hasPlan {
					m.status = fmt.Sprintf("plotted WKT  shapes=%d segments=%d", len(geoms), len(m.p.Edges))
				}
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "t":
			m.showTransits = !m.showTransits
			m.status = fmt.Sprintf("transit moves: %v", m.showTransits)
		case "s":
			m.exportPlan("svg")
		case "e":
			m.exportPlan("pdf")
		case "o":
			m.optimized = !m.optimized
			m.rebuild()
			if m.hasPlan {
				m.status = fmt.Sprintf("travel optimization: %v  travel=%.1f", m.optimized, m.p.TravelDistance())
			}
		case "]":
			m.tolerance += toleranceStep(m.tolerance)
			m.rebuild()
			if m.hasPlan {
				m.status = fmt.Sprintf("simplify tolerance: %.3g  segments=%d", m.tolerance, len(m.p.Edges))
			}
		case "[":
			if m.tolerance > 0 {
				m.tolerance -= toleranceStep(m.tolerance - 1e-12)
				if m.tolerance < 1e-12 {
					m.tolerance = 0
				}
				m.rebuild()
				if m.hasPlan {
					m.status = fmt.Sprintf("simplify tolerance: %.3g  segments=%d", m.tolerance, len(m.p.Edges))
				}
			}
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showSegments = !m.showSegments
			if m.showSegments {
				m.refreshSegments()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	}
	// Pass messages to the segment table or list when visible
	if m.showSegments {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// toleranceStep scales the simplify step with the current magnitude so both
// coarse and fine adjustments stay usable.
func toleranceStep(tol float64) float64 {
	switch {
	case tol < 0.1:
		return 0.05
	case tol < 1:
		return 0.1
	default:
		return 0.5
	}
}
