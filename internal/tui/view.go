package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	if m.showSidebar {
		m.l.SetSize(28-2, contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" axidraw ─ pen plot preview ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Plot viewport
	mapWidth := contentWidth - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapHeight := contentHeight
	canvasW := max(8, mapWidth)
	canvasH := max(4, mapHeight)

	var mapView string
	if m.showSegments {
		// Render the segment table centered in the plot area
		m.tbl.SetWidth(min(mapWidth-4, 60))
		m.tbl.SetHeight(min(mapHeight-2, 20))
		segBox := boxStyle.Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, segBox)
	} else {
		var canvas string
		if m.pasteMode {
			m.ta.SetWidth(canvasW)
			m.ta.SetHeight(min(canvasH, 12))
			canvas = m.ta.View()
		} else {
			canvas = m.renderPlot(canvasW, canvasH)
		}
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(canvas)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: help, status and plan stats
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	stats := ""
	if m.hasPlan {
		stats = dimStyle.Render(fmt.Sprintf("  seg=%d draw=%.1f travel=%.1f box=[%.1f %.1f %.1f %.1f]  ",
			len(m.p.Edges), m.p.DrawDistance(), m.p.TravelDistance(),
			m.bounds.Min.X, m.bounds.Min.Y, m.bounds.Max.X, m.bounds.Max.Y))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(stats))
	right := lipgloss.Place(spacerW+lipgloss.Width(stats), 1, lipgloss.Right, lipgloss.Center, stats)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"Tab files",
		"Enter open",
		"p paste",
		"t transits",
		"o optimize",
		"[/] simplify",
		"a segments",
		"s svg",
		"e pdf",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
