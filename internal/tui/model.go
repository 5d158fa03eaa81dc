package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tkoval83/axidraw/internal/geom"
	"github.com/tkoval83/axidraw/internal/plan"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Drawing and derived plan
	drawing      []geom.Geometry
	tolerance    float64 // simplify tolerance; 0 = off
	optimized    bool    // greedy travel reordering before building
	showTransits bool
	p            plan.Plan
	bounds       geom.Bounds
	hasPlan      bool

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// segment inspector
	showSegments bool
	tbl          table.Model
}

func New() Model {
	m := Model{
		showSidebar:  false,
		helpVisible:  true,
		zoom:         1.0,
		status:       "axidraw ready",
		showTransits: true,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Drawings"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON, MULTIPOLYGON). Enter plots it; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// segment table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a drawing at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// rebuild derives the plan from the loaded drawing, applying the current
// simplify tolerance and optional greedy reordering.
func (m *Model) rebuild() {
	if len(m.drawing) == 0 {
		m.hasPlan = false
		return
	}
	geoms := m.drawing
	if m.tolerance > 0 {
		simplified := make([]geom.Geometry, len(geoms))
		for i, g := range geoms {
			s, err := g.Simplify(m.tolerance)
			if err != nil {
				m.status = "simplify error: " + err.Error()
				m.hasPlan = false
				return
			}
			simplified[i] = s
		}
		geoms = simplified
	}
	if m.optimized {
		geoms = plan.Reorder(geoms)
	}
	p, err := plan.Build(geoms)
	if err != nil {
		m.status = "plan error: " + err.Error()
		m.hasPlan = false
		return
	}
	b, err := p.Bounds()
	if err != nil {
		m.status = "bounds error: " + err.Error()
		m.hasPlan = false
		return
	}
	m.p = p
	m.bounds = b
	m.hasPlan = true
	m.refreshSegments()
}
