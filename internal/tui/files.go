package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"github.com/tkoval83/axidraw/internal/export"
	"github.com/tkoval83/axidraw/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".wkt" || ext == ".geojson" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no drawings (.wkt/.geojson/.json) in current directory"
	}
}

// loadPath loads a drawing file and rebuilds the plan.
func (m *Model) loadPath(p string) {
	m.selPath = p
	var geoms []geom.Geometry
	switch strings.ToLower(filepath.Ext(p)) {
	case ".geojson", ".json":
		g, err := geom.LoadGeoJSON(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		geoms = g
	case ".wkt":
		data, err := os.ReadFile(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		// one WKT value per non-empty line
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			g, err := geom.ParseWKT(line)
			if err != nil {
				m.status = "wkt error: " + err.Error()
				return
			}
			geoms = append(geoms, g)
		}
		if len(geoms) == 0 {
			m.status = "wkt: no geometries in file"
			return
		}
	default:
		m.status = "unsupported file type"
		return
	}
	m.drawing = geoms
	m.tolerance = 0
	m.optimized = false
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.rebuild()
	if m.hasPlan {
		m.status = fmt.Sprintf("loaded %s  shapes=%d segments=%d", filepath.Base(p), len(geoms), len(m.p.Edges))
	}
}

// exportPlan writes the current plan next to the loaded drawing (or into the
// working directory for pasted input). format is "svg" or "pdf".
func (m *Model) exportPlan(format string) {
	if !m.hasPlan {
		m.status = "nothing to export"
		return
	}
	base := "drawing"
	if m.selPath != "" {
		base = strings.TrimSuffix(filepath.Base(m.selPath), filepath.Ext(m.selPath))
	}
	out := filepath.Join(m.cwd, base+"."+format)
	var err error
	switch format {
	case "svg":
		var f *os.File
		f, err = os.Create(out)
		if err == nil {
			err = export.SVG(f, m.p, export.SVGOptions{Transits: m.showTransits})
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	case "pdf":
		err = export.PDF(out, m.p)
	}
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	m.status = "exported " + out
}
