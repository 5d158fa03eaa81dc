package geom

import (
	"encoding/json"
	"errors"
	"os"
)

// ParseGeoJSON decodes GeoJSON into the drawing's geometry list. Supported
// geometry types: Point, MultiPoint, LineString, MultiLineString (one
// Polyline per part), Polygon, MultiPolygon, plus Feature and
// FeatureCollection wrappers.
func ParseGeoJSON(data []byte) ([]Geometry, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var out []Geometry
	add := func(g Geometry) { out = append(out, g) }

	parsePoint := func(v any) (Point, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return Point{X: x, Y: y}, true
			}
		}
		return Point{}, false
	}
	parsePoints := func(v any) ([]Point, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		var pts []Point
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts, true
	}
	parsePolygon := func(v any) (Polygon, bool) {
		arr, ok := v.([]any)
		if !ok || len(arr) == 0 {
			return Polygon{}, false
		}
		var pg Polygon
		for i, ring := range arr {
			pts, ok := parsePoints(ring)
			if !ok {
				return Polygon{}, false
			}
			if i == 0 {
				pg.Exterior = Polyline{Points: pts}
			} else {
				pg.Interiors = append(pg.Interiors, Polyline{Points: pts})
			}
		}
		return pg, true
	}

	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				add(pt)
			}
		case "MultiPoint":
			if pts, ok := parsePoints(g["coordinates"]); ok {
				add(MultiPoint{Points: pts})
			}
		case "LineString":
			if pts, ok := parsePoints(g["coordinates"]); ok {
				add(Polyline{Points: pts})
			}
		case "MultiLineString":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if pts, ok := parsePoints(el); ok {
						add(Polyline{Points: pts})
					}
				}
			}
		case "Polygon":
			if pg, ok := parsePolygon(g["coordinates"]); ok {
				add(pg)
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				var mp MultiPolygon
				for _, el := range arr {
					if pg, ok := parsePolygon(el); ok {
						mp.Polygons = append(mp.Polygons, pg)
					}
				}
				if len(mp.Polygons) > 0 {
					add(mp)
				}
			}
		case "GeometryCollection":
			if arr, ok := g["geometries"].([]any); ok {
				for _, el := range arr {
					if gm, ok := el.(map[string]any); ok {
						walkGeom(gm)
					}
				}
			}
		}
	}

	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if g, ok := fm["geometry"].(map[string]any); ok {
						walkGeom(g)
					}
				}
			}
		}
	default:
		if len(raw) > 0 {
			walkGeom(raw)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no geometries found")
	}
	return out, nil
}

// LoadGeoJSON reads a GeoJSON file into the drawing's geometry list.
func LoadGeoJSON(path string) ([]Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSON(data)
}
