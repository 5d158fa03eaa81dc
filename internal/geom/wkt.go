package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a subset of WKT into a Geometry.
// Supported: POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((x y, ...), (hole...)), MULTIPOLYGON(((x y, ...)), ...)
func ParseWKT(wkt string) (Geometry, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		i := strings.Index(s, "(((")
		j := strings.LastIndex(s, ")))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt multipolygon: invalid")
		}
		var mp MultiPolygon
		for _, block := range splitTopLevel(s[i+1 : j+2]) {
			pg, err := parsePolygonBody(block)
			if err != nil {
				return nil, err
			}
			mp.Polygons = append(mp.Polygons, pg)
		}
		if len(mp.Polygons) == 0 {
			return nil, errors.New("wkt multipolygon: no polygons parsed")
		}
		return mp, nil
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt polygon: invalid")
		}
		return parsePolygonBody(s[i+1 : j+1])
	case strings.HasPrefix(up, "MULTIPOINT"):
		pts, err := parseParenCoords(s)
		if err != nil {
			return nil, err
		}
		return MultiPoint{Points: pts}, nil
	case strings.HasPrefix(up, "LINESTRING"):
		pts, err := parseParenCoords(s)
		if err != nil {
			return nil, err
		}
		return Polyline{Points: pts}, nil
	case strings.HasPrefix(up, "POINT"):
		pts, err := parseParenCoords(s)
		if err != nil {
			return nil, err
		}
		return pts[0], nil
	}
	return nil, errors.New("unsupported wkt type")
}

// parseParenCoords extracts "x y, x y, ..." between the outermost parens.
func parseParenCoords(s string) ([]Point, error) {
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt: missing coordinate block")
	}
	pts := parseTuples(s[i+1 : j])
	if len(pts) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return pts, nil
}

// parsePolygonBody parses "(ring),(ring)..." where each ring is "x y, x y, ...".
func parsePolygonBody(body string) (Polygon, error) {
	var pg Polygon
	for k, ring := range splitTopLevel(body) {
		pts := parseTuples(ring)
		if len(pts) == 0 {
			return Polygon{}, errors.New("wkt polygon: empty ring")
		}
		if k == 0 {
			pg.Exterior = Polyline{Points: pts}
		} else {
			pg.Interiors = append(pg.Interiors, Polyline{Points: pts})
		}
	}
	if len(pg.Exterior.Points) == 0 {
		return Polygon{}, errors.New("wkt polygon: no rings parsed")
	}
	return pg, nil
}

// splitTopLevel splits "(a),(b),(c)" into its parenthesized groups, ignoring
// nesting inside each group.
func splitTopLevel(s string) []string {
	var out []string
	depth := 0
	start := -1
	for i, ch := range s {
		switch ch {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
		}
	}
	return out
}

func parseTuples(block string) []Point {
	var out []Point
	// split by comma into tuples "x y"
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, Point{X: x, Y: y})
	}
	return out
}
