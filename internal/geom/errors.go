package geom

import "errors"

// Sentinel errors for geometry operations. Callers match them with errors.Is.
var (
	// ErrEmptyGeometry is returned when bounds are requested on a geometry
	// with no points at all.
	ErrEmptyGeometry = errors.New("geom: empty geometry")

	// ErrInvalidLineString is returned for a polyline with fewer than 2 points.
	ErrInvalidLineString = errors.New("geom: line string requires at least 2 points")

	// ErrInvalidPolygon is returned when a polygon ring fails the polyline
	// invariant.
	ErrInvalidPolygon = errors.New("geom: polygon ring requires at least 2 points")

	// Reserved for transforms that may become fallible (degenerate matrices,
	// non-finite factors). No current code path produces them.
	ErrTranslation = errors.New("geom: translation failed")
	ErrRotation    = errors.New("geom: rotation failed")
	ErrScaling     = errors.New("geom: scaling failed")
)
