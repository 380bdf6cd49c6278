package geometry

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Shape kinds as they appear in documents
const (
	KindSphere         = "sphere"
	KindMovingSphere   = "moving_sphere"
	KindRect           = "rect"
	KindDisk           = "disk"
	KindCube           = "cube"
	KindCylinder       = "cylinder"
	KindTriangle       = "triangle"
	KindPyramid        = "pyramid"
	KindRegularPolygon = "regular_polygon"
	KindMesh           = "mesh"
)

// Shape is a raw geometric primitive. Shapes carry no material or transform;
// those belong to the primitive node that holds the shape.
type Shape interface {
	json.Marshaler
	// Kind returns the document discriminant
	Kind() string
	// Validate checks the shape's parameters
	Validate() error
	isShape()
}

// IsShapeKind reports whether kind names a shape variant
func IsShapeKind(kind string) bool {
	switch kind {
	case KindSphere, KindMovingSphere, KindRect, KindDisk, KindCube, KindCylinder,
		KindTriangle, KindPyramid, KindRegularPolygon, KindMesh:
		return true
	}
	return false
}

// validatePoint requires finite coordinates
func validatePoint(kind, field string, p core.Vec3) error {
	if !p.IsFinite() {
		return core.NewValidationError(kind, field, "must be finite, got %v", p)
	}
	return nil
}

// validateDirection requires a finite non-zero vector
func validateDirection(kind, field string, d core.Vec3) error {
	if err := validatePoint(kind, field, d); err != nil {
		return err
	}
	if d.IsZero() {
		return core.NewValidationError(kind, field, "must be a non-zero vector")
	}
	return nil
}

// validateRadius requires a strictly positive radius
func validateRadius(kind string, r float64) error {
	if !(r > 0) {
		return core.NewValidationError(kind, "radius", "must be positive, got %g", r)
	}
	return nil
}
