package geometry

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Rect is an axis-aligned rectangle given by two opposite corners.
// The corners share exactly one coordinate, which fixes the rect's plane.
type Rect struct {
	V0, V1 core.Vec3
}

// NewRect creates a new axis-aligned rectangle
func NewRect(v0, v1 core.Vec3) *Rect {
	return &Rect{V0: v0, V1: v1}
}

func (r *Rect) Kind() string { return KindRect }
func (r *Rect) isShape()     {}

// PlaneAxis returns the index (0=X, 1=Y, 2=Z) of the degenerate axis, or -1
// when the corners do not describe an axis-aligned rect
func (r *Rect) PlaneAxis() int {
	axis := -1
	for i := 0; i < 3; i++ {
		if r.V0.Component(i) == r.V1.Component(i) {
			if axis >= 0 {
				return -1
			}
			axis = i
		}
	}
	return axis
}

// Validate requires the corners to be degenerate in exactly one axis
func (r *Rect) Validate() error {
	if err := validatePoint(KindRect, "v0", r.V0); err != nil {
		return err
	}
	if err := validatePoint(KindRect, "v1", r.V1); err != nil {
		return err
	}
	if r.PlaneAxis() < 0 {
		return core.NewValidationError(KindRect, "v0/v1", "corners %v and %v must share exactly one coordinate", r.V0, r.V1)
	}
	return nil
}

// MarshalJSON writes the shape with its kind discriminant
func (r *Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string    `json:"kind"`
		V0   core.Vec3 `json:"v0"`
		V1   core.Vec3 `json:"v1"`
	}{KindRect, r.V0, r.V1})
}
