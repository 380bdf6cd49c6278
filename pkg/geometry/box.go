package geometry

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Cube represents an axis-aligned box given by its min and max corners
type Cube struct {
	PMin core.Vec3
	PMax core.Vec3
}

// NewCube creates a new axis-aligned box
func NewCube(pMin, pMax core.Vec3) *Cube {
	return &Cube{PMin: pMin, PMax: pMax}
}

// NewCenteredCube creates a box around center with the given half-extents
func NewCenteredCube(center, halfSize core.Vec3) *Cube {
	return NewCube(center.Subtract(halfSize), center.Add(halfSize))
}

func (c *Cube) Kind() string { return KindCube }
func (c *Cube) isShape()     {}

// Size returns the box extent along each axis
func (c *Cube) Size() core.Vec3 {
	return c.PMax.Subtract(c.PMin)
}

// Validate requires PMin < PMax on every axis
func (c *Cube) Validate() error {
	if err := validatePoint(KindCube, "p_min", c.PMin); err != nil {
		return err
	}
	if err := validatePoint(KindCube, "p_max", c.PMax); err != nil {
		return err
	}
	size := c.Size()
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return core.NewValidationError(KindCube, "p_max", "must exceed p_min on every axis (%v vs %v)", c.PMax, c.PMin)
	}
	return nil
}

// MarshalJSON writes the shape with its kind discriminant
func (c *Cube) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string    `json:"kind"`
		PMin core.Vec3 `json:"p_min"`
		PMax core.Vec3 `json:"p_max"`
	}{KindCube, c.PMin, c.PMax})
}
