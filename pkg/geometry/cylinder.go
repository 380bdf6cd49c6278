package geometry

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Cylinder represents a finite cylinder between two axis endpoint centers
type Cylinder struct {
	Center0 core.Vec3
	Center1 core.Vec3
	Radius  float64
}

// NewCylinder creates a new cylinder
func NewCylinder(center0, center1 core.Vec3, radius float64) *Cylinder {
	return &Cylinder{Center0: center0, Center1: center1, Radius: radius}
}

func (c *Cylinder) Kind() string { return KindCylinder }
func (c *Cylinder) isShape()     {}

// Height returns the distance between the two centers
func (c *Cylinder) Height() float64 {
	return c.Center1.Subtract(c.Center0).Length()
}

// Validate requires distinct centers and a positive radius
func (c *Cylinder) Validate() error {
	if err := validatePoint(KindCylinder, "center0", c.Center0); err != nil {
		return err
	}
	if err := validatePoint(KindCylinder, "center1", c.Center1); err != nil {
		return err
	}
	if c.Height() == 0 {
		return core.NewValidationError(KindCylinder, "center1", "must differ from center0")
	}
	return validateRadius(KindCylinder, c.Radius)
}

// MarshalJSON writes the shape with its kind discriminant
func (c *Cylinder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string    `json:"kind"`
		Center0 core.Vec3 `json:"center0"`
		Center1 core.Vec3 `json:"center1"`
		Radius  float64   `json:"radius"`
	}{KindCylinder, c.Center0, c.Center1, c.Radius})
}
