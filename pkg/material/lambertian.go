package material

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewConstantTexture(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Kind() string { return KindLambertian }
func (l *Lambertian) isMaterial()  {}

// Validate checks the albedo texture
func (l *Lambertian) Validate() error {
	return validateTexture(KindLambertian, "albedo", l.Albedo)
}

// MarshalJSON writes the material with its kind discriminant
func (l *Lambertian) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string  `json:"kind"`
		Albedo Texture `json:"albedo"`
	}{KindLambertian, l.Albedo})
}

// validateTexture checks a required texture field
func validateTexture(kind, field string, t Texture) error {
	if t == nil {
		return core.NewValidationError(kind, field, "is required")
	}
	return t.Validate()
}

// validateUnit checks that a scalar lies in [0,1]
func validateUnit(kind, field string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return core.NewValidationError(kind, field, "must be in [0,1], got %g", v)
	}
	return nil
}

// validatePositive checks that a scalar is strictly positive
func validatePositive(kind, field string, v float64) error {
	if !(v > 0) {
		return core.NewValidationError(kind, field, "must be positive, got %g", v)
	}
	return nil
}
