package material

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo Texture // Metal color
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material.
// Unlike a renderer, fuzz is not clamped here; out-of-range values fail validation.
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: NewConstantTexture(albedo), Fuzz: fuzz}
}

// NewTexturedMetal creates a metal whose color comes from a texture
func NewTexturedMetal(albedo Texture, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Kind() string { return KindMetal }
func (m *Metal) isMaterial()  {}

// Validate checks albedo and fuzz
func (m *Metal) Validate() error {
	if err := validateTexture(KindMetal, "albedo", m.Albedo); err != nil {
		return err
	}
	return validateUnit(KindMetal, "fuzz", m.Fuzz)
}

// MarshalJSON writes the material with its kind discriminant
func (m *Metal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string  `json:"kind"`
		Albedo Texture `json:"albedo"`
		Fuzz   float64 `json:"fuzz"`
	}{KindMetal, m.Albedo, m.Fuzz})
}
