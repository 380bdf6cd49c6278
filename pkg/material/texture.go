package material

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// ConstantTexture provides a uniform color
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a new constant texture
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

func (t *ConstantTexture) Kind() string { return KindConstantTexture }
func (t *ConstantTexture) isTexture()   {}

// Validate requires finite components; colors above 1 are allowed for emitters
func (t *ConstantTexture) Validate() error {
	if !t.Color.IsFinite() {
		return core.NewValidationError(KindConstantTexture, "color", "must be finite, got %v", t.Color)
	}
	return nil
}

// MarshalJSON writes the texture with its kind discriminant
func (t *ConstantTexture) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string    `json:"kind"`
		Color core.Vec3 `json:"color"`
	}{KindConstantTexture, t.Color})
}

// CheckerTexture alternates between two sub-textures by spatial parity
type CheckerTexture struct {
	Even Texture
	Odd  Texture
}

// NewCheckerTexture creates a checker pattern of two textures
func NewCheckerTexture(even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker pattern of two constant colors
func NewCheckerColors(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewConstantTexture(even), NewConstantTexture(odd))
}

func (t *CheckerTexture) Kind() string { return KindCheckerTexture }
func (t *CheckerTexture) isTexture()   {}

// Validate checks both sub-textures
func (t *CheckerTexture) Validate() error {
	if t.Even == nil {
		return core.NewValidationError(KindCheckerTexture, "even", "is required")
	}
	if t.Odd == nil {
		return core.NewValidationError(KindCheckerTexture, "odd", "is required")
	}
	if err := t.Even.Validate(); err != nil {
		return err
	}
	return t.Odd.Validate()
}

// MarshalJSON writes the texture with its kind discriminant
func (t *CheckerTexture) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string  `json:"kind"`
		Even Texture `json:"even"`
		Odd  Texture `json:"odd"`
	}{KindCheckerTexture, t.Even, t.Odd})
}
