package scene

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// SkySolid is the only sky kind: a uniform background color
const SkySolid = "solid"

// Environment is the constant radiance seen by rays that escape the world
type Environment struct {
	L core.Vec3 `json:"l"`
}

// NewEnvironment creates a constant environment
func NewEnvironment(radiance core.Vec3) Environment {
	return Environment{L: radiance}
}

// Validate requires a finite radiance
func (e Environment) Validate() error {
	if !e.L.IsFinite() {
		return core.NewConfigurationError("environment.l", "must be finite, got %v", e.L)
	}
	return nil
}

// Sky is the older single-color background form
type Sky struct {
	Kind       string
	Background core.Vec3
}

// NewSolidSky creates a solid sky
func NewSolidSky(background core.Vec3) *Sky {
	return &Sky{Kind: SkySolid, Background: background}
}

// Validate checks the sky kind and color
func (s *Sky) Validate() error {
	if s.Kind != SkySolid {
		return core.NewConfigurationError("sky.kind", "must be %q, got %q", SkySolid, s.Kind)
	}
	if !s.Background.IsFinite() {
		return core.NewConfigurationError("sky.background", "must be finite, got %v", s.Background)
	}
	return nil
}

// Environment converts the sky into the equivalent environment
func (s *Sky) Environment() Environment {
	return NewEnvironment(s.Background)
}

// MarshalJSON writes the sky with its kind discriminant
func (s *Sky) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       string    `json:"kind"`
		Background core.Vec3 `json:"background"`
	}{s.Kind, s.Background})
}
