package material

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// DefaultGltfEta is the index of refraction the engine assumes when Eta is nil
const DefaultGltfEta = 1.5

// GltfPBR is the glTF metallic/roughness material
type GltfPBR struct {
	BaseColor Texture
	Metallic  float64  // [0,1]
	Roughness float64  // [0,1]
	Eta       *float64 // optional index of refraction
	Emit      Texture  // optional emission, black when nil
}

// NewGltfPBR creates a metallic/roughness material with a solid base color
func NewGltfPBR(baseColor core.Vec3, metallic, roughness float64) *GltfPBR {
	return &GltfPBR{
		BaseColor: NewConstantTexture(baseColor),
		Metallic:  metallic,
		Roughness: roughness,
	}
}

// WithEta returns a copy with an explicit index of refraction
func (g *GltfPBR) WithEta(eta float64) *GltfPBR {
	cp := *g
	cp.Eta = &eta
	return &cp
}

// WithEmit returns a copy with an emission texture
func (g *GltfPBR) WithEmit(emit Texture) *GltfPBR {
	cp := *g
	cp.Emit = emit
	return &cp
}

func (g *GltfPBR) Kind() string { return KindGltfPBR }
func (g *GltfPBR) isMaterial()  {}

// EffectiveEta returns Eta or the engine default
func (g *GltfPBR) EffectiveEta() float64 {
	if g.Eta == nil {
		return DefaultGltfEta
	}
	return *g.Eta
}

// Validate checks every field against its domain
func (g *GltfPBR) Validate() error {
	if err := validateTexture(KindGltfPBR, "base_color", g.BaseColor); err != nil {
		return err
	}
	if err := validateUnit(KindGltfPBR, "metallic", g.Metallic); err != nil {
		return err
	}
	if err := validateUnit(KindGltfPBR, "roughness", g.Roughness); err != nil {
		return err
	}
	if g.Eta != nil {
		if err := validatePositive(KindGltfPBR, "eta", *g.Eta); err != nil {
			return err
		}
	}
	if g.Emit != nil {
		return g.Emit.Validate()
	}
	return nil
}

// MarshalJSON writes the material with its kind discriminant
func (g *GltfPBR) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string   `json:"kind"`
		BaseColor Texture  `json:"base_color"`
		Metallic  float64  `json:"metallic"`
		Roughness float64  `json:"roughness"`
		Eta       *float64 `json:"eta,omitempty"`
		Emit      Texture  `json:"emit,omitempty"`
	}{KindGltfPBR, g.BaseColor, g.Metallic, g.Roughness, g.Eta, g.Emit})
}
