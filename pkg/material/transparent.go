package material

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Transparent is a rough refractive material, distinct from the ideal Dielectric
type Transparent struct {
	Albedo    Texture
	Eta       float64 // index of refraction
	Roughness float64 // microfacet roughness in [0,1]
}

// NewTransparent creates a rough refractive material with a solid tint
func NewTransparent(albedo core.Vec3, eta, roughness float64) *Transparent {
	return &Transparent{Albedo: NewConstantTexture(albedo), Eta: eta, Roughness: roughness}
}

func (t *Transparent) Kind() string { return KindTransparent }
func (t *Transparent) isMaterial()  {}

// Validate checks albedo, eta and roughness
func (t *Transparent) Validate() error {
	if err := validateTexture(KindTransparent, "albedo", t.Albedo); err != nil {
		return err
	}
	if err := validatePositive(KindTransparent, "eta", t.Eta); err != nil {
		return err
	}
	return validateUnit(KindTransparent, "roughness", t.Roughness)
}

// MarshalJSON writes the material with its kind discriminant
func (t *Transparent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      string  `json:"kind"`
		Albedo    Texture `json:"albedo"`
		Eta       float64 `json:"eta"`
		Roughness float64 `json:"roughness"`
	}{KindTransparent, t.Albedo, t.Eta, t.Roughness})
}
