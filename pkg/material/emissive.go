package material

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// DiffuseLight is an emissive material. Emission is radiance and may exceed 1.
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a new emissive material with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewConstantTexture(emission)}
}

// NewTexturedDiffuseLight creates an emitter whose radiance comes from a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

func (d *DiffuseLight) Kind() string { return KindDiffuseLight }
func (d *DiffuseLight) isMaterial()  {}

// Validate checks the emission texture
func (d *DiffuseLight) Validate() error {
	return validateTexture(KindDiffuseLight, "emit", d.Emit)
}

// MarshalJSON writes the material with its kind discriminant
func (d *DiffuseLight) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string  `json:"kind"`
		Emit Texture `json:"emit"`
	}{KindDiffuseLight, d.Emit})
}
