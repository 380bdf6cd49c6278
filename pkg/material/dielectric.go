package material

import "encoding/json"

// Dielectric represents an ideal transparent material like glass or water
type Dielectric struct {
	IR float64 // Index of refraction (1.0 = air, 1.5 = glass, 2.4 = diamond)
}

// NewDielectric creates a new dielectric material
func NewDielectric(ir float64) *Dielectric {
	return &Dielectric{IR: ir}
}

func (d *Dielectric) Kind() string { return KindDielectric }
func (d *Dielectric) isMaterial()  {}

// Validate requires a positive index of refraction
func (d *Dielectric) Validate() error {
	return validatePositive(KindDielectric, "ir", d.IR)
}

// MarshalJSON writes the material with its kind discriminant
func (d *Dielectric) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string  `json:"kind"`
		IR   float64 `json:"ir"`
	}{KindDielectric, d.IR})
}
