package geometry

import (
	"encoding/json"
	"math"

	"github.com/df07/go-scene-description/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2}
}

func (t *Triangle) Kind() string { return KindTriangle }
func (t *Triangle) isShape()     {}

// Normal returns the unit normal following the v0, v1, v2 winding
func (t *Triangle) Normal() core.Vec3 {
	return t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Normalize()
}

// Validate rejects degenerate (collinear) triangles
func (t *Triangle) Validate() error {
	for i, v := range []core.Vec3{t.V0, t.V1, t.V2} {
		if err := validatePoint(KindTriangle, vertexField(i), v); err != nil {
			return err
		}
	}
	if t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).LengthSquared() == 0 {
		return core.NewValidationError(KindTriangle, "vertices", "are collinear")
	}
	return nil
}

// MarshalJSON writes the shape with its kind discriminant
func (t *Triangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string    `json:"kind"`
		V0   core.Vec3 `json:"v0"`
		V1   core.Vec3 `json:"v1"`
		V2   core.Vec3 `json:"v2"`
	}{KindTriangle, t.V0, t.V1, t.V2})
}

// Pyramid is a tetrahedron given by four vertices
type Pyramid struct {
	V0, V1, V2, V3 core.Vec3
}

// NewPyramid creates a new four-vertex pyramid
func NewPyramid(v0, v1, v2, v3 core.Vec3) *Pyramid {
	return &Pyramid{V0: v0, V1: v1, V2: v2, V3: v3}
}

func (p *Pyramid) Kind() string { return KindPyramid }
func (p *Pyramid) isShape()     {}

// Volume returns the unsigned volume of the tetrahedron
func (p *Pyramid) Volume() float64 {
	a := p.V1.Subtract(p.V0)
	b := p.V2.Subtract(p.V0)
	c := p.V3.Subtract(p.V0)
	return math.Abs(a.Dot(b.Cross(c))) / 6
}

// Validate rejects flat (coplanar) pyramids
func (p *Pyramid) Validate() error {
	for i, v := range []core.Vec3{p.V0, p.V1, p.V2, p.V3} {
		if err := validatePoint(KindPyramid, vertexField(i), v); err != nil {
			return err
		}
	}
	if p.Volume() == 0 {
		return core.NewValidationError(KindPyramid, "vertices", "are coplanar")
	}
	return nil
}

// MarshalJSON writes the shape with its kind discriminant
func (p *Pyramid) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string    `json:"kind"`
		V0   core.Vec3 `json:"v0"`
		V1   core.Vec3 `json:"v1"`
		V2   core.Vec3 `json:"v2"`
		V3   core.Vec3 `json:"v3"`
	}{KindPyramid, p.V0, p.V1, p.V2, p.V3})
}

func vertexField(i int) string {
	return [...]string{"v0", "v1", "v2", "v3"}[i]
}
