package geometry

import (
	"encoding/json"
	"math"

	"github.com/df07/go-scene-description/pkg/core"
)

// RegularPolygon is a flat regular polygon in the local XY plane, facing +Z.
// Orientation in the scene comes from the enclosing transform stack.
type RegularPolygon struct {
	Center   core.Vec3
	Radius   float64 // circumradius
	NumSides int
}

// NewRegularPolygon creates a new regular polygon
func NewRegularPolygon(center core.Vec3, radius float64, numSides int) *RegularPolygon {
	return &RegularPolygon{Center: center, Radius: radius, NumSides: numSides}
}

func (p *RegularPolygon) Kind() string { return KindRegularPolygon }
func (p *RegularPolygon) isShape()     {}

// Vertices returns the polygon corners, the first one on the +X axis
func (p *RegularPolygon) Vertices() []core.Vec3 {
	vertices := make([]core.Vec3, p.NumSides)
	for i := range vertices {
		theta := 2 * math.Pi * float64(i) / float64(p.NumSides)
		vertices[i] = p.Center.Add(core.NewVec3(p.Radius*math.Cos(theta), p.Radius*math.Sin(theta), 0))
	}
	return vertices
}

// Area returns the polygon's area
func (p *RegularPolygon) Area() float64 {
	n := float64(p.NumSides)
	return 0.5 * n * p.Radius * p.Radius * math.Sin(2*math.Pi/n)
}

// Validate requires at least three sides and a positive radius
func (p *RegularPolygon) Validate() error {
	if err := validatePoint(KindRegularPolygon, "center", p.Center); err != nil {
		return err
	}
	if p.NumSides < 3 {
		return core.NewValidationError(KindRegularPolygon, "num_sides", "must be at least 3, got %d", p.NumSides)
	}
	return validateRadius(KindRegularPolygon, p.Radius)
}

// MarshalJSON writes the shape with its kind discriminant
func (p *RegularPolygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string    `json:"kind"`
		Center   core.Vec3 `json:"center"`
		Radius   float64   `json:"radius"`
		NumSides int       `json:"num_sides"`
	}{KindRegularPolygon, p.Center, p.Radius, p.NumSides})
}
