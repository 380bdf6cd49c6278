package geometry

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

func (s *Sphere) Kind() string { return KindSphere }
func (s *Sphere) isShape()     {}

// Validate checks center and radius
func (s *Sphere) Validate() error {
	if err := validatePoint(KindSphere, "center", s.Center); err != nil {
		return err
	}
	return validateRadius(KindSphere, s.Radius)
}

// MarshalJSON writes the shape with its kind discriminant
func (s *Sphere) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string    `json:"kind"`
		Center core.Vec3 `json:"center"`
		Radius float64   `json:"radius"`
	}{KindSphere, s.Center, s.Radius})
}

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1, used for motion blur
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius}
}

func (s *MovingSphere) Kind() string { return KindMovingSphere }
func (s *MovingSphere) isShape()     {}

// Validate checks centers, the time interval and radius
func (s *MovingSphere) Validate() error {
	if err := validatePoint(KindMovingSphere, "center0", s.Center0); err != nil {
		return err
	}
	if err := validatePoint(KindMovingSphere, "center1", s.Center1); err != nil {
		return err
	}
	if s.Time0 > s.Time1 {
		return core.NewValidationError(KindMovingSphere, "time0", "must not exceed time1 (%g > %g)", s.Time0, s.Time1)
	}
	return validateRadius(KindMovingSphere, s.Radius)
}

// MarshalJSON writes the shape with its kind discriminant
func (s *MovingSphere) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string    `json:"kind"`
		Center0 core.Vec3 `json:"center0"`
		Center1 core.Vec3 `json:"center1"`
		Time0   float64   `json:"time0"`
		Time1   float64   `json:"time1"`
		Radius  float64   `json:"radius"`
	}{KindMovingSphere, s.Center0, s.Center1, s.Time0, s.Time1, s.Radius})
}
