package scene

import (
	"github.com/jinzhu/copier"

	"github.com/df07/go-scene-description/pkg/core"
)

// Camera describes the viewpoint the engine renders a scene from
type Camera struct {
	LookFrom    core.Vec3 `json:"look_from"`    // Eye position
	LookAt      core.Vec3 `json:"look_at"`      // Point the camera faces
	ViewUp      core.Vec3 `json:"view_up"`      // Up direction, need not be orthogonal to the view direction
	VerticalFOV float64   `json:"vertical_fov"` // Vertical field of view in degrees
	Aspect      float64   `json:"aspect,omitempty"`
	Aperture    float64   `json:"aperture"`
	FocusDist   float64   `json:"focus_dist"`
	Time0       float64   `json:"time0"` // Shutter open
	Time1       float64   `json:"time1"` // Shutter close
}

// NewCamera creates a pinhole camera with the engine's defaults for the rest:
// view up +Y, focus distance 1 and a zero-length shutter
func NewCamera(lookFrom, lookAt core.Vec3, vfov float64) *Camera {
	return &Camera{
		LookFrom:    lookFrom,
		LookAt:      lookAt,
		ViewUp:      core.NewVec3(0, 1, 0),
		VerticalFOV: vfov,
		FocusDist:   1,
	}
}

// DefaultCamera looks from the origin down -Z with a 90 degree field of view
func DefaultCamera() *Camera {
	return NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90)
}

// Validate checks the camera pose and lens parameters
func (c *Camera) Validate() error {
	for _, v := range []struct {
		name string
		vec  core.Vec3
	}{{"camera.look_from", c.LookFrom}, {"camera.look_at", c.LookAt}, {"camera.view_up", c.ViewUp}} {
		if !v.vec.IsFinite() {
			return core.NewConfigurationError(v.name, "must be finite, got %v", v.vec)
		}
	}
	if c.LookAt.Subtract(c.LookFrom).IsZero() {
		return core.NewConfigurationError("camera.look_at", "must differ from look_from")
	}
	if c.ViewUp.IsZero() {
		return core.NewConfigurationError("camera.view_up", "must be a non-zero vector")
	}
	if c.ViewUp.Cross(c.LookAt.Subtract(c.LookFrom)).IsZero() {
		return core.NewConfigurationError("camera.view_up", "must not be parallel to the view direction")
	}
	if !(c.VerticalFOV > 0 && c.VerticalFOV < 180) {
		return core.NewConfigurationError("camera.vertical_fov", "must be in (0,180), got %g", c.VerticalFOV)
	}
	if c.Aspect < 0 {
		return core.NewConfigurationError("camera.aspect", "must be positive when set, got %g", c.Aspect)
	}
	if c.Aperture < 0 {
		return core.NewConfigurationError("camera.aperture", "must not be negative, got %g", c.Aperture)
	}
	if c.Aperture > 0 && !(c.FocusDist > 0) {
		return core.NewConfigurationError("camera.focus_dist", "must be positive with a non-zero aperture, got %g", c.FocusDist)
	}
	if c.Time0 > c.Time1 {
		return core.NewConfigurationError("camera.time0", "must not exceed time1 (%g > %g)", c.Time0, c.Time1)
	}
	return nil
}

// Merge returns a copy of c with every non-zero field of override applied
func (c *Camera) Merge(override *Camera) (*Camera, error) {
	merged := *c
	if override == nil {
		return &merged, nil
	}
	if err := copier.CopyWithOption(&merged, override, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	return &merged, nil
}
