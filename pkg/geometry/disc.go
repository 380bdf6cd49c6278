package geometry

import (
	"encoding/json"

	"github.com/df07/go-scene-description/pkg/core"
)

// Disk sampler kinds understood by the engine's light sampling
const (
	SamplerUniform     = "uniform"
	SamplerRandom      = "random"
	SamplerRandomFixed = "random_fixed"
	SamplerBlueNoise   = "blue_noise"
)

// DiskSampler selects how the engine draws points on a disk when it is sampled as a light
type DiskSampler struct {
	Kind      string  `json:"kind"`
	BlockSize *[2]int `json:"block_size,omitempty"` // required for blue_noise
}

// Validate checks the sampler kind and block size
func (s *DiskSampler) Validate() error {
	switch s.Kind {
	case SamplerUniform, SamplerRandom, SamplerRandomFixed:
	case SamplerBlueNoise:
		if s.BlockSize == nil {
			return core.NewValidationError("sampler", "block_size", "is required for %s", SamplerBlueNoise)
		}
	case "":
		return core.NewValidationError("sampler", "kind", "is required")
	default:
		return core.NewValidationError("sampler", "kind", "unknown sampler %q", s.Kind)
	}
	if s.BlockSize != nil && (s.BlockSize[0] < 1 || s.BlockSize[1] < 1) {
		return core.NewValidationError("sampler", "block_size", "must be positive, got %v", *s.BlockSize)
	}
	return nil
}

// Disk represents a circular disk in 3D space
type Disk struct {
	Center  core.Vec3    // Center of the disk
	Radius  float64      // Radius of the disk
	Normal  core.Vec3    // Normal vector (pointing "up" from the disk)
	Sampler *DiskSampler // Optional light sampling strategy
}

// NewDisk creates a new disk
func NewDisk(center core.Vec3, radius float64, normal core.Vec3) *Disk {
	return &Disk{Center: center, Radius: radius, Normal: normal}
}

// WithSampler returns a copy using the given light sampler
func (d *Disk) WithSampler(sampler DiskSampler) *Disk {
	cp := *d
	cp.Sampler = &sampler
	return &cp
}

func (d *Disk) Kind() string { return KindDisk }
func (d *Disk) isShape()     {}

// Validate checks center, radius, normal and sampler
func (d *Disk) Validate() error {
	if err := validatePoint(KindDisk, "center", d.Center); err != nil {
		return err
	}
	if err := validateRadius(KindDisk, d.Radius); err != nil {
		return err
	}
	if err := validateDirection(KindDisk, "normal", d.Normal); err != nil {
		return err
	}
	if d.Sampler != nil {
		return d.Sampler.Validate()
	}
	return nil
}

// MarshalJSON writes the shape with its kind discriminant
func (d *Disk) MarshalJSON() ([]byte, error) {
	type properties struct {
		Sampler *DiskSampler `json:"sampler"`
	}
	var props *properties
	if d.Sampler != nil {
		props = &properties{Sampler: d.Sampler}
	}
	return json.Marshal(struct {
		Kind       string      `json:"kind"`
		Center     core.Vec3   `json:"center"`
		Radius     float64     `json:"radius"`
		Normal     core.Vec3   `json:"normal"`
		Properties *properties `json:"properties,omitempty"`
	}{KindDisk, d.Center, d.Radius, d.Normal, props})
}
