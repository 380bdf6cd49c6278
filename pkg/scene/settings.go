package scene

import (
	"strings"

	"github.com/df07/go-scene-description/pkg/core"
)

// Settings controls the engine's output. The engine consumes every field verbatim.
type Settings struct {
	OutputDir string   `json:"output_dir"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	NSamples  int      `json:"nsamples"`  // Samples per pixel
	MaxDepth  int      `json:"max_depth"` // Maximum ray bounce depth
	MISWeight *float64 `json:"mis_weight,omitempty"`
}

// NewSettings creates settings for a width x height image
func NewSettings(outputDir string, width, height, nsamples, maxDepth int) *Settings {
	return &Settings{
		OutputDir: outputDir,
		Width:     width,
		Height:    height,
		NSamples:  nsamples,
		MaxDepth:  maxDepth,
	}
}

// WithMISWeight returns a copy with an explicit light/BRDF sampling blend
func (s *Settings) WithMISWeight(w float64) *Settings {
	cp := *s
	cp.MISWeight = &w
	return &cp
}

// ScreenSize returns the output resolution
func (s *Settings) ScreenSize() core.ScreenSize {
	return core.NewScreenSize(s.Width, s.Height)
}

// Validate checks the numeric ranges the engine relies on
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.OutputDir) == "" {
		return core.NewConfigurationError("settings.output_dir", "is required")
	}
	if s.Width < 1 {
		return core.NewConfigurationError("settings.width", "must be at least 1, got %d", s.Width)
	}
	if s.Height < 1 {
		return core.NewConfigurationError("settings.height", "must be at least 1, got %d", s.Height)
	}
	if s.NSamples < 1 {
		return core.NewConfigurationError("settings.nsamples", "must be at least 1, got %d", s.NSamples)
	}
	if s.MaxDepth < 0 {
		return core.NewConfigurationError("settings.max_depth", "must not be negative, got %d", s.MaxDepth)
	}
	if s.MISWeight != nil && !(*s.MISWeight >= 0 && *s.MISWeight <= 1) {
		return core.NewConfigurationError("settings.mis_weight", "must be in [0,1], got %g", *s.MISWeight)
	}
	return nil
}
