package scene

import (
	"context"
	"fmt"
	"strings"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/log"
)

// Accelerators the engine can build over a world
const (
	AcceleratorBVH = "bvh"
	AcceleratorNop = "nop"
)

var logger = log.New("scene")

// Project is the unit handed to the engine: a name, output settings and one
// or more scenes
type Project struct {
	Name        string
	Settings    *Settings
	Scenes      []*Scene
	Accelerator string
}

// NewProject creates a project and validates its configuration
func NewProject(name string, settings *Settings, scenes ...*Scene) (*Project, error) {
	p := &Project{Name: name, Settings: settings, Scenes: scenes, Accelerator: AcceleratorBVH}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the project, its settings and every scene
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return core.NewConfigurationError("name", "is required")
	}
	if strings.ContainsAny(p.Name, `/\`) || p.Name == "." || p.Name == ".." {
		return core.NewConfigurationError("name", "must be a single path element, got %q", p.Name)
	}
	if p.Settings == nil {
		return core.NewConfigurationError("settings", "is required")
	}
	if err := p.Settings.Validate(); err != nil {
		return err
	}
	switch p.Accelerator {
	case "", AcceleratorBVH, AcceleratorNop:
	default:
		return core.NewConfigurationError("accelerator", "must be %q or %q, got %q", AcceleratorBVH, AcceleratorNop, p.Accelerator)
	}
	if len(p.Scenes) == 0 {
		return core.NewConfigurationError("scenes", "a project needs at least one scene")
	}
	for i, s := range p.Scenes {
		if s == nil {
			return core.NewConfigurationError(fmt.Sprintf("scenes[%d]", i), "is nil")
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenes[%d]: %w", i, err)
		}
	}
	return nil
}

// ResolvedProject is the document emitted for the engine
type ResolvedProject struct {
	Name        string      `json:"name"`
	Accelerator string      `json:"accelerator"`
	Settings    *Settings   `json:"settings"`
	Scenes      []*Resolved `json:"scenes"`
}

// Resolve validates the project and resolves every scene. Cameras without an
// explicit aspect take the aspect of the output resolution.
func (p *Project) Resolve() (*ResolvedProject, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	accelerator := p.Accelerator
	if accelerator == "" {
		accelerator = AcceleratorBVH
	}
	settings := *p.Settings
	out := &ResolvedProject{Name: p.Name, Accelerator: accelerator, Settings: &settings}

	aspect := p.Settings.ScreenSize().Aspect()
	for i, s := range p.Scenes {
		resolved, err := s.Resolve()
		if err != nil {
			return nil, fmt.Errorf("scenes[%d]: %w", i, err)
		}
		if resolved.Camera != nil && resolved.Camera.Aspect == 0 {
			resolved.Camera.Aspect = aspect
		}
		out.Scenes = append(out.Scenes, resolved)
	}
	return out, nil
}

// Submitter is the engine entry point a project is handed to
type Submitter interface {
	Submit(ctx context.Context, p *Project) (string, error)
}

// Submit validates the project and hands it to the engine, returning the
// engine's token. Engine errors are passed through wrapped.
func (p *Project) Submit(ctx context.Context, engine Submitter) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	token, err := engine.Submit(ctx, p)
	if err != nil {
		return "", fmt.Errorf("failed to submit project %s: %w", p.Name, err)
	}
	logger.Noticef("submitted project %s (%d scenes): %s", p.Name, len(p.Scenes), token)
	return token, nil
}
