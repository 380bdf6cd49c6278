package scene

import (
	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/primitive"
)

// Scene kinds
const (
	KindCustom = "custom" // inline world
	KindURI    = "uri"    // externally authored scene document
)

// Import references an externally authored scene document. Transforms are
// applied to the whole imported graph and its camera.
type Import struct {
	URI        string                  `json:"uri"`
	Transforms geometry.TransformStack `json:"transforms"`
}

// Scene binds a world to a camera and its environments. A scene either holds
// an inline World, an Import, or both; camera and environments given next to
// an Import override the imported ones. Transforms apply to the whole scene,
// after every node's own transforms.
type Scene struct {
	World        *primitive.World
	Import       *Import
	Transforms   geometry.TransformStack
	Camera       *Camera
	Environments []Environment
	Sky          *Sky
}

// NewScene creates a scene around an inline world
func NewScene(world *primitive.World, camera *Camera, environments ...Environment) *Scene {
	return &Scene{World: world, Camera: camera, Environments: environments}
}

// NewImportedScene creates a scene that references an external scene document
func NewImportedScene(uri string, transforms ...geometry.Transform) *Scene {
	return &Scene{Import: &Import{URI: uri, Transforms: transforms}}
}

// Kind reports whether the scene is inline or imported
func (s *Scene) Kind() string {
	if s.World == nil && s.Import != nil {
		return KindURI
	}
	return KindCustom
}

// EffectiveEnvironments returns the explicit environments, or the sky as a
// single environment when none are given
func (s *Scene) EffectiveEnvironments() []Environment {
	if len(s.Environments) == 0 && s.Sky != nil {
		return []Environment{s.Sky.Environment()}
	}
	return s.Environments
}

// Validate checks the scene's configuration. The world graph itself is
// checked when the scene is resolved.
func (s *Scene) Validate() error {
	if s.World == nil && s.Import == nil {
		return core.NewConfigurationError("scene.world", "a scene needs an inline world or an imported scene uri")
	}
	if s.World != nil {
		if err := s.World.Validate(); err != nil {
			return err
		}
		if s.Camera == nil {
			return core.NewConfigurationError("scene.camera", "is required for an inline world")
		}
	}
	if s.Import != nil {
		if err := core.ValidateURI(KindURI, "uri", s.Import.URI); err != nil {
			return core.NewConfigurationError("scene.uri", "%v", err)
		}
		if err := s.Import.Transforms.Validate(); err != nil {
			return core.NewConfigurationError("scene.transforms", "%v", err)
		}
	}
	if err := s.Transforms.Validate(); err != nil {
		return core.NewConfigurationError("scene.transforms", "%v", err)
	}
	if s.Camera != nil {
		if err := s.Camera.Validate(); err != nil {
			return err
		}
	}
	if s.Sky != nil {
		if err := s.Sky.Validate(); err != nil {
			return err
		}
	}
	for _, env := range s.Environments {
		if err := env.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Override applies the camera and environments of o on top of s. This is how
// a locally specified camera composes with an imported scene.
func (s *Scene) Override(o *Scene) (*Scene, error) {
	merged := *s
	merged.Transforms = s.Transforms.Append(o.Transforms...)
	if o.Camera != nil {
		if s.Camera == nil {
			merged.Camera = o.Camera
		} else {
			camera, err := s.Camera.Merge(o.Camera)
			if err != nil {
				return nil, err
			}
			merged.Camera = camera
		}
	}
	if len(o.Environments) > 0 {
		merged.Environments = append([]Environment(nil), o.Environments...)
	}
	if o.Sky != nil {
		merged.Sky = o.Sky
	}
	if o.World != nil {
		merged.World = o.World
	}
	return &merged, nil
}

// Resolved is a scene whose world has been flattened into canonical leaves
type Resolved struct {
	Kind         string                   `json:"kind"`
	URI          string                   `json:"uri,omitempty"`
	Transforms   geometry.TransformStack  `json:"transforms,omitempty"`
	Camera       *Camera                  `json:"camera,omitempty"`
	Environments []Environment            `json:"environments"`
	World        *primitive.ResolvedWorld `json:"world,omitempty"`
}

// Resolve validates the scene and flattens its world
func (s *Scene) Resolve() (*Resolved, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Kind:         s.Kind(),
		Environments: append([]Environment{}, s.EffectiveEnvironments()...),
	}
	if s.Camera != nil {
		camera := *s.Camera
		resolved.Camera = &camera
	}
	if s.Import != nil {
		resolved.URI = s.Import.URI
		resolved.Transforms = s.Import.Transforms.Append(s.Transforms...)
	}
	if s.World != nil {
		world, err := s.World.Resolve()
		if err != nil {
			return nil, err
		}
		if len(s.Transforms) > 0 {
			for i := range world.Leaves {
				world.Leaves[i].Transforms = world.Leaves[i].Transforms.Append(s.Transforms...)
			}
		}
		resolved.World = world
	}
	return resolved, nil
}
