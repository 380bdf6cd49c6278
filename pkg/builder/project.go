package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/primitive"
	"github.com/df07/go-scene-description/pkg/scene"
)

// MakeCamera builds a camera. look_from, look_at and vertical_fov are
// required; everything else takes the defaults of scene.NewCamera, and a
// zero aspect is later derived from the output resolution.
func MakeCamera(v any) (*scene.Camera, error) {
	if c, ok := v.(*scene.Camera); ok {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	}
	lit, err := asLiteral("camera", v)
	if err != nil {
		return nil, err
	}

	lookFrom, err := lit.vec3("look_from")
	if err != nil {
		return nil, err
	}
	lookAt, err := lit.vec3("look_at")
	if err != nil {
		return nil, err
	}
	vfov, err := lit.float("vertical_fov")
	if err != nil {
		return nil, err
	}
	c := scene.NewCamera(lookFrom, lookAt, vfov)

	if c.ViewUp, err = lit.optVec3("view_up", c.ViewUp); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"aspect", &c.Aspect},
		{"aperture", &c.Aperture},
		{"focus_dist", &c.FocusDist},
		{"time0", &c.Time0},
		{"time1", &c.Time1},
	} {
		if *f.dst, err = lit.optFloat(f.key, *f.dst); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MakeSky builds the older single-color background
func MakeSky(v any) (*scene.Sky, error) {
	if s, ok := v.(*scene.Sky); ok {
		return s, s.Validate()
	}
	lit, err := asLiteral("sky", v)
	if err != nil {
		return nil, err
	}
	kind, err := lit.discriminant()
	if err != nil {
		return nil, err
	}
	background, err := lit.vec3("background")
	if err != nil {
		return nil, err
	}
	s := &scene.Sky{Kind: kind, Background: background}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// MakeEnvironment builds a constant environment from {l: color} or a raw color
func MakeEnvironment(v any) (scene.Environment, error) {
	if e, ok := v.(scene.Environment); ok {
		return e, e.Validate()
	}
	if l, ok := toVec3(v); ok {
		e := scene.NewEnvironment(l)
		return e, e.Validate()
	}
	lit, err := asLiteral("environment", v)
	if err != nil {
		return scene.Environment{}, err
	}
	l, err := lit.vec3("l")
	if err != nil {
		return scene.Environment{}, err
	}
	e := scene.NewEnvironment(l)
	return e, e.Validate()
}

// MakeSettings builds output settings. Every settings problem, a missing or
// non-numeric field included, is reported as a configuration error.
func MakeSettings(v any) (*scene.Settings, error) {
	if s, ok := v.(*scene.Settings); ok {
		return s, s.Validate()
	}
	if v == nil {
		return nil, core.NewConfigurationError("settings", "is required")
	}
	lit, err := asLiteral("settings", v)
	if err != nil {
		return nil, core.NewConfigurationError("settings", "must be an object, got %T", v)
	}

	s := &scene.Settings{}
	if s.OutputDir, err = lit.string("output_dir"); err != nil {
		return nil, settingsError("output_dir", err)
	}
	for _, f := range []struct {
		key string
		dst *int
	}{
		{"width", &s.Width},
		{"height", &s.Height},
		{"nsamples", &s.NSamples},
		{"max_depth", &s.MaxDepth},
	} {
		if *f.dst, err = lit.int(f.key); err != nil {
			return nil, settingsError(f.key, err)
		}
	}
	if lit.has("mis_weight") {
		w, err := lit.float("mis_weight")
		if err != nil {
			return nil, settingsError("mis_weight", err)
		}
		s.MISWeight = &w
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// settingsError restates a literal error as a configuration error on key
func settingsError(key string, err error) error {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		return core.NewConfigurationError("settings."+key, "%s", verr.Reason)
	}
	return core.NewConfigurationError("settings."+key, "%v", err)
}

// MakeWorld builds the top-level world graph. A plain list of primitives
// becomes a bvh over [0,1]; an aggregation literal sets its own kind and
// time interval.
func MakeWorld(v any) (*primitive.World, error) {
	switch w := v.(type) {
	case *primitive.World:
		return w, w.Validate()
	case *primitive.List:
		return primitive.NewBVH(w.Freeze()...), nil
	}

	if items, ok := toList(v); ok {
		children, err := makeNodes(items, "world")
		if err != nil {
			return nil, err
		}
		return primitive.NewBVH(children...), nil
	}

	lit, err := asLiteral("world", v)
	if err != nil {
		return nil, err
	}
	kind, err := lit.discriminant()
	if err != nil {
		return nil, err
	}
	time0, err := lit.optFloat("time0", 0)
	if err != nil {
		return nil, err
	}
	time1, err := lit.optFloat("time1", 1)
	if err != nil {
		return nil, err
	}
	var children []primitive.Node
	if lit.has("children") {
		items, err := lit.list("children")
		if err != nil {
			return nil, err
		}
		if children, err = makeNodes(items, "world.children"); err != nil {
			return nil, err
		}
	}
	return primitive.NewWorld(kind, time0, time1, children...)
}

// MakeScene builds one scene. The kind defaults to custom, or to uri when a
// uri is given; a custom scene without a world only makes sense as an
// override for an imported scene and is merged by MakeProject.
func MakeScene(v any) (*scene.Scene, error) {
	if s, ok := v.(*scene.Scene); ok {
		return s, s.Validate()
	}
	s, err := makeScene(v)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// makeScene builds a scene without checking scene-level completeness
func makeScene(v any) (*scene.Scene, error) {
	if s, ok := v.(*scene.Scene); ok {
		return s, nil
	}
	lit, err := asLiteral("scene", v)
	if err != nil {
		return nil, err
	}

	kind := scene.KindCustom
	if lit.has("uri") {
		kind = scene.KindURI
	}
	if lit.has("kind") {
		if kind, err = lit.discriminant(); err != nil {
			return nil, err
		}
	}

	s := &scene.Scene{}
	switch kind {
	case scene.KindURI:
		uri, err := lit.string("uri")
		if err != nil {
			return nil, err
		}
		transforms, err := MakeTransforms(lit.m["transforms"])
		if err != nil {
			return nil, err
		}
		s.Import = &scene.Import{URI: uri, Transforms: transforms}
	case scene.KindCustom:
		if s.Transforms, err = MakeTransforms(lit.m["transforms"]); err != nil {
			return nil, err
		}
	default:
		return nil, core.NewValidationError("scene", "kind", "must be %q or %q, got %q", scene.KindCustom, scene.KindURI, kind)
	}

	if lit.has("world") {
		if s.World, err = MakeWorld(lit.m["world"]); err != nil {
			return nil, err
		}
	}
	if lit.has("camera") {
		if s.Camera, err = MakeCamera(lit.m["camera"]); err != nil {
			return nil, err
		}
	}
	if lit.has("sky") {
		if s.Sky, err = MakeSky(lit.m["sky"]); err != nil {
			return nil, err
		}
	}
	if lit.has("environments") {
		items, err := lit.list("environments")
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			env, err := MakeEnvironment(item)
			if err != nil {
				return nil, wrapIndex("environments", i, err)
			}
			s.Environments = append(s.Environments, env)
		}
	}
	return s, nil
}

// MakeProject builds and validates a whole project. It accepts a single
// scene under "scene" or a list under "scenes". A world-less custom scene
// that follows an imported one overrides the imported camera and
// environments instead of standing on its own.
func MakeProject(v any) (*scene.Project, error) {
	if p, ok := v.(*scene.Project); ok {
		return p, p.Validate()
	}
	lit, err := asLiteral("project", v)
	if err != nil {
		return nil, err
	}

	name, err := lit.string("name")
	if err != nil {
		return nil, err
	}
	if !lit.has("settings") {
		return nil, core.NewConfigurationError("settings", "is required")
	}
	settings, err := MakeSettings(lit.m["settings"])
	if err != nil {
		return nil, err
	}

	var items []any
	switch {
	case lit.has("scenes"):
		if items, err = lit.list("scenes"); err != nil {
			return nil, err
		}
	case lit.has("scene"):
		items = []any{lit.m["scene"]}
	}

	var scenes []*scene.Scene
	for i, item := range items {
		s, err := makeScene(item)
		if err != nil {
			return nil, wrapIndex("scenes", i, err)
		}
		if s.World == nil && s.Import == nil {
			if len(scenes) == 0 || scenes[len(scenes)-1].Import == nil {
				return nil, fmt.Errorf("scenes[%d]: %w", i,
					core.NewConfigurationError("scene.world", "a scene needs an inline world or an imported scene uri"))
			}
			merged, err := scenes[len(scenes)-1].Override(s)
			if err != nil {
				return nil, wrapIndex("scenes", i, err)
			}
			scenes[len(scenes)-1] = merged
			continue
		}
		scenes = append(scenes, s)
	}

	p := &scene.Project{Name: name, Settings: settings, Scenes: scenes, Accelerator: scene.AcceleratorBVH}
	if lit.has("accelerator") {
		if p.Accelerator, err = makeAccelerator(lit.m["accelerator"]); err != nil {
			return nil, err
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// makeAccelerator accepts "bvh" or {kind: "bvh"}
func makeAccelerator(v any) (string, error) {
	if name, ok := v.(string); ok {
		return strings.ToLower(strings.TrimSpace(name)), nil
	}
	lit, err := asLiteral("accelerator", v)
	if err != nil {
		return "", err
	}
	return lit.discriminant()
}
