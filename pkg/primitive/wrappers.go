package primitive

import (
	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
)

// Translate moves its child by Offset
type Translate struct {
	Offset core.Vec3
	Child  Node
}

// NewTranslate wraps child in a translation
func NewTranslate(offset core.Vec3, child Node) *Translate {
	return &Translate{Offset: offset, Child: child}
}

func (t *Translate) Kind() string { return KindTranslate }
func (t *Translate) isNode()      {}

func (t *Translate) Validate() error {
	return geometry.NewTranslate(t.Offset).Validate()
}

// Rotate turns its child by Angle degrees about Axis
type Rotate struct {
	Axis  core.Vec3
	Angle float64
	Child Node
}

// NewRotate wraps child in a rotation
func NewRotate(axis core.Vec3, angle float64, child Node) *Rotate {
	return &Rotate{Axis: axis, Angle: angle, Child: child}
}

func (r *Rotate) Kind() string { return KindRotate }
func (r *Rotate) isNode()      {}

func (r *Rotate) Validate() error {
	return geometry.NewRotate(r.Axis, r.Angle).Validate()
}

// TransformGroup applies a whole stack to its child
type TransformGroup struct {
	Params geometry.TransformStack
	Child  Node
}

// NewTransformGroup wraps child in a transform stack
func NewTransformGroup(params geometry.TransformStack, child Node) *TransformGroup {
	return &TransformGroup{Params: params, Child: child}
}

func (g *TransformGroup) Kind() string { return KindTransforms }
func (g *TransformGroup) isNode()      {}

func (g *TransformGroup) Validate() error {
	return g.Params.Validate()
}

// FlipFace reverses the front-facing orientation of its child's surfaces
type FlipFace struct {
	Child Node
}

// NewFlipFace wraps child in an orientation flip
func NewFlipFace(child Node) *FlipFace {
	return &FlipFace{Child: child}
}

func (f *FlipFace) Kind() string    { return KindFlipFace }
func (f *FlipFace) isNode()         {}
func (f *FlipFace) Validate() error { return nil }

// Tagged attaches labels to every leaf of its child
type Tagged struct {
	Tags  []string
	Child Node
}

// NewTagged wraps child with tags
func NewTagged(child Node, tags ...string) *Tagged {
	return &Tagged{Tags: tags, Child: child}
}

func (t *Tagged) Kind() string { return KindTags }
func (t *Tagged) isNode()      {}

func (t *Tagged) Validate() error {
	if len(t.Tags) == 0 {
		return core.NewValidationError(KindTags, "tags", "must not be empty")
	}
	return validateTags(KindTags, t.Tags)
}

// AreaLightMarker marks every leaf of its child as an importance-sampled emitter
type AreaLightMarker struct {
	Child Node
}

// NewAreaLightMarker wraps child as an area light
func NewAreaLightMarker(child Node) *AreaLightMarker {
	return &AreaLightMarker{Child: child}
}

func (a *AreaLightMarker) Kind() string    { return KindAreaLight }
func (a *AreaLightMarker) isNode()         {}
func (a *AreaLightMarker) Validate() error { return nil }

// ConstantMedium fills the volume enclosed by Boundary with a participating
// medium of uniform Density scattering with Texture's color
type ConstantMedium struct {
	Boundary Node
	Density  float64
	Texture  material.Texture
}

// NewConstantMedium creates a medium bounded by boundary
func NewConstantMedium(boundary Node, density float64, texture material.Texture) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Texture: texture}
}

func (m *ConstantMedium) Kind() string { return KindConstantMedium }
func (m *ConstantMedium) isNode()      {}

func (m *ConstantMedium) Validate() error {
	if !(m.Density > 0) {
		return core.NewValidationError(KindConstantMedium, "density", "must be positive, got %g", m.Density)
	}
	if m.Texture == nil {
		return core.NewValidationError(KindConstantMedium, "texture", "is required")
	}
	return m.Texture.Validate()
}
