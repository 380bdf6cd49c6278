// Package primitive holds the recursive scene graph: leaf geometry, composite
// containers and the single-child wrapper nodes of the older schema, plus the
// resolver that flattens them into canonical leaves.
package primitive

import (
	"strings"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
)

// Node kinds as they appear in documents
const (
	KindGeom           = "geom"
	KindContainer      = "container"
	KindList           = "list"
	KindTranslate      = "translate"
	KindRotate         = "rotate"
	KindTransforms     = "transforms"
	KindFlipFace       = "flip_face"
	KindTags           = "tags"
	KindAreaLight      = "area_light"
	KindConstantMedium = "constant_medium"
)

// TagLights marks primitives the engine samples explicitly as lights
const TagLights = "lights"

// Node is one element of the author-facing scene graph. The set of
// implementations is closed; Resolve switches over all of them.
type Node interface {
	// Kind returns the document discriminant
	Kind() string
	// Validate checks the node's own fields, not its children
	Validate() error
	isNode()
}

// Geom is a leaf: one shape with its material, local transforms and markers
type Geom struct {
	Shape      geometry.Shape
	Material   material.Material
	Transforms geometry.TransformStack
	Tags       []string
	AreaLight  bool
	FlipFace   bool
}

// NewGeom creates a new leaf node
func NewGeom(shape geometry.Shape, mat material.Material) *Geom {
	return &Geom{Shape: shape, Material: mat}
}

// WithTransforms returns a copy with ops appended to the local stack
func (g *Geom) WithTransforms(ops ...geometry.Transform) *Geom {
	cp := *g
	cp.Transforms = g.Transforms.Append(ops...)
	return &cp
}

// WithTags returns a copy carrying the extra tags
func (g *Geom) WithTags(tags ...string) *Geom {
	cp := *g
	cp.Tags = mergeTags(g.Tags, tags)
	return &cp
}

// AsAreaLight returns a copy marked as an importance-sampled emitter
func (g *Geom) AsAreaLight() *Geom {
	cp := *g
	cp.AreaLight = true
	return &cp
}

func (g *Geom) Kind() string { return KindGeom }
func (g *Geom) isNode()      {}

// Validate checks the shape, material, transforms and tags. A missing shape
// or material is a structural problem and is reported by Resolve instead.
func (g *Geom) Validate() error {
	if g.Shape != nil {
		if err := g.Shape.Validate(); err != nil {
			return err
		}
	}
	if g.Material != nil {
		if err := g.Material.Validate(); err != nil {
			return err
		}
	}
	if err := g.Transforms.Validate(); err != nil {
		return err
	}
	return validateTags(KindGeom, g.Tags)
}

// Container is a composite: an ordered list of children sharing one
// transform stack and tag set
type Container struct {
	Transforms geometry.TransformStack
	Tags       []string
	Children   []Node
}

// NewContainer creates a new container over children
func NewContainer(children ...Node) *Container {
	return &Container{Children: children}
}

// WithTransforms returns a copy with ops appended to the group stack
func (c *Container) WithTransforms(ops ...geometry.Transform) *Container {
	cp := *c
	cp.Transforms = c.Transforms.Append(ops...)
	return &cp
}

// WithTags returns a copy carrying the extra tags
func (c *Container) WithTags(tags ...string) *Container {
	cp := *c
	cp.Tags = mergeTags(c.Tags, tags)
	return &cp
}

func (c *Container) Kind() string { return KindContainer }
func (c *Container) isNode()      {}

func (c *Container) Validate() error {
	if err := c.Transforms.Validate(); err != nil {
		return err
	}
	return validateTags(KindContainer, c.Tags)
}

func validateTags(kind string, tags []string) error {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return core.NewValidationError(kind, "tags", "must not contain empty tags")
		}
	}
	return nil
}
