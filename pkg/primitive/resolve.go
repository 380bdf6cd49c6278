package primitive

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
)

// Medium describes the participating medium attached to a boundary leaf
type Medium struct {
	Density float64          `json:"density"`
	Texture material.Texture `json:"texture"`
}

// Leaf is the canonical resolved form of a primitive. Every wrapper and
// container property above it has been folded into its fields.
type Leaf struct {
	Path       string // location of the originating geom node
	Shape      geometry.Shape
	Material   material.Material // nil only for medium boundaries
	Transforms geometry.TransformStack
	Tags       []string
	AreaLight  bool
	FlipFace   bool
	Medium     *Medium
}

// HasTag reports whether the leaf carries tag
func (l Leaf) HasTag(tag string) bool {
	i := sort.SearchStrings(l.Tags, tag)
	return i < len(l.Tags) && l.Tags[i] == tag
}

// IsLight reports whether the engine should sample the leaf as a light
func (l Leaf) IsLight() bool {
	return l.AreaLight || l.HasTag(TagLights)
}

// Bounds returns the world-space bounding box of the leaf, false when the
// shape's extent is unknown
func (l Leaf) Bounds() (core.AABB, bool) {
	b, ok := geometry.Bounds(l.Shape)
	if !ok || !b.IsValid() {
		return core.AABB{}, false
	}
	return l.Transforms.ApplyBounds(b), true
}

// MarshalJSON writes the leaf as a flat geom node
func (l Leaf) MarshalJSON() ([]byte, error) {
	var areaLight *struct{}
	if l.AreaLight {
		areaLight = &struct{}{}
	}
	return json.Marshal(struct {
		Kind       string                  `json:"kind"`
		Shape      geometry.Shape          `json:"shape"`
		Material   material.Material       `json:"material,omitempty"`
		Transforms geometry.TransformStack `json:"transforms"`
		Tags       []string                `json:"tags,omitempty"`
		AreaLight  *struct{}               `json:"area_light,omitempty"`
		FlipFace   bool                    `json:"flip_face,omitempty"`
		Medium     *Medium                 `json:"medium,omitempty"`
	}{KindGeom, l.Shape, l.Material, l.Transforms, l.Tags, areaLight, l.FlipFace, l.Medium})
}

// Resolve flattens the graph under root into canonical leaves, in
// depth-first order. path names root in error messages, e.g. "world[0]".
//
// Transforms accumulate child first: a leaf's own stack runs before the
// stacks of the containers and wrappers enclosing it, innermost first.
// Tags are unioned, area light is ORed and flip face toggles.
func Resolve(root Node, path string) ([]Leaf, error) {
	return resolve(root, path, false)
}

func resolve(n Node, path string, inMedium bool) ([]Leaf, error) {
	if n == nil {
		return nil, core.NewStructuralError(path, "missing node")
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	switch node := n.(type) {
	case *Geom:
		if node.Shape == nil {
			return nil, core.NewStructuralError(path, "leaf has no shape")
		}
		if node.Material == nil && !inMedium {
			return nil, core.NewStructuralError(path, "leaf has no material")
		}
		return []Leaf{{
			Path:       path,
			Shape:      node.Shape,
			Material:   node.Material,
			Transforms: node.Transforms.Append(),
			Tags:       mergeTags(nil, node.Tags),
			AreaLight:  node.AreaLight,
			FlipFace:   node.FlipFace,
		}}, nil

	case *Container:
		if len(node.Children) == 0 {
			return nil, core.NewStructuralError(path, "composite has no children")
		}
		var leaves []Leaf
		for i, child := range node.Children {
			resolved, err := resolve(child, fmt.Sprintf("%s.children[%d]", path, i), inMedium)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, resolved...)
		}
		for i := range leaves {
			leaves[i].Transforms = leaves[i].Transforms.Append(node.Transforms...)
			leaves[i].Tags = mergeTags(leaves[i].Tags, node.Tags)
		}
		return leaves, nil

	case *Translate:
		return wrap(node.Child, path, inMedium, func(l *Leaf) {
			l.Transforms = l.Transforms.Append(geometry.NewTranslate(node.Offset))
		})

	case *Rotate:
		return wrap(node.Child, path, inMedium, func(l *Leaf) {
			l.Transforms = l.Transforms.Append(geometry.NewRotate(node.Axis, node.Angle))
		})

	case *TransformGroup:
		return wrap(node.Child, path, inMedium, func(l *Leaf) {
			l.Transforms = l.Transforms.Append(node.Params...)
		})

	case *FlipFace:
		return wrap(node.Child, path, inMedium, func(l *Leaf) {
			l.FlipFace = !l.FlipFace
		})

	case *Tagged:
		return wrap(node.Child, path, inMedium, func(l *Leaf) {
			l.Tags = mergeTags(l.Tags, node.Tags)
		})

	case *AreaLightMarker:
		return wrap(node.Child, path, inMedium, func(l *Leaf) {
			l.AreaLight = true
		})

	case *ConstantMedium:
		if inMedium {
			return nil, core.NewStructuralError(path, "medium boundary nested inside another medium")
		}
		leaves, err := resolve(node.Boundary, path+".boundary", true)
		if err != nil {
			return nil, err
		}
		for i := range leaves {
			leaves[i].Medium = &Medium{Density: node.Density, Texture: node.Texture}
		}
		return leaves, nil

	default:
		return nil, core.NewStructuralError(path, "unknown node kind %q", n.Kind())
	}
}

// wrap resolves child and merges one wrapper property onto every leaf
func wrap(child Node, path string, inMedium bool, apply func(*Leaf)) ([]Leaf, error) {
	leaves, err := resolve(child, path+".child", inMedium)
	if err != nil {
		return nil, err
	}
	for i := range leaves {
		apply(&leaves[i])
	}
	return leaves, nil
}

// mergeTags returns the sorted, deduplicated union of a and b
func mergeTags(a, b []string) []string {
	if len(a)+len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, tags := range [][]string{a, b} {
		for _, tag := range tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}
