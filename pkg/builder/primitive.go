package builder

import (
	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/primitive"
)

// MakePrimitive builds one scene graph node. It understands both schema
// generations: flat geom/container nodes carrying their own transforms and
// tags, and single-child wrappers (translate, rotate, transforms, flip_face,
// tags, area_light, constant_medium). A shape literal with a material is
// accepted as a leaf, and bvh/list aggregations nest as containers. The kind
// field is required on every literal.
func MakePrimitive(v any) (primitive.Node, error) {
	switch n := v.(type) {
	case primitive.Node:
		if err := n.Validate(); err != nil {
			return nil, err
		}
		return n, nil
	case *primitive.List:
		return n.Container(), nil
	}

	lit, err := asLiteral("primitive", v)
	if err != nil {
		return nil, err
	}

	kind, err := lit.discriminant()
	if err != nil {
		return nil, err
	}
	lit.kind = kind

	var node primitive.Node
	switch {
	case kind == primitive.KindGeom || kind == primitive.KindContainer:
		node, err = makeFlatNode(lit)
	case kind == primitive.KindList || kind == primitive.WorldBVH:
		node, err = makeContainer(lit)
	case geometry.IsShapeKind(kind):
		node, err = makeShapeLeaf(lit)
	default:
		node, err = makeWrapper(lit)
	}
	if err != nil {
		return nil, err
	}
	if err := node.Validate(); err != nil {
		return nil, err
	}
	return node, nil
}

// MakeGeometry is the older name for MakePrimitive
func MakeGeometry(v any) (primitive.Node, error) {
	return MakePrimitive(v)
}

// MakePrimitiveList builds an editable list from a sequence of nodes or
// node literals
func MakePrimitiveList(items ...any) (*primitive.List, error) {
	if len(items) == 1 {
		if l, ok := items[0].(*primitive.List); ok {
			return primitive.NewList(l.Freeze()...), nil
		}
		if nested, ok := toList(items[0]); ok {
			items = nested
		}
	}
	nodes, err := makeNodes(items, "children")
	if err != nil {
		return nil, err
	}
	return primitive.NewList(nodes...), nil
}

// MakeGeometryList is the older name for MakePrimitiveList
func MakeGeometryList(items ...any) (*primitive.List, error) {
	return MakePrimitiveList(items...)
}

func makeNodes(items []any, field string) ([]primitive.Node, error) {
	nodes := make([]primitive.Node, 0, len(items))
	for i, item := range items {
		n, err := MakePrimitive(item)
		if err != nil {
			return nil, wrapIndex(field, i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// makeFlatNode decides between leaf and composite from the fields present
func makeFlatNode(lit literal) (primitive.Node, error) {
	hasShape := lit.has("shape")
	hasChildren := lit.has("children")
	switch {
	case hasShape && hasChildren:
		return nil, core.NewStructuralError(lit.kind, "a node cannot have both a shape and children")
	case !hasShape && !hasChildren:
		return nil, core.NewStructuralError(lit.kind, "a node needs either a shape or children")
	case lit.kind == primitive.KindGeom && hasChildren:
		return nil, core.NewStructuralError(lit.kind, "geom nodes cannot have children")
	case lit.kind == primitive.KindContainer && hasShape:
		return nil, core.NewStructuralError(lit.kind, "container nodes cannot have a shape")
	case hasShape:
		return makeGeom(lit)
	}
	return makeContainer(lit)
}

func makeGeom(lit literal) (primitive.Node, error) {
	lit.kind = primitive.KindGeom
	shape, err := MakeShape(lit.m["shape"])
	if err != nil {
		return nil, err
	}
	return finishGeom(lit, shape)
}

// makeShapeLeaf accepts a shape literal that carries its own material
func makeShapeLeaf(lit literal) (primitive.Node, error) {
	shape, err := MakeShape(lit.m)
	if err != nil {
		return nil, err
	}
	return finishGeom(lit, shape)
}

func finishGeom(lit literal, shape geometry.Shape) (primitive.Node, error) {
	g := &primitive.Geom{Shape: shape}

	// a missing material is only legal inside a medium boundary, which the
	// resolver checks
	if lit.has("material") {
		mat, err := MakeMaterial(lit.m["material"])
		if err != nil {
			return nil, err
		}
		g.Material = mat
	}

	var err error
	if g.Transforms, err = MakeTransforms(lit.m["transforms"]); err != nil {
		return nil, err
	}
	if g.Tags, err = lit.stringList("tags"); err != nil {
		return nil, err
	}
	if g.AreaLight, err = lit.presence("area_light"); err != nil {
		return nil, err
	}
	if g.FlipFace, err = lit.presence("flip_face"); err != nil {
		return nil, err
	}
	return g, nil
}

func makeContainer(lit literal) (primitive.Node, error) {
	items, err := lit.list("children")
	if err != nil {
		if !lit.has("children") {
			return nil, core.NewStructuralError(lit.kind, "a composite node needs children")
		}
		return nil, err
	}
	children, err := makeNodes(items, "children")
	if err != nil {
		return nil, err
	}

	c := primitive.NewContainer(children...)
	if c.Transforms, err = MakeTransforms(lit.m["transforms"]); err != nil {
		return nil, err
	}
	if c.Tags, err = lit.stringList("tags"); err != nil {
		return nil, err
	}

	var node primitive.Node = c
	areaLight, err := lit.presence("area_light")
	if err != nil {
		return nil, err
	}
	if areaLight {
		node = primitive.NewAreaLightMarker(node)
	}
	flip, err := lit.presence("flip_face")
	if err != nil {
		return nil, err
	}
	if flip {
		node = primitive.NewFlipFace(node)
	}
	return node, nil
}

// makeWrapper builds the single-child nodes of the older schema
func makeWrapper(lit literal) (primitive.Node, error) {
	if lit.kind == primitive.KindConstantMedium {
		return makeConstantMedium(lit)
	}

	if !lit.has("child") {
		if !isWrapperKind(lit.kind) {
			return nil, core.NewValidationError("primitive", "kind", "unknown primitive kind %q", lit.kind)
		}
		return nil, core.NewStructuralError(lit.kind, "a wrapper node needs a child")
	}
	child, err := MakePrimitive(lit.m["child"])
	if err != nil {
		return nil, err
	}

	switch lit.kind {
	case primitive.KindTranslate:
		offset, err := lit.vec3("offset")
		if err != nil {
			return nil, err
		}
		return primitive.NewTranslate(offset, child), nil

	case primitive.KindRotate:
		axis, angle, err := axisAngle(lit)
		if err != nil {
			return nil, err
		}
		return primitive.NewRotate(axis, angle, child), nil

	case primitive.KindTransforms:
		_, raw, _ := lit.first("params", "transforms")
		params, err := MakeTransforms(raw)
		if err != nil {
			return nil, err
		}
		return primitive.NewTransformGroup(params, child), nil

	case primitive.KindFlipFace:
		return primitive.NewFlipFace(child), nil

	case primitive.KindTags:
		tags, err := lit.stringList("tags")
		if err != nil {
			return nil, err
		}
		return primitive.NewTagged(child, tags...), nil

	case primitive.KindAreaLight:
		return primitive.NewAreaLightMarker(child), nil
	}
	return nil, core.NewValidationError("primitive", "kind", "unknown primitive kind %q", lit.kind)
}

func isWrapperKind(kind string) bool {
	switch kind {
	case primitive.KindTranslate, primitive.KindRotate, primitive.KindTransforms,
		primitive.KindFlipFace, primitive.KindTags, primitive.KindAreaLight:
		return true
	}
	return false
}

func makeConstantMedium(lit literal) (primitive.Node, error) {
	if !lit.has("boundary") {
		return nil, core.NewStructuralError(primitive.KindConstantMedium, "a medium needs a boundary")
	}
	boundary, err := MakePrimitive(lit.m["boundary"])
	if err != nil {
		return nil, err
	}
	density, err := lit.float("density")
	if err != nil {
		return nil, err
	}
	_, raw, ok := lit.first("texture", "albedo", "color")
	if !ok {
		return nil, core.NewValidationError(primitive.KindConstantMedium, "texture", "is required")
	}
	texture, err := MakeTexture(raw)
	if err != nil {
		return nil, err
	}
	return primitive.NewConstantMedium(boundary, density, texture), nil
}
