package builder

import (
	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
)

// MakeShape builds a shape from its literal. Fields that belong to the
// enclosing primitive, such as material, are ignored here.
func MakeShape(v any) (geometry.Shape, error) {
	if s, ok := v.(geometry.Shape); ok {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return s, nil
	}

	lit, err := asLiteral("shape", v)
	if err != nil {
		return nil, err
	}
	kind, err := lit.discriminant()
	if err != nil {
		return nil, err
	}
	lit.kind = kind

	var s geometry.Shape
	switch kind {
	case geometry.KindSphere:
		center, err := lit.vec3("center")
		if err != nil {
			return nil, err
		}
		radius, err := lit.float("radius")
		if err != nil {
			return nil, err
		}
		s = geometry.NewSphere(center, radius)

	case geometry.KindMovingSphere:
		ms := &geometry.MovingSphere{}
		if ms.Center0, err = lit.vec3("center0"); err != nil {
			return nil, err
		}
		if ms.Center1, err = lit.vec3("center1"); err != nil {
			return nil, err
		}
		if ms.Time0, err = lit.float("time0"); err != nil {
			return nil, err
		}
		if ms.Time1, err = lit.float("time1"); err != nil {
			return nil, err
		}
		if ms.Radius, err = lit.float("radius"); err != nil {
			return nil, err
		}
		s = ms

	case geometry.KindRect:
		v0, err := lit.vec3("v0")
		if err != nil {
			return nil, err
		}
		v1, err := lit.vec3("v1")
		if err != nil {
			return nil, err
		}
		s = geometry.NewRect(v0, v1)

	case geometry.KindDisk:
		s, err = makeDisk(lit)
		if err != nil {
			return nil, err
		}

	case geometry.KindCube:
		pMin, err := lit.vec3("p_min")
		if err != nil {
			return nil, err
		}
		pMax, err := lit.vec3("p_max")
		if err != nil {
			return nil, err
		}
		s = geometry.NewCube(pMin, pMax)

	case geometry.KindCylinder:
		c0, err := lit.vec3("center0")
		if err != nil {
			return nil, err
		}
		c1, err := lit.vec3("center1")
		if err != nil {
			return nil, err
		}
		radius, err := lit.float("radius")
		if err != nil {
			return nil, err
		}
		s = geometry.NewCylinder(c0, c1, radius)

	case geometry.KindTriangle, geometry.KindPyramid:
		names := []string{"v0", "v1", "v2", "v3"}
		if kind == geometry.KindTriangle {
			names = names[:3]
		}
		vertices := make([]core.Vec3, len(names))
		for i, name := range names {
			if vertices[i], err = lit.vec3(name); err != nil {
				return nil, err
			}
		}
		if kind == geometry.KindTriangle {
			s = geometry.NewTriangle(vertices[0], vertices[1], vertices[2])
		} else {
			s = geometry.NewPyramid(vertices[0], vertices[1], vertices[2], vertices[3])
		}

	case geometry.KindRegularPolygon:
		center, err := lit.optVec3("center", core.Vec3{})
		if err != nil {
			return nil, err
		}
		radius, err := lit.float("radius")
		if err != nil {
			return nil, err
		}
		sides, err := lit.int("num_sides")
		if err != nil {
			return nil, err
		}
		s = geometry.NewRegularPolygon(center, radius, sides)

	case geometry.KindMesh:
		s, err = makeMesh(lit)
		if err != nil {
			return nil, err
		}

	default:
		return nil, core.NewValidationError("shape", "kind", "unknown shape kind %q", kind)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// makeDisk reads the sampler from properties.sampler or a top-level sampler
func makeDisk(lit literal) (*geometry.Disk, error) {
	center, err := lit.vec3("center")
	if err != nil {
		return nil, err
	}
	radius, err := lit.float("radius")
	if err != nil {
		return nil, err
	}
	normal, err := lit.optVec3("normal", geometry.AxisY)
	if err != nil {
		return nil, err
	}
	disk := geometry.NewDisk(center, radius, normal)

	raw := lit.m["sampler"]
	if props, ok := lit.m["properties"]; ok && props != nil {
		propLit, err := asLiteral(geometry.KindDisk, props)
		if err != nil {
			return nil, err
		}
		if propLit.has("sampler") {
			raw = propLit.m["sampler"]
		}
	}
	if raw == nil {
		return disk, nil
	}

	samplerLit, err := asLiteral("sampler", raw)
	if err != nil {
		return nil, err
	}
	kind, err := samplerLit.discriminant()
	if err != nil {
		return nil, err
	}
	sampler := geometry.DiskSampler{Kind: kind}
	if samplerLit.has("block_size") {
		size, ok := toIntPair(samplerLit.m["block_size"])
		if !ok {
			return nil, core.NewValidationError("sampler", "block_size", "must be a pair of integers, got %v", samplerLit.m["block_size"])
		}
		sampler.BlockSize = &size
	}
	return disk.WithSampler(sampler), nil
}

// makeMesh accepts uri, file_path, from_obj.{file_path,uri,path} or inline text
func makeMesh(lit literal) (*geometry.Mesh, error) {
	scale, err := lit.optFloat("scale", 1)
	if err != nil {
		return nil, err
	}
	mesh := &geometry.Mesh{Scale: scale}

	if _, raw, ok := lit.first("text", "obj"); ok {
		text, ok := raw.(string)
		if !ok {
			return nil, core.NewValidationError(geometry.KindMesh, "text", "must be a string, got %T", raw)
		}
		mesh.Text = text
	}

	src := lit
	if lit.has("from_obj") {
		if src, err = asLiteral(geometry.KindMesh, lit.m["from_obj"]); err != nil {
			return nil, err
		}
	}
	if key, raw, ok := src.first("uri", "file_path", "path"); ok {
		uri, ok := raw.(string)
		if !ok {
			return nil, core.NewValidationError(geometry.KindMesh, key, "must be a string, got %T", raw)
		}
		mesh.URI = uri
	}
	return mesh, nil
}

func toIntPair(v any) ([2]int, bool) {
	if n, ok := toNumber(v); ok {
		return [2]int{int(n), int(n)}, n == float64(int(n))
	}
	items, ok := toList(v)
	if !ok || len(items) != 2 {
		return [2]int{}, false
	}
	var out [2]int
	for i, item := range items {
		n, ok := toNumber(item)
		if !ok || n != float64(int(n)) {
			return [2]int{}, false
		}
		out[i] = int(n)
	}
	return out, true
}

// MakeTransform builds one transform operation. Rotate accepts a named axis
// ("X", "Y", "Z") or an explicit axis vector.
func MakeTransform(v any) (geometry.Transform, error) {
	if t, ok := v.(geometry.Transform); ok {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		return t, nil
	}

	lit, err := asLiteral("transform", v)
	if err != nil {
		return nil, err
	}
	kind, err := lit.discriminant()
	if err != nil {
		return nil, err
	}
	lit.kind = kind

	var t geometry.Transform
	switch kind {
	case geometry.KindTranslate:
		offset, err := lit.vec3("offset")
		if err != nil {
			return nil, err
		}
		t = geometry.NewTranslate(offset)

	case geometry.KindRotate:
		axis, angle, err := axisAngle(lit)
		if err != nil {
			return nil, err
		}
		t = geometry.NewRotate(axis, angle)

	case geometry.KindScale:
		factors, err := scaleFactors(lit)
		if err != nil {
			return nil, err
		}
		t = geometry.NewScale(factors)

	default:
		return nil, core.NewValidationError("transform", "kind", "unknown transform kind %q", kind)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MakeTransforms builds a transform stack from a list of operations
func MakeTransforms(v any) (geometry.TransformStack, error) {
	if stack, ok := v.(geometry.TransformStack); ok {
		return stack, stack.Validate()
	}
	if v == nil {
		return nil, nil
	}
	items, ok := toList(v)
	if !ok {
		if single, ok := v.(geometry.Transform); ok {
			items = []any{single}
		} else {
			return nil, core.NewValidationError("transform", "", "expected a list of transforms, got %T", v)
		}
	}
	stack := make(geometry.TransformStack, 0, len(items))
	for _, item := range items {
		t, err := MakeTransform(item)
		if err != nil {
			return nil, err
		}
		stack = append(stack, t)
	}
	return stack, nil
}

func axisAngle(lit literal) (core.Vec3, float64, error) {
	angle, err := lit.float("angle")
	if err != nil {
		return core.Vec3{}, 0, err
	}
	raw, ok := lit.m["axis"]
	if !ok || raw == nil {
		return core.Vec3{}, 0, core.NewValidationError(lit.kind, "axis", "is required")
	}
	if name, ok := raw.(string); ok {
		axis, err := geometry.ParseAxis(name)
		return axis, angle, err
	}
	axis, ok := toVec3(raw)
	if !ok {
		return core.Vec3{}, 0, core.NewValidationError(lit.kind, "axis", "must be X, Y, Z or a 3-element vector, got %v", raw)
	}
	return axis, angle, nil
}

// scaleFactors accepts a per-axis vector or a single uniform factor
func scaleFactors(lit literal) (core.Vec3, error) {
	_, raw, ok := lit.first("factors", "scale", "factor")
	if !ok {
		return core.Vec3{}, core.NewValidationError(lit.kind, "factors", "is required")
	}
	if f, ok := toNumber(raw); ok {
		return core.NewVec3(f, f, f), nil
	}
	factors, ok := toVec3(raw)
	if !ok {
		return core.Vec3{}, core.NewValidationError(lit.kind, "factors", "must be a number or a 3-element vector, got %v", raw)
	}
	return factors, nil
}
