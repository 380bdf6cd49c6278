package builder

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
	"github.com/df07/go-scene-description/pkg/primitive"
	"github.com/df07/go-scene-description/pkg/scene"
)

type obj = map[string]any

func vec(x, y, z float64) []any { return []any{x, y, z} }

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	var verr *core.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, field, verr.Field)
}

func requireStructural(t *testing.T, err error) *core.StructuralError {
	t.Helper()
	var serr *core.StructuralError
	require.True(t, errors.As(err, &serr), "expected StructuralError, got %v", err)
	return serr
}

func requireConfiguration(t *testing.T, err error, field string) {
	t.Helper()
	var cerr *core.ConfigurationError
	require.True(t, errors.As(err, &cerr), "expected ConfigurationError, got %v", err)
	assert.Equal(t, field, cerr.Field)
}

func TestMakeTextureIdempotent(t *testing.T) {
	tex := material.NewConstantTexture(core.NewVec3(0.1, 0.2, 0.3))
	got, err := MakeTexture(tex)
	require.NoError(t, err)
	assert.Same(t, tex, got)

	again, err := MakeTexture(got)
	require.NoError(t, err)
	assert.Equal(t, tex, again)
	assert.IsType(t, &material.ConstantTexture{}, again)
}

func TestRawColorShorthand(t *testing.T) {
	colors := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(0.73, 0.73, 0.73),
		core.NewVec3(15, 15, 15),
	}
	for _, c := range colors {
		raw := vec(c.X, c.Y, c.Z)
		long := obj{"kind": "constant", "color": raw}

		for _, tt := range []struct {
			kind, field string
			extra       obj
		}{
			{"lambertian", "albedo", nil},
			{"metal", "albedo", obj{"fuzz": 0.5}},
			{"diffuse_light", "emit", nil},
			{"gltf_pbr", "base_color", obj{"metallic": 0.2, "roughness": 0.4}},
		} {
			short := obj{"kind": tt.kind, tt.field: raw}
			full := obj{"kind": tt.kind, tt.field: long}
			for k, v := range tt.extra {
				short[k] = v
				full[k] = v
			}

			a, err := MakeMaterial(short)
			require.NoError(t, err, tt.kind)
			b, err := MakeMaterial(full)
			require.NoError(t, err, tt.kind)
			assert.Equal(t, a, b, tt.kind)
		}

		tex, err := MakeTexture(raw)
		require.NoError(t, err)
		assert.Equal(t, material.NewConstantTexture(c), tex)
	}
}

func TestMakeMaterialLiterals(t *testing.T) {
	m, err := MakeMaterial(obj{"kind": "lambertian", "albedo": obj{"kind": "constant_texture", "value": vec(1, 0, 0)}})
	require.NoError(t, err)
	assert.Equal(t, material.NewLambertian(core.NewVec3(1, 0, 0)), m)

	m, err = MakeMaterial(obj{"kind": "dielectric", "ir": 1.5})
	require.NoError(t, err)
	assert.Equal(t, material.NewDielectric(1.5), m)

	m, err = MakeMaterial(obj{"kind": "lambertian", "albedo": obj{
		"kind": "checker_texture",
		"even": vec(0.2, 0.3, 0.1),
		"odd":  obj{"kind": "constant_texture", "color": vec(0.9, 0.9, 0.9)},
	}})
	require.NoError(t, err)
	assert.Equal(t, material.NewTexturedLambertian(material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))), m)

	m, err = MakeMaterial(obj{"kind": "lambertian", "albedo": obj{"kind": "image_texture", "uri": "assets:///textures/earthmap.jpg"}})
	require.NoError(t, err)
	assert.Equal(t, material.NewTexturedLambertian(material.NewImageTexture("assets:///textures/earthmap.jpg")), m)

	m, err = MakeMaterial(obj{"kind": "gltf_pbr", "base_color": vec(1, 1, 1), "metallic": 1, "roughness": 0, "eta": 1.33})
	require.NoError(t, err)
	assert.Equal(t, material.NewGltfPBR(core.NewVec3(1, 1, 1), 1, 0).WithEta(1.33), m)
}

func TestMakeMaterialErrors(t *testing.T) {
	tests := []struct {
		name      string
		literal   any
		wantField string
	}{
		{"missing kind", obj{"albedo": vec(1, 1, 1)}, "kind"},
		{"unknown kind", obj{"kind": "velvet"}, "kind"},
		{"not an object", 42, ""},
		{"lambertian without albedo", obj{"kind": "lambertian"}, "albedo"},
		{"metal without fuzz", obj{"kind": "metal", "albedo": vec(1, 1, 1)}, "fuzz"},
		{"metal fuzz out of range", obj{"kind": "metal", "albedo": vec(1, 1, 1), "fuzz": 1.5}, "fuzz"},
		{"dielectric negative ir", obj{"kind": "dielectric", "ir": -1}, "ir"},
		{"albedo wrong length", obj{"kind": "lambertian", "albedo": []any{1.0, 1.0}}, "albedo"},
		{"unknown texture kind", obj{"kind": "lambertian", "albedo": obj{"kind": "noise"}}, "kind"},
		{"gltf metallic string", obj{"kind": "gltf_pbr", "base_color": vec(1, 1, 1), "metallic": "high", "roughness": 0}, "metallic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeMaterial(tt.literal)
			requireValidation(t, err, tt.wantField)
		})
	}
}

func TestMakeShapeLiterals(t *testing.T) {
	tests := []struct {
		name    string
		literal obj
		want    geometry.Shape
	}{
		{"sphere", obj{"kind": "sphere", "center": vec(0, 1, 0), "radius": 0.5}, geometry.NewSphere(core.NewVec3(0, 1, 0), 0.5)},
		{"sphere int64", obj{"kind": "Sphere", "center": []any{int64(0), int64(-1000), int64(0)}, "radius": int64(1000)}, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000)},
		{"sphere json number", obj{"kind": "sphere", "center": []any{json.Number("1"), json.Number("2.5"), json.Number("0")}, "radius": json.Number("2")}, geometry.NewSphere(core.NewVec3(1, 2.5, 0), 2)},
		{"sphere float list", obj{"kind": "sphere", "center": []float64{1, 2, 3}, "radius": float32(1)}, geometry.NewSphere(core.NewVec3(1, 2, 3), 1)},
		{"moving sphere", obj{"kind": "moving_sphere", "center0": vec(0, 0, 0), "center1": vec(0, 1, 0), "time0": 0, "time1": 1, "radius": 0.2},
			geometry.NewMovingSphere(core.Vec3{}, core.NewVec3(0, 1, 0), 0, 1, 0.2)},
		{"rect", obj{"kind": "rect", "v0": vec(0, 0, 0), "v1": vec(1, 1, 0)}, geometry.NewRect(core.Vec3{}, core.NewVec3(1, 1, 0))},
		{"cube", obj{"kind": "cube", "p_min": vec(0, 0, 0), "p_max": vec(1, 2, 3)}, geometry.NewCube(core.Vec3{}, core.NewVec3(1, 2, 3))},
		{"cylinder", obj{"kind": "cylinder", "center0": vec(0, 0, 0), "center1": vec(0, 2, 0), "radius": 0.5}, geometry.NewCylinder(core.Vec3{}, core.NewVec3(0, 2, 0), 0.5)},
		{"triangle", obj{"kind": "triangle", "v0": vec(0, 0, 0), "v1": vec(1, 0, 0), "v2": vec(0, 1, 0)}, geometry.NewTriangle(core.Vec3{}, geometry.AxisX, geometry.AxisY)},
		{"pyramid", obj{"kind": "pyramid", "v0": vec(0, 0, 0), "v1": vec(1, 0, 0), "v2": vec(0, 1, 0), "v3": vec(0, 0, 1)},
			geometry.NewPyramid(core.Vec3{}, geometry.AxisX, geometry.AxisY, geometry.AxisZ)},
		{"regular polygon default center", obj{"kind": "regular_polygon", "radius": 1, "num_sides": 6}, geometry.NewRegularPolygon(core.Vec3{}, 1, 6)},
		{"disk default normal", obj{"kind": "disk", "center": vec(0, 5, 0), "radius": 1}, geometry.NewDisk(core.NewVec3(0, 5, 0), 1, geometry.AxisY)},
		{"mesh uri", obj{"kind": "mesh", "uri": "assets:///meshes/bunny.obj"}, geometry.NewMeshFromURI("assets:///meshes/bunny.obj")},
		{"mesh from obj", obj{"kind": "mesh", "from_obj": obj{"file_path": "meshes/bunny.obj"}, "scale": 2},
			geometry.NewMeshFromURI("meshes/bunny.obj").WithScale(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MakeShape(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMakeDiskSampler(t *testing.T) {
	want := geometry.NewDisk(core.Vec3{}, 1, geometry.AxisY).WithSampler(geometry.DiskSampler{
		Kind:      geometry.SamplerBlueNoise,
		BlockSize: &[2]int{4, 4},
	})

	fromProperties, err := MakeShape(obj{
		"kind": "disk", "center": vec(0, 0, 0), "radius": 1, "normal": vec(0, 1, 0),
		"properties": obj{"sampler": obj{"kind": "blue_noise", "block_size": []any{4, 4}}},
	})
	require.NoError(t, err)
	assert.Equal(t, want, fromProperties)

	flat, err := MakeShape(obj{
		"kind": "disk", "center": vec(0, 0, 0), "radius": 1,
		"sampler": obj{"kind": "blue_noise", "block_size": 4},
	})
	require.NoError(t, err)
	assert.Equal(t, want, flat)

	_, err = MakeShape(obj{"kind": "disk", "center": vec(0, 0, 0), "radius": 1, "sampler": obj{"kind": "blue_noise"}})
	requireValidation(t, err, "block_size")
}

func TestMakeShapeErrors(t *testing.T) {
	tests := []struct {
		name      string
		literal   obj
		wantField string
	}{
		{"unknown", obj{"kind": "torus"}, "kind"},
		{"sphere negative radius", obj{"kind": "sphere", "center": vec(0, 0, 0), "radius": -1}, "radius"},
		{"sphere missing center", obj{"kind": "sphere", "radius": 1}, "center"},
		{"polygon fractional sides", obj{"kind": "regular_polygon", "radius": 1, "num_sides": 5.5}, "num_sides"},
		{"mesh without source", obj{"kind": "mesh"}, "uri/text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeShape(tt.literal)
			requireValidation(t, err, tt.wantField)
		})
	}
}

func TestMakeTransform(t *testing.T) {
	stack, err := MakeTransforms([]any{
		obj{"kind": "rotate", "axis": "Y", "angle": 90},
		obj{"kind": "rotate", "axis": vec(1, 0, 0), "angle": -45},
		obj{"kind": "translate", "offset": vec(1, 0, 0)},
		obj{"kind": "scale", "factors": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, geometry.TransformStack{
		geometry.NewRotateY(90),
		geometry.NewRotateX(-45),
		geometry.NewTranslate(core.NewVec3(1, 0, 0)),
		geometry.NewUniformScale(2),
	}, stack)

	_, err = MakeTransform(obj{"kind": "rotate", "axis": "W", "angle": 90})
	requireValidation(t, err, "axis")
	_, err = MakeTransform(obj{"kind": "shear"})
	requireValidation(t, err, "kind")

	none, err := MakeTransforms(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLeafCompositeExclusivity(t *testing.T) {
	sphere := obj{"kind": "sphere", "center": vec(0, 0, 0), "radius": 1}
	lambertian := obj{"kind": "lambertian", "albedo": vec(0.5, 0.5, 0.5)}

	_, err := MakePrimitive(obj{"kind": "geom", "shape": sphere, "material": lambertian, "children": []any{}})
	requireStructural(t, err)

	_, err = MakePrimitive(obj{"kind": "container", "shape": sphere, "children": []any{obj{"kind": "geom", "shape": sphere, "material": lambertian}}})
	requireStructural(t, err)

	_, err = MakePrimitive(obj{"kind": "geom", "material": lambertian})
	requireStructural(t, err)

	_, err = MakePrimitive(obj{"kind": "container", "transforms": []any{}})
	requireStructural(t, err)

	_, err = MakePrimitive(obj{"kind": "container", "shape": sphere})
	requireStructural(t, err)

	_, err = MakePrimitive(obj{"kind": "translate", "offset": vec(1, 0, 0)})
	requireStructural(t, err)
}

func TestMakePrimitiveRequiresKind(t *testing.T) {
	sphere := obj{"kind": "sphere", "center": vec(0, 0, 0), "radius": 1}
	lambertian := obj{"kind": "lambertian", "albedo": vec(0.5, 0.5, 0.5)}

	_, err := MakePrimitive(obj{"shape": sphere, "material": lambertian})
	requireValidation(t, err, "kind")

	_, err = MakePrimitive(obj{"kind": "", "children": []any{}})
	requireValidation(t, err, "kind")

	_, err = MakePrimitiveList(obj{"kind": "geom", "shape": sphere, "material": lambertian}, obj{"shape": sphere, "material": lambertian})
	requireValidation(t, err, "kind")
	assert.Contains(t, err.Error(), "children[1]")
}

func TestMakePrimitiveScenario1(t *testing.T) {
	node, err := MakePrimitive(obj{
		"kind":     "geom",
		"shape":    obj{"kind": "sphere", "center": vec(0, 0, 0), "radius": 1},
		"material": obj{"kind": "lambertian", "albedo": vec(0.5, 0.5, 0.5)},
	})
	require.NoError(t, err)

	leaves, err := primitive.Resolve(node, "world[0]")
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Empty(t, leaves[0].Transforms)
	assert.Equal(t, geometry.NewSphere(core.Vec3{}, 1), leaves[0].Shape)
	assert.Equal(t, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), leaves[0].Material)
	assert.False(t, leaves[0].AreaLight)
}

func TestMakePrimitiveScenario2(t *testing.T) {
	node, err := MakePrimitive(obj{
		"kind":       "container",
		"transforms": []any{obj{"kind": "translate", "offset": vec(1, 0, 0)}},
		"children": []any{obj{
			"kind":       "geom",
			"shape":      obj{"kind": "sphere", "center": vec(0, 0, 0), "radius": 1},
			"material":   obj{"kind": "lambertian", "albedo": vec(0.5, 0.5, 0.5)},
			"transforms": []any{obj{"kind": "rotate", "axis": "Y", "angle": 90}},
		}},
	})
	require.NoError(t, err)

	leaves, err := primitive.Resolve(node, "world[0]")
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, geometry.TransformStack{
		geometry.NewRotateY(90),
		geometry.NewTranslate(core.NewVec3(1, 0, 0)),
	}, leaves[0].Transforms)
}

func TestMakePrimitiveWrapperChain(t *testing.T) {
	// the older schema spelling of scenario 2 resolves to the same leaf
	node, err := MakePrimitive(obj{
		"kind":   "translate",
		"offset": vec(1, 0, 0),
		"child": obj{
			"kind":  "rotate",
			"axis":  "Y",
			"angle": 90,
			"child": obj{
				"kind":     "sphere",
				"center":   vec(0, 0, 0),
				"radius":   1,
				"material": obj{"kind": "lambertian", "albedo": vec(0.5, 0.5, 0.5)},
			},
		},
	})
	require.NoError(t, err)

	leaves, err := primitive.Resolve(node, "world[0]")
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, geometry.TransformStack{
		geometry.NewRotateY(90),
		geometry.NewTranslate(core.NewVec3(1, 0, 0)),
	}, leaves[0].Transforms)
	assert.Equal(t, "world[0].child.child", leaves[0].Path)
}

func TestMakePrimitiveMarkers(t *testing.T) {
	light := obj{
		"kind":     "rect",
		"v0":       vec(213, 554, 227),
		"v1":       vec(343, 554, 332),
		"material": obj{"kind": "diffuse_light", "emit": vec(15, 15, 15)},
	}
	node, err := MakePrimitive(obj{
		"kind": "tags",
		"tags": []any{"lights"},
		"child": obj{
			"kind":  "flip_face",
			"child": obj{"kind": "area_light", "child": light},
		},
	})
	require.NoError(t, err)

	leaves, err := primitive.Resolve(node, "world[0]")
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.True(t, leaves[0].FlipFace)
	assert.True(t, leaves[0].AreaLight)
	assert.Equal(t, []string{"lights"}, leaves[0].Tags)
	assert.True(t, leaves[0].IsLight())

	flat, err := MakePrimitive(obj{
		"kind":       "geom",
		"shape":      obj{"kind": "sphere", "center": vec(0, 2, 0), "radius": 0.5},
		"material":   obj{"kind": "diffuse_light", "emit": vec(1, 1, 1)},
		"area_light": obj{},
		"tags":       "lights",
	})
	require.NoError(t, err)
	g, ok := flat.(*primitive.Geom)
	require.True(t, ok)
	assert.True(t, g.AreaLight)
	assert.Equal(t, []string{"lights"}, g.Tags)
}

func TestMakePrimitiveConstantMedium(t *testing.T) {
	node, err := MakePrimitive(obj{
		"kind": "constant_medium",
		"boundary": obj{
			"kind":  "geom",
			"shape": obj{"kind": "cube", "p_min": vec(0, 0, 0), "p_max": vec(165, 330, 165)},
		},
		"density": 0.01,
		"texture": vec(0, 0, 0),
	})
	require.NoError(t, err)

	leaves, err := primitive.Resolve(node, "world[0]")
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Nil(t, leaves[0].Material)
	require.NotNil(t, leaves[0].Medium)
	assert.Equal(t, 0.01, leaves[0].Medium.Density)
	assert.Equal(t, material.NewConstantTexture(core.Vec3{}), leaves[0].Medium.Texture)

	_, err = MakePrimitive(obj{"kind": "constant_medium", "density": 0.01, "texture": vec(0, 0, 0)})
	requireStructural(t, err)
}

func TestMakePrimitiveTransformsWrapper(t *testing.T) {
	node, err := MakePrimitive(obj{
		"kind":   "transforms",
		"params": []any{obj{"kind": "scale", "factors": vec(2, 1, 1)}},
		"child": obj{
			"kind":     "triangle",
			"v0":       vec(0, 0, 0),
			"v1":       vec(1, 0, 0),
			"v2":       vec(0, 1, 0),
			"material": obj{"kind": "lambertian", "albedo": vec(1, 1, 1)},
		},
	})
	require.NoError(t, err)
	leaves, err := primitive.Resolve(node, "world[0]")
	require.NoError(t, err)
	require.Len(t, leaves, 1)
	assert.Equal(t, geometry.TransformStack{geometry.NewScale(core.NewVec3(2, 1, 1))}, leaves[0].Transforms)
}

func TestBuildersDoNotMutateInput(t *testing.T) {
	build := func() obj {
		return obj{
			"kind":       "container",
			"tags":       []any{"lights", "a"},
			"transforms": []any{obj{"kind": "translate", "offset": vec(1, 2, 3)}},
			"children": []any{
				obj{"kind": "sphere", "center": vec(0, 0, 0), "radius": 1, "material": obj{"kind": "metal", "albedo": vec(1, 1, 1), "fuzz": 0}},
			},
		}
	}
	input := build()
	_, err := MakePrimitive(input)
	require.NoError(t, err)
	assert.Equal(t, build(), input)
}

func TestMakePrimitiveIdempotent(t *testing.T) {
	g := primitive.NewGeom(geometry.NewSphere(core.Vec3{}, 1), material.NewLambertian(core.NewVec3(1, 1, 1)))
	got, err := MakePrimitive(g)
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = MakePrimitive(primitive.NewGeom(geometry.NewSphere(core.Vec3{}, -1), nil))
	requireValidation(t, err, "radius")
}

func TestMakePrimitiveList(t *testing.T) {
	sphere := func(y float64) obj {
		return obj{"kind": "sphere", "center": vec(0, y, 0), "radius": 1, "material": obj{"kind": "lambertian", "albedo": vec(1, 1, 1)}}
	}
	list, err := MakePrimitiveList(sphere(0), sphere(1))
	require.NoError(t, err)
	assert.Equal(t, 2, list.Len())

	more, err := MakePrimitive(sphere(2))
	require.NoError(t, err)
	list.Push(more)
	frozen := list.Freeze()
	list.Pop()
	assert.Len(t, frozen, 3)
	assert.Equal(t, 2, list.Len())

	fromSlice, err := MakeGeometryList([]any{sphere(0)})
	require.NoError(t, err)
	assert.Equal(t, 1, fromSlice.Len())

	_, err = MakePrimitiveList(sphere(0), obj{"kind": "sphere"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "children[1]")
}

func TestMakeWorld(t *testing.T) {
	sphere := obj{"kind": "sphere", "center": vec(0, 0, 0), "radius": 1, "material": obj{"kind": "lambertian", "albedo": vec(1, 1, 1)}}

	w, err := MakeWorld([]any{sphere})
	require.NoError(t, err)
	assert.Equal(t, primitive.WorldBVH, w.Kind)
	assert.Equal(t, 0.0, w.Time0)
	assert.Equal(t, 1.0, w.Time1)
	assert.Len(t, w.Children, 1)

	w, err = MakeWorld(obj{"kind": "list", "children": []any{sphere}, "time0": 0, "time1": 0.5})
	require.NoError(t, err)
	assert.Equal(t, primitive.WorldList, w.Kind)
	assert.Equal(t, 0.5, w.Time1)

	_, err = MakeWorld(obj{"kind": "bvh", "children": []any{sphere}, "time0": 1, "time1": 0})
	requireConfiguration(t, err, "world.time0")

	_, err = MakeWorld(obj{"kind": "octree", "children": []any{sphere}})
	requireConfiguration(t, err, "world.kind")
}

func TestMakeCamera(t *testing.T) {
	c, err := MakeCamera(obj{"look_from": vec(13, 2, 3), "look_at": vec(0, 0, 0), "vertical_fov": 20})
	require.NoError(t, err)
	assert.Equal(t, core.NewVec3(0, 1, 0), c.ViewUp)
	assert.Equal(t, 1.0, c.FocusDist)
	assert.Equal(t, 0.0, c.Aspect)

	c, err = MakeCamera(obj{
		"look_from": vec(278, 278, -800), "look_at": vec(278, 278, 0), "view_up": vec(0, 1, 0),
		"vertical_fov": 40, "aspect": 1, "aperture": 0.1, "focus_dist": 10, "time0": 0, "time1": 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.FocusDist)
	assert.Equal(t, 0.1, c.Aperture)
	assert.Equal(t, 1.0, c.Time1)

	_, err = MakeCamera(obj{"look_from": vec(0, 0, 0), "look_at": vec(0, 0, -1)})
	requireValidation(t, err, "vertical_fov")

	_, err = MakeCamera(obj{"look_from": vec(0, 0, 0), "look_at": vec(0, 0, -1), "vertical_fov": 200})
	requireConfiguration(t, err, "camera.vertical_fov")
}

func TestMakeSettingsScenario3(t *testing.T) {
	_, err := MakeSettings(obj{"output_dir": "./output", "width": 100, "height": 100, "nsamples": 0, "max_depth": 10})
	requireConfiguration(t, err, "settings.nsamples")

	_, err = MakeSettings(obj{"output_dir": "./output", "width": 100, "height": 100, "nsamples": 1})
	requireConfiguration(t, err, "settings.max_depth")

	_, err = MakeSettings(obj{"output_dir": "./output", "width": "wide", "height": 100, "nsamples": 1, "max_depth": 10})
	requireConfiguration(t, err, "settings.width")

	_, err = MakeSettings(obj{"width": 100, "height": 100, "nsamples": 0})
	requireConfiguration(t, err, "settings.output_dir")

	_, err = MakeSettings(nil)
	requireConfiguration(t, err, "settings")

	s, err := MakeSettings(obj{"output_dir": "./output", "width": int64(800), "height": int64(600), "nsamples": int64(10), "max_depth": int64(40), "mis_weight": 0.5})
	require.NoError(t, err)
	assert.Equal(t, 800, s.Width)
	require.NotNil(t, s.MISWeight)
	assert.Equal(t, 0.5, *s.MISWeight)
}

func simpleProject() obj {
	return obj{
		"name":     "simple",
		"settings": obj{"output_dir": "./output", "width": 800, "height": 800, "nsamples": 100, "max_depth": 15},
		"scene": obj{
			"camera":       obj{"look_from": vec(13, 2, 3), "look_at": vec(0, 0, 0), "vertical_fov": 20},
			"environments": []any{obj{"l": vec(0.1, 0.1, 0.1)}},
			"world": []any{
				obj{
					"kind":       "geom",
					"shape":      obj{"kind": "sphere", "center": vec(0, 2, 0), "radius": 0.5},
					"material":   obj{"kind": "diffuse_light", "emit": vec(1, 1, 1)},
					"area_light": obj{},
				},
				obj{
					"kind":     "geom",
					"shape":    obj{"kind": "sphere", "center": vec(0, -1000, 0), "radius": 1000},
					"material": obj{"kind": "lambertian", "albedo": vec(0.2, 0.3, 0.1)},
				},
			},
		},
	}
}

func TestMakeProjectSingleScene(t *testing.T) {
	p, err := MakeProject(simpleProject())
	require.NoError(t, err)
	assert.Equal(t, "simple", p.Name)
	assert.Equal(t, scene.AcceleratorBVH, p.Accelerator)
	require.Len(t, p.Scenes, 1)

	resolved, err := p.Resolve()
	require.NoError(t, err)
	require.Len(t, resolved.Scenes, 1)
	world := resolved.Scenes[0].World
	require.NotNil(t, world)
	assert.Len(t, world.Leaves, 2)
	assert.Len(t, world.Lights(), 1)
	assert.Equal(t, 1.0, resolved.Scenes[0].Camera.Aspect)
}

func TestMakeProjectScenario3(t *testing.T) {
	lit := simpleProject()
	lit["settings"] = obj{"output_dir": "./output", "width": 100, "height": 100, "nsamples": 0, "max_depth": 10}
	_, err := MakeProject(lit)
	requireConfiguration(t, err, "settings.nsamples")

	lit["settings"] = obj{"width": 100, "height": 100, "nsamples": 0}
	_, err = MakeProject(lit)
	var cerr *core.ConfigurationError
	require.True(t, errors.As(err, &cerr), "expected ConfigurationError, got %v", err)
}

func TestMakeProjectCustomSceneTransforms(t *testing.T) {
	lit := simpleProject()
	sceneLit := lit["scene"].(obj)
	sceneLit["transforms"] = []any{obj{"kind": "translate", "offset": vec(1, 0, 0)}}
	world := sceneLit["world"].([]any)
	world[1].(obj)["transforms"] = []any{obj{"kind": "rotate", "axis": "Y", "angle": 90}}

	p, err := MakeProject(lit)
	require.NoError(t, err)
	assert.Equal(t, geometry.TransformStack{geometry.NewTranslate(core.NewVec3(1, 0, 0))}, p.Scenes[0].Transforms)

	resolved, err := p.Resolve()
	require.NoError(t, err)
	leaves := resolved.Scenes[0].World.Leaves
	require.Len(t, leaves, 2)
	assert.Equal(t, geometry.TransformStack{geometry.NewTranslate(core.NewVec3(1, 0, 0))}, leaves[0].Transforms)
	assert.Equal(t, geometry.TransformStack{
		geometry.NewRotateY(90),
		geometry.NewTranslate(core.NewVec3(1, 0, 0)),
	}, leaves[1].Transforms, "scene transforms apply after the node's own")

	sceneLit["transforms"] = []any{obj{"kind": "shear"}}
	_, err = MakeProject(lit)
	requireValidation(t, err, "kind")
}

func TestMakeProjectImportOverride(t *testing.T) {
	p, err := MakeProject(obj{
		"name":        "gltf_sponza",
		"settings":    obj{"output_dir": "./output/cg", "width": 800, "height": 800, "nsamples": 10, "max_depth": 40, "mis_weight": 0.5},
		"accelerator": obj{"kind": "nop"},
		"scenes": []any{
			obj{
				"kind":       "uri",
				"uri":        "assets:///models/no-sync/sponza.gltf",
				"transforms": []any{obj{"kind": "rotate", "axis": vec(0, 1, 0), "angle": 90}},
			},
			obj{
				"kind":         "custom",
				"camera":       obj{"look_from": vec(0, 2, 2), "look_at": vec(0, 2, 0), "view_up": vec(0, 1, 0), "vertical_fov": 120},
				"environments": []any{obj{"l": vec(1, 1, 1)}},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, scene.AcceleratorNop, p.Accelerator)
	require.Len(t, p.Scenes, 1)

	s := p.Scenes[0]
	assert.Equal(t, scene.KindURI, s.Kind())
	require.NotNil(t, s.Camera)
	assert.Equal(t, 120.0, s.Camera.VerticalFOV)
	assert.Equal(t, []scene.Environment{scene.NewEnvironment(core.NewVec3(1, 1, 1))}, s.Environments)
	assert.Equal(t, geometry.TransformStack{geometry.NewRotateY(90)}, s.Import.Transforms)
}

func TestMakeProjectErrors(t *testing.T) {
	settings := obj{"output_dir": "./output", "width": 10, "height": 10, "nsamples": 1, "max_depth": 1}
	camera := obj{"look_from": vec(0, 0, 1), "look_at": vec(0, 0, 0), "vertical_fov": 40}

	_, err := MakeProject(obj{"name": "empty", "settings": settings, "scenes": []any{}})
	requireConfiguration(t, err, "scenes")

	_, err = MakeProject(obj{"name": "no world", "settings": settings, "scenes": []any{obj{"camera": camera}}})
	requireConfiguration(t, err, "scene.world")

	_, err = MakeProject(obj{"name": "no settings", "scene": obj{"camera": camera}})
	requireConfiguration(t, err, "settings")

	_, err = MakeProject(obj{"name": "bad scene kind", "settings": settings, "scenes": []any{obj{"kind": "gltf"}}})
	requireValidation(t, err, "kind")

	_, err = MakeProject(obj{"name": "bad accelerator", "settings": settings, "accelerator": "kdtree",
		"scenes": []any{obj{"kind": "uri", "uri": "assets:///models/a.gltf"}}})
	requireConfiguration(t, err, "accelerator")

	_, err = MakeProject(obj{"name": "structural", "settings": settings, "scene": obj{
		"camera": camera,
		"world":  []any{obj{"kind": "container", "children": []any{}}},
	}})
	require.NoError(t, err, "empty children are reported when the world is resolved")
}

func TestMakeProjectStructuralErrorOnResolve(t *testing.T) {
	lit := simpleProject()
	lit["scene"].(obj)["world"] = []any{obj{"kind": "container", "children": []any{}}}
	p, err := MakeProject(lit)
	require.NoError(t, err)

	_, err = p.Resolve()
	serr := requireStructural(t, err)
	assert.Equal(t, "world[0]", serr.Path)
}

func TestMakeSky(t *testing.T) {
	lit := simpleProject()
	sceneLit := lit["scene"].(obj)
	delete(sceneLit, "environments")
	sceneLit["sky"] = obj{"kind": "solid", "background": vec(0.7, 0.8, 1)}

	p, err := MakeProject(lit)
	require.NoError(t, err)
	assert.Equal(t, []scene.Environment{scene.NewEnvironment(core.NewVec3(0.7, 0.8, 1))}, p.Scenes[0].EffectiveEnvironments())

	_, err = MakeSky(obj{"kind": "gradient", "background": vec(0, 0, 0)})
	requireConfiguration(t, err, "sky.kind")
}
