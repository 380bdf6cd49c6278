package document

import (
	"bytes"
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

func testProject(t *testing.T) *scene.Project {
	t.Helper()
	light := primitive.NewGeom(
		geometry.NewRect(core.NewVec3(213, 554, 227), core.NewVec3(343, 554, 332)),
		material.NewDiffuseLight(core.NewVec3(15, 15, 15)),
	).AsAreaLight()
	ground := primitive.NewGeom(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	fog := primitive.NewConstantMedium(
		primitive.NewGeom(geometry.NewCube(core.Vec3{}, core.NewVec3(1, 1, 1)), nil).
			WithTransforms(geometry.NewRotateY(15), geometry.NewTranslate(core.NewVec3(2, 0, 0))),
		0.01, material.NewConstantTexture(core.Vec3{}),
	)
	world := primitive.NewBVH(light, ground, fog)

	p, err := scene.NewProject("doc",
		scene.NewSettings("./output", 200, 100, 4, 8),
		scene.NewScene(world, scene.NewCamera(core.NewVec3(0, 1, 5), core.Vec3{}, 40)),
		scene.NewImportedScene("assets:///models/cornell_box/simple.gltf"),
	)
	require.NoError(t, err)
	return p
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testProject(t)))

	var doc struct {
		Name        string `json:"name"`
		Accelerator string `json:"accelerator"`
		Settings    struct {
			Width int `json:"width"`
		} `json:"settings"`
		Scenes []struct {
			Kind   string `json:"kind"`
			URI    string `json:"uri"`
			Camera *struct {
				Aspect float64 `json:"aspect"`
			} `json:"camera"`
			World *struct {
				Kind     string           `json:"kind"`
				Children []map[string]any `json:"children"`
			} `json:"world"`
		} `json:"scenes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "doc", doc.Name)
	assert.Equal(t, scene.AcceleratorBVH, doc.Accelerator)
	assert.Equal(t, 200, doc.Settings.Width)
	require.Len(t, doc.Scenes, 2)
	assert.Equal(t, scene.KindCustom, doc.Scenes[0].Kind)
	require.NotNil(t, doc.Scenes[0].Camera)
	assert.Equal(t, 2.0, doc.Scenes[0].Camera.Aspect)
	require.NotNil(t, doc.Scenes[0].World)
	assert.Len(t, doc.Scenes[0].World.Children, 3)
	assert.Contains(t, doc.Scenes[0].World.Children[0], "area_light")
	assert.Contains(t, doc.Scenes[0].World.Children[2], "medium")
	assert.Equal(t, scene.KindURI, doc.Scenes[1].Kind)
	assert.Equal(t, "assets:///models/cornell_box/simple.gltf", doc.Scenes[1].URI)
	assert.Nil(t, doc.Scenes[1].World)
}

func TestEncodeStructuralError(t *testing.T) {
	p := testProject(t)
	p.Scenes[0].World.Children = append(p.Scenes[0].World.Children, primitive.NewContainer())

	_, err := Marshal(p)
	var serr *core.StructuralError
	require.True(t, errors.As(err, &serr), "got %v", err)
	assert.Equal(t, "world[3]", serr.Path)
}

func TestStats(t *testing.T) {
	resolved, err := testProject(t).Resolve()
	require.NoError(t, err)

	stats := Collect(resolved)
	assert.Equal(t, 2, stats.Scenes)
	assert.Equal(t, 1, stats.Imports)
	assert.Equal(t, 3, stats.Leaves)
	assert.Equal(t, 1, stats.Lights)
	assert.Equal(t, 1, stats.Media)
	assert.Equal(t, 2, stats.Transforms)
	assert.Equal(t, map[string]int{"rect": 1, "sphere": 1, "cube": 1}, stats.Shapes)
	assert.Equal(t, map[string]int{"diffuse_light": 1, "lambertian": 1}, stats.Materials)
	require.NotNil(t, stats.Bounds)
	assert.True(t, stats.Bounds.Min.ApproxEqual(core.NewVec3(-1000, -2000, -1000), 1e-9), "min %v", stats.Bounds.Min)
	assert.True(t, stats.Bounds.Max.ApproxEqual(core.NewVec3(1000, 554, 1000), 1e-9), "max %v", stats.Bounds.Max)

	table := stats.Table()
	assert.Contains(t, table, "Category")
	assert.Contains(t, table, "diffuse_light")
	assert.Contains(t, table, "Transform ops")
	assert.Contains(t, table, "Extent")
	assert.Equal(t, 1, stats.Bounds.LongestAxis())
	assert.Regexp(t, `Longest axis\s*\|\s*Y`, table)
}
