package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
	"github.com/df07/go-scene-description/pkg/primitive"
)

// NewPolygonLightsProject creates the multiple importance sampling test
// scene: four glossy boards of increasing roughness lit by four polygon
// lights of increasing size and equal power
func NewPolygonLightsProject(misWeight float64) (*Project, error) {
	world := primitive.NewList()

	// Back wall and floor
	dark := material.NewLambertian(core.NewVec3(0.1, 0.1, 0.1))
	world.Push(
		primitive.NewGeom(geometry.NewRect(core.NewVec3(-10, 0, -2), core.NewVec3(10, 10, -2)), dark),
		primitive.NewGeom(geometry.NewRect(core.NewVec3(-10, 0, -2), core.NewVec3(10, 0, 10)), dark),
	)

	// Boards: rect in the XZ plane tilted toward the camera
	roughness := []float64{0.05, 0.1, 0.25, 0.5}
	for i, r := range roughness {
		board := material.NewGltfPBR(core.NewVec3(0.3, 0.3, 0.3), 1, r)
		z := 4 - 1.2*float64(i)
		tilt := 10 + 8*float64(i)
		world.Push(primitive.NewGeom(
			geometry.NewRect(core.NewVec3(-4, 0, -0.5), core.NewVec3(4, 0, 0.5)),
			board,
		).WithTransforms(geometry.NewRotateX(tilt), geometry.NewTranslate(core.NewVec3(0, 1+0.6*float64(i), z))))
	}

	// Lights share one total power, so smaller polygons are brighter
	lights := primitive.NewList()
	radii := []float64{0.05, 0.15, 0.4, 1.0}
	for i, r := range radii {
		polygon := geometry.NewRegularPolygon(core.Vec3{}, r, 6)
		radiance := 2.0 / polygon.Area()
		lights.Push(primitive.NewGeom(polygon, material.NewDiffuseLight(core.NewVec3(radiance, radiance, radiance))).
			WithTransforms(geometry.NewTranslate(core.NewVec3(-3+2*float64(i), 5, -1.5))))
	}
	world.Push(primitive.NewAreaLightMarker(lights.Container().WithTags(primitive.TagLights)))

	camera := NewCamera(core.NewVec3(0, 6, 14), core.NewVec3(0, 2, 0), 35)
	s := NewScene(primitive.NewBVH(world.Freeze()...), camera)

	settings := NewSettings("./output/cg", 768, 512, 64, 20).WithMISWeight(misWeight)
	name := "polygon_lights"
	if misWeight != 0.5 {
		name = "polygon_lights_" + formatWeight(misWeight)
	}
	return NewProject(name, settings, s)
}

func formatWeight(w float64) string {
	return fmt.Sprintf("%03d", int(math.Round(w*100)))
}
