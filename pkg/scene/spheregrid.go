package scene

import (
	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
	"github.com/df07/go-scene-description/pkg/primitive"
)

// NewRandomSpheresProject creates the "final scene" of small random spheres
// around three large ones. All randomness comes from rng so a fixed seed
// always yields the same document.
func NewRandomSpheresProject(rng *core.Random) (*Project, error) {
	world := primitive.NewList()

	// Checkered ground
	ground := material.NewTexturedLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	world.Push(primitive.NewGeom(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), ground))

	small := primitive.NewList()
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			// Hue follows the grid position, lightness is jittered
			hue := 360 * float64((a+11)*22+(b+11)) / (22 * 22)
			color := core.HCLToVec3(hue, 0.35, rng.Range(0.45, 0.75))

			choose := rng.Float64()
			switch {
			case choose < 0.6:
				// Diffuse, some of them bouncing during the shutter interval
				mat := material.NewLambertian(color.MultiplyVec(rng.Color()))
				if choose < 0.15 {
					end := center.Add(core.NewVec3(0, rng.Range(0, 0.5), 0))
					small.Push(primitive.NewGeom(geometry.NewMovingSphere(center, end, 0, 1, 0.2), mat))
				} else {
					small.Push(primitive.NewGeom(geometry.NewSphere(center, 0.2), mat))
				}
			case choose < 0.85:
				// Metal
				mat := material.NewMetal(color, rng.Range(0, 0.5))
				small.Push(primitive.NewGeom(geometry.NewSphere(center, 0.2), mat))
			default:
				// Glass
				small.Push(primitive.NewGeom(geometry.NewSphere(center, 0.2), material.NewDielectric(1.5)))
			}
		}
	}
	if small.Len() > 0 {
		world.Push(small.Container())
	}

	world.Push(
		primitive.NewGeom(geometry.NewSphere(core.NewVec3(0, 1, 0), 1), material.NewDielectric(1.5)),
		primitive.NewGeom(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1), material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		primitive.NewGeom(geometry.NewSphere(core.NewVec3(4, 1, 0), 1), material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	camera := NewCamera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20)
	camera.Aperture = 0.1
	camera.FocusDist = 10
	camera.Time1 = 1

	s := NewScene(primitive.NewBVH(world.Freeze()...), camera, NewEnvironment(core.NewVec3(0.7, 0.8, 1.0)))
	settings := NewSettings("./output/cg", 600, 400, 100, 50)
	return NewProject("random_spheres", settings, s)
}
