package scene

import (
	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
	"github.com/df07/go-scene-description/pkg/primitive"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellCamera looks into the open side of the box
func cornellCamera() *Camera {
	camera := NewCamera(
		core.NewVec3(278, 278, -800), // outside the box
		core.NewVec3(278, 278, 0),    // center of the opening
		40.0,
	)
	camera.Aspect = 1.0
	camera.FocusDist = 10.0
	return camera
}

// cornellWalls returns the five walls of the box as leaf nodes
func cornellWalls() []primitive.Node {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []primitive.Node{
		// Right wall (green) - YZ plane at x=boxSize
		primitive.NewGeom(geometry.NewRect(core.NewVec3(boxSize, 0, 0), core.NewVec3(boxSize, boxSize, boxSize)), green),
		// Left wall (red) - YZ plane at x=0
		primitive.NewGeom(geometry.NewRect(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, boxSize)), red),
		// Ceiling - XZ plane at y=boxSize
		primitive.NewGeom(geometry.NewRect(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, boxSize, boxSize)), white),
		// Floor - XZ plane at y=0
		primitive.NewGeom(geometry.NewRect(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, boxSize)), white),
		// Back wall - XY plane at z=boxSize
		primitive.NewGeom(geometry.NewRect(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, boxSize, boxSize)), white),
	}
}

// NewCornellProject creates the classic Cornell box with a disk area light
// and two rotated boxes, written with flat per-node transform lists
func NewCornellProject() (*Project, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	world := primitive.NewList(cornellWalls()...)

	// Ceiling light, slightly below the ceiling to avoid coplanar surfaces
	world.Push(primitive.NewGeom(
		geometry.NewDisk(core.NewVec3(268, 554, 280), 100, core.NewVec3(0, 1, 0)),
		light,
	).AsAreaLight())

	// Tall box and short box
	world.Push(
		primitive.NewGeom(geometry.NewCube(core.Vec3{}, core.NewVec3(165, 330, 165)), white).
			WithTransforms(geometry.NewRotateY(15), geometry.NewTranslate(core.NewVec3(265, 0, 295))),
		primitive.NewGeom(geometry.NewCube(core.Vec3{}, core.NewVec3(165, 165, 165)), white).
			WithTransforms(geometry.NewRotateY(-18), geometry.NewTranslate(core.NewVec3(130, 0, 65))),
	)

	settings := NewSettings("./output/cg", 500, 500, 500, 50)
	return NewProject("cornell_box", settings, NewScene(primitive.NewBVH(world.Freeze()...), cornellCamera()))
}

// NewFoggyCornellProject creates the Cornell box with both boxes filled with
// smoke, written with the older single-child wrapper nodes
func NewFoggyCornellProject() (*Project, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	world := primitive.NewList(cornellWalls()...)

	// The ceiling rect faces up by default, flip it to light the box
	world.Push(primitive.NewFlipFace(primitive.NewGeom(
		geometry.NewRect(core.NewVec3(113, 554, 127), core.NewVec3(443, 554, 432)),
		light,
	)))

	shortBox := primitive.NewTranslate(core.NewVec3(130, 0, 65),
		primitive.NewRotate(geometry.AxisY, -18,
			primitive.NewGeom(geometry.NewCube(core.Vec3{}, core.NewVec3(165, 165, 165)), white)))
	tallBox := primitive.NewTranslate(core.NewVec3(265, 0, 295),
		primitive.NewRotate(geometry.AxisY, 15,
			primitive.NewGeom(geometry.NewCube(core.Vec3{}, core.NewVec3(165, 330, 165)), white)))

	world.Push(
		primitive.NewConstantMedium(shortBox, 0.01, material.NewConstantTexture(core.NewVec3(1, 1, 1))),
		primitive.NewConstantMedium(tallBox, 0.01, material.NewConstantTexture(core.NewVec3(0, 0, 0))),
	)

	bvh, err := primitive.NewWorld(primitive.WorldBVH, 0, 1, world.Freeze()...)
	if err != nil {
		return nil, err
	}
	s := NewScene(bvh, cornellCamera())
	s.Sky = NewSolidSky(core.NewVec3(0, 0, 0))

	settings := NewSettings("./output", 800, 800, 100, 15)
	return NewProject("cornell_box_foggy", settings, s)
}
