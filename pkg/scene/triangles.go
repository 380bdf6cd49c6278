package scene

import (
	"github.com/df07/go-scene-description/pkg/core"
	"github.com/df07/go-scene-description/pkg/geometry"
	"github.com/df07/go-scene-description/pkg/material"
	"github.com/df07/go-scene-description/pkg/primitive"
)

// tetrahedronOBJ is a small inline mesh so the scene needs no asset files
const tetrahedronOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 3 2
f 1 2 4
f 1 4 3
f 2 3 4
`

// NewTrianglesProject creates a scene of flat and faceted shapes: a rotated
// triangle, a pyramid, a hexagon and an inline mesh under a blue sky
func NewTrianglesProject() (*Project, error) {
	blue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.8))
	gold := material.NewMetal(core.HexToVec3(0xd4af37), 0.2)
	glass := material.NewTransparent(core.NewVec3(1, 1, 1), 1.5, 0.1)

	world := primitive.NewList()
	world.Push(primitive.NewTransformGroup(
		geometry.TransformStack{geometry.NewRotateY(60), geometry.NewRotateZ(-30)},
		primitive.NewGeom(geometry.NewTriangle(core.NewVec3(0, 1, 0), core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0)), blue),
	))

	// A cylinder was tried here as well; keep it out of the document
	world.Push(primitive.NewRotate(geometry.AxisX, -20,
		primitive.NewGeom(geometry.NewCylinder(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), 1), blue)))
	world.Pop()

	world.Push(
		primitive.NewGeom(geometry.NewPyramid(
			core.NewVec3(2, -1, 0), core.NewVec3(4, -1, 0), core.NewVec3(3, -1, -1.5), core.NewVec3(3, 0.5, -0.5),
		), gold),
		primitive.NewGeom(geometry.NewRegularPolygon(core.NewVec3(-3, 0, 0), 1, 6), glass),
		primitive.NewGeom(geometry.NewMeshFromText(tetrahedronOBJ).WithScale(1.5), gold).
			WithTransforms(geometry.NewTranslate(core.NewVec3(0, -3, 0))),
	)

	list, err := primitive.NewWorld(primitive.WorldList, 0, 1, world.Freeze()...)
	if err != nil {
		return nil, err
	}
	camera := NewCamera(core.NewVec3(0, 0, 20), core.NewVec3(0, 0, 0), 20)
	camera.Aspect = 1
	camera.FocusDist = 10
	s := NewScene(list, camera)
	s.Sky = NewSolidSky(core.NewVec3(0.7, 0.8, 1.0))

	return NewProject("triangles", NewSettings("./output", 400, 400, 100, 15), s)
}
