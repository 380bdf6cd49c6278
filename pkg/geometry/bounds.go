package geometry

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/df07/go-scene-description/pkg/core"
)

// Bounds returns a conservative object-space bounding box of s. The second
// result is false when the extent is unknown, as for meshes loaded by uri.
func Bounds(s Shape) (core.AABB, bool) {
	switch shape := s.(type) {
	case *Sphere:
		return core.NewAABBAround(shape.Center, shape.Radius), true
	case *MovingSphere:
		b := core.NewAABBAround(shape.Center0, shape.Radius)
		return b.Union(core.NewAABBAround(shape.Center1, shape.Radius)), true
	case *Rect:
		return core.NewAABBFromPoints(shape.V0, shape.V1), true
	case *Disk:
		return core.NewAABBAround(shape.Center, shape.Radius), true
	case *Cube:
		return core.NewAABB(shape.PMin, shape.PMax), true
	case *Cylinder:
		b := core.NewAABBAround(shape.Center0, shape.Radius)
		return b.Union(core.NewAABBAround(shape.Center1, shape.Radius)), true
	case *Triangle:
		return core.NewAABBFromPoints(shape.V0, shape.V1, shape.V2), true
	case *Pyramid:
		return core.NewAABBFromPoints(shape.V0, shape.V1, shape.V2, shape.V3), true
	case *RegularPolygon:
		return core.NewAABBFromPoints(shape.Vertices()...), true
	case *Mesh:
		return meshBounds(shape)
	}
	return core.AABB{}, false
}

// meshBounds scans the vertex lines of an inline OBJ mesh
func meshBounds(m *Mesh) (core.AABB, bool) {
	if m.Text == "" {
		return core.AABB{}, false
	}

	var vertices []core.Vec3
	scanner := bufio.NewScanner(strings.NewReader(m.Text))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] != "v" {
			continue
		}
		var xyz [3]float64
		valid := true
		for i := range xyz {
			f, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				valid = false
				break
			}
			xyz[i] = f * m.Scale
		}
		if valid {
			vertices = append(vertices, core.NewVec3(xyz[0], xyz[1], xyz[2]))
		}
	}
	if len(vertices) == 0 {
		return core.AABB{}, false
	}
	return core.NewAABBFromPoints(vertices...), true
}

// ApplyBounds returns the bounding box of b after the stack is applied
func (s TransformStack) ApplyBounds(b core.AABB) core.AABB {
	if len(s) == 0 {
		return b
	}
	corners := b.Corners()
	for i, c := range corners {
		corners[i] = s.Apply(c)
	}
	return core.NewAABBFromPoints(corners[:]...)
}
