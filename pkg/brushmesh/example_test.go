package brushmesh_test

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/saiko-tech/brushmesh/pkg/brushmesh"
)

func cube(size float64) brushmesh.Solid {
	var solid brushmesh.Solid

	for _, n := range []mgl64.Vec3{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}} {
		solid.Sides = append(solid.Sides, brushmesh.Side{
			Plane:   brushmesh.PlaneFromNormal(n, size/2),
			Texture: "dev/dev_measuregeneric01",
		})
	}

	return solid
}

func ExampleBuild() {
	m := brushmesh.Build(cube(128), brushmesh.DefaultOptions())

	fmt.Println("faces:", len(m.Polygons))
	fmt.Println("vertices:", m.VertexCount())
	fmt.Println("triangles:", m.TriangleCount())
	fmt.Println("bounds:", m.Bounds.Min, m.Bounds.Max)

	// Output:
	// faces: 6
	// vertices: 24
	// triangles: 12
	// bounds: [-64 -64 -64] [64 64 64]
}

func ExampleBuildAll() {
	open := cube(64)
	open.Sides = open.Sides[:4]

	meshes, err := brushmesh.BuildAll(context.Background(), []brushmesh.Solid{cube(64), open}, brushmesh.DefaultOptions())

	fmt.Println(len(meshes), err)

	// Output:
	// 2 solids without geometry: (1)
}

func ExampleMesh_Raycast() {
	m := brushmesh.Build(cube(128), brushmesh.DefaultOptions())

	hit, ok := m.Raycast([3]float32{-200, 10, -20}, [3]float32{1, 0, 0})

	fmt.Println(ok, hit.Side, hit.T)

	// Output:
	// true 0 136
}
