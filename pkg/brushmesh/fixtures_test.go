package brushmesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var axisProjection = Projection{
	BasisS: mgl32.Vec3{1, 0, 0},
	BasisT: mgl32.Vec3{0, -1, 0},
	Scale:  mgl32.Vec2{1, 1},
}

func side(p Plane, texture string) Side {
	return Side{Plane: p, Texture: texture, Projection: axisProjection}
}

// facing returns the plane through point with the given outward normal.
func facing(normal mgl64.Vec3, point mgl64.Vec3) Side {
	n := normal.Normalize()

	return side(PlaneFromNormal(n, n.Dot(point)), "dev/facing")
}

// boxSolid builds an axis-aligned box from three-point planes, the way map
// files describe brushes. Every normal points out of the box.
func boxSolid(min, max mgl64.Vec3) Solid {
	v := func(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

	return Solid{
		Color: mgl32.Vec4{1, 1, 1, 1},
		Sides: []Side{
			side(NewPlane(v(min[0], 0, 0), v(min[0], 0, 1), v(min[0], 1, 0), Clockwise), "dev/west"),
			side(NewPlane(v(max[0], 0, 0), v(max[0], 1, 0), v(max[0], 0, 1), Clockwise), "dev/east"),
			side(NewPlane(v(0, min[1], 0), v(1, min[1], 0), v(0, min[1], 1), Clockwise), "dev/south"),
			side(NewPlane(v(0, max[1], 0), v(0, max[1], 1), v(1, max[1], 0), Clockwise), "dev/north"),
			side(NewPlane(v(0, 0, min[2]), v(0, 1, min[2]), v(1, 0, min[2]), Clockwise), "dev/floor"),
			side(NewPlane(v(0, 0, max[2]), v(1, 0, max[2]), v(0, 1, max[2]), Clockwise), "dev/ceiling"),
		},
	}
}

func cube128() Solid {
	return boxSolid(mgl64.Vec3{-64, -64, -64}, mgl64.Vec3{64, 64, 64})
}

// tetraSolid is the corner tetrahedron with vertices at the origin and at 64
// on each axis.
func tetraSolid() Solid {
	o := mgl64.Vec3{}

	return Solid{Sides: []Side{
		facing(mgl64.Vec3{-1, 0, 0}, o),
		facing(mgl64.Vec3{0, -1, 0}, o),
		facing(mgl64.Vec3{0, 0, -1}, o),
		facing(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{64, 0, 0}),
	}}
}

// zigguratSolid is a truncated pyramid: a 128x128 base at z=0 and a 64x64 top
// at z=64. Its four slanted sides meet in a phantom apex at (0, 0, 128).
func zigguratSolid() Solid {
	return Solid{Sides: []Side{
		facing(mgl64.Vec3{2, 0, 1}, mgl64.Vec3{64, 0, 0}),
		facing(mgl64.Vec3{-2, 0, 1}, mgl64.Vec3{-64, 0, 0}),
		facing(mgl64.Vec3{0, 2, 1}, mgl64.Vec3{0, 64, 0}),
		facing(mgl64.Vec3{0, -2, 1}, mgl64.Vec3{0, -64, 0}),
		facing(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 64}),
		facing(mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, 0}),
	}}
}

// prismSolid is a right triangular prism along Z. Its three side planes all
// contain the Z axis direction, so their triple has no unique intersection.
func prismSolid() Solid {
	o := mgl64.Vec3{}

	return Solid{Sides: []Side{
		facing(mgl64.Vec3{-1, 0, 0}, o),
		facing(mgl64.Vec3{0, -1, 0}, o),
		facing(mgl64.Vec3{1, 1, 0}, mgl64.Vec3{64, 0, 0}),
		facing(mgl64.Vec3{0, 0, -1}, o),
		facing(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 64}),
	}}
}

// distinctPositions counts vertex positions that differ by more than tolerance.
func distinctPositions(m *Mesh, tolerance float32) int {
	var seen []mgl32.Vec3

outer:
	for _, v := range m.Vertices {
		for _, s := range seen {
			if v.Position.ApproxEqualThreshold(s, tolerance) {
				continue outer
			}
		}

		seen = append(seen, v.Position)
	}

	return len(seen)
}
