package brushmesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection is the planar texture mapping of a face.
type Projection struct {
	BasisS, BasisT mgl32.Vec3
	Offset         mgl32.Vec2
	Scale          mgl32.Vec2
	Rotation       float32 // degrees, already folded into BasisS/BasisT
}

// Side is one bounding face of a Solid.
type Side struct {
	Plane   Plane
	Texture string
	Projection
}

// Solid is a convex brush described only by its bounding planes.
// Convexity is assumed, not checked.
type Solid struct {
	Sides []Side
	Color mgl32.Vec4
}

// Vertex is a single mesh vertex. Vertices are never shared between faces.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec4
	UV       mgl32.Vec2
}
