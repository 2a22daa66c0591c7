// Package collision provides ray intersection primitives for picking brush meshes.
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const mollerTrumboreEpsilon = float32(0.0000001)

// RayCastResult is the outcome of a single ray test.
// T is the distance along the ray in units of the direction vector.
type RayCastResult struct {
	T     float32
	Hit   bool
	Point mgl32.Vec3
}

// RayIntersectsAxisAlignedBoundingBox determines whether ray intersects an axis-aligned bounding box.
// A ray starting inside the box hits at its exit point.
// based on https://github.com/Galaco/kero/blob/dedc4e04e830cc2597308cbfe9e9bcbe30491fae/physics/collision/ray.go#L73
func RayIntersectsAxisAlignedBoundingBox(origin, direction, min, max mgl32.Vec3) (r RayCastResult) {
	// zero direction components would divide by zero
	dir := direction
	for i := range dir {
		if dir[i] == 0 {
			dir[i] = 0.00001
		}
	}

	var tmin, tmax float64 = math.Inf(-1), math.Inf(1)

	for i := 0; i < 3; i++ {
		t1 := float64((min[i] - origin[i]) / dir[i])
		t2 := float64((max[i] - origin[i]) / dir[i])

		tmin = math.Max(tmin, math.Min(t1, t2))
		tmax = math.Min(tmax, math.Max(t1, t2))
	}

	// box entirely behind the origin
	if tmax < 0 {
		return r
	}

	if tmin > tmax {
		return r
	}

	t := tmin
	if tmin < 0 {
		t = tmax
	}

	r.Hit = true
	r.T = float32(t)
	r.Point = origin.Add(direction.Mul(r.T))

	return r
}

// RayIntersectsTriangle determines if a ray intersects a triangle using https://en.wikipedia.org/wiki/M%C3%B6ller%E2%80%93Trumbore_intersection_algorithm
// Both faces of the triangle are hit.
// based on https://github.com/Galaco/kero/blob/dedc4e04e830cc2597308cbfe9e9bcbe30491fae/physics/collision/ray.go#L143
func RayIntersectsTriangle(rayOrigin mgl32.Vec3, rayVector mgl32.Vec3, inTriangle [3]mgl32.Vec3) (r RayCastResult) {
	vertex0 := inTriangle[0]
	vertex1 := inTriangle[1]
	vertex2 := inTriangle[2]

	var (
		edge1, edge2, h, s, q mgl32.Vec3
		a, f, u, v            float32
	)

	edge1 = vertex1.Sub(vertex0)
	edge2 = vertex2.Sub(vertex0)
	h = rayVector.Cross(edge2)
	a = edge1.Dot(h)

	if a > -mollerTrumboreEpsilon && a < mollerTrumboreEpsilon {
		return r // parallel
	}

	f = 1.0 / a
	s = rayOrigin.Sub(vertex0)
	u = f * s.Dot(h)

	if u < 0.0 || u > 1.0 {
		return r
	}

	q = s.Cross(edge1)
	v = f * rayVector.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return r
	}

	t := f * edge2.Dot(q)

	if t > mollerTrumboreEpsilon {
		r.Hit = true
		r.T = t
		r.Point = rayOrigin.Add(rayVector.Mul(t))

		return r
	}

	// line intersection behind the ray origin
	return r
}
