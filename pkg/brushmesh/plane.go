package brushmesh

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Winding selects how the three defining points of a plane are turned into
// its normal, and in which rotational order face vertices are emitted.
type Winding int

const (
	// Clockwise derives the normal as cross(B-A, C-A) and sorts face vertices
	// by descending angle about the face normal.
	Clockwise Winding = iota
	// CounterClockwise derives the normal as cross(C-A, B-A) and sorts face
	// vertices by ascending angle about the face normal.
	CounterClockwise
)

func (w Winding) String() string {
	if w == CounterClockwise {
		return "ccw"
	}

	return "cw"
}

// Classification is the position of a point relative to a plane.
type Classification int

const (
	Behind Classification = iota
	OnFace
	Front
)

// Plane is a half-space boundary defined by three points.
//
// Normal is unit length and Distance is -dot(Normal, A), so
// dot(Normal, P) + Distance is zero for every P on the plane.
type Plane struct {
	A, B, C  mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// NewPlane builds a plane from three non-collinear points.
// Collinear points are a precondition violation and produce a zero normal.
func NewPlane(a, b, c mgl64.Vec3, winding Winding) Plane {
	var normal mgl64.Vec3
	if winding == CounterClockwise {
		normal = c.Sub(a).Cross(b.Sub(a))
	} else {
		normal = b.Sub(a).Cross(c.Sub(a))
	}

	if l := normal.Len(); l != 0 {
		normal = normal.Mul(1 / l)
	}

	return Plane{
		A:        a,
		B:        b,
		C:        c,
		Normal:   normal,
		Distance: -normal.Dot(a),
	}
}

// PlaneFromNormal builds a plane from the compiled-map form dot(normal, P) = dist.
// Three points on the plane are synthesised so that NewPlane(A, B, C, Clockwise)
// yields the same normal.
func PlaneFromNormal(normal mgl64.Vec3, dist float64) Plane {
	if l := normal.Len(); l != 0 {
		normal = normal.Mul(1 / l)
		dist /= l
	}

	// any axis not parallel to the normal gives a usable tangent
	axis := mgl64.Vec3{0, 0, 1}
	if abs(normal[2]) > 0.9 {
		axis = mgl64.Vec3{1, 0, 0}
	}

	u := axis.Cross(normal).Normalize()
	v := normal.Cross(u)
	origin := normal.Mul(dist)

	return Plane{
		A:        origin,
		B:        origin.Add(u),
		C:        origin.Add(v),
		Normal:   normal,
		Distance: -dist,
	}
}

// SignedDistance returns the distance of point from the plane, positive in front.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) + p.Distance
}

// Classify reports on which side of the plane point lies.
func (p Plane) Classify(point mgl64.Vec3, tolerance float64) Classification {
	switch diff := p.SignedDistance(point); {
	case diff > tolerance:
		return Front
	case diff < -tolerance:
		return Behind
	default:
		return OnFace
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}
