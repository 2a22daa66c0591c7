package brushmesh

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Boundary holds, per side of a solid (same indices as Solid.Sides), the
// unordered set of points where that side meets at least two other sides.
type Boundary [][]mgl64.Vec3

// ReconstructBoundary intersects every triple of the solid's planes and keeps
// the intersection points that lie inside or on every plane.
//
// Triples whose planes do not meet in a single point are skipped. A side that
// collects fewer than 3 points is degenerate; it is left in the boundary and
// dropped later by Assemble. Results for non-convex solids are undefined.
func ReconstructBoundary(solid Solid, opts Options) Boundary {
	opts = opts.withDefaults()

	n := len(solid.Sides)
	boundary := make(Boundary, n)

	if n < 3 {
		return boundary
	}

	for _, t := range Combinations(n, 3) {
		i, j, k := t[0], t[1], t[2]

		p, ok := intersect(solid.Sides[i].Plane, solid.Sides[j].Plane, solid.Sides[k].Plane, opts.ParallelEpsilon)
		if !ok {
			continue
		}

		if !isLegal(solid, p, opts.Tolerance) {
			continue
		}

		for _, s := range t {
			if !containsPoint(boundary[s], p, opts.Tolerance) {
				boundary[s] = append(boundary[s], p)
			}
		}
	}

	return boundary
}

// intersect solves dot(N, P) + D = 0 for three planes with Cramer's rule.
func intersect(a, b, c Plane, epsilon float64) (mgl64.Vec3, bool) {
	bc := b.Normal.Cross(c.Normal)

	denom := a.Normal.Dot(bc)
	if abs(denom) < epsilon {
		return mgl64.Vec3{}, false
	}

	ca := c.Normal.Cross(a.Normal)
	ab := a.Normal.Cross(b.Normal)

	p := bc.Mul(a.Distance).
		Add(ca.Mul(b.Distance)).
		Add(ab.Mul(c.Distance)).
		Mul(-1 / denom)

	return p, true
}

// isLegal reports whether p is not in front of any side of the solid.
// Points that fail this are phantom vertices of non-adjacent plane triples.
func isLegal(solid Solid, p mgl64.Vec3, tolerance float64) bool {
	for i := range solid.Sides {
		if solid.Sides[i].Plane.Classify(p, tolerance) == Front {
			return false
		}
	}

	return true
}

func containsPoint(points []mgl64.Vec3, p mgl64.Vec3, tolerance float64) bool {
	for _, q := range points {
		if abs(q[0]-p[0]) <= tolerance && abs(q[1]-p[1]) <= tolerance && abs(q[2]-p[2]) <= tolerance {
			return true
		}
	}

	return false
}
