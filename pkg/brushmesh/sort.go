package brushmesh

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// SortFaceVertices orders coplanar points of a convex face so they can be
// emitted as a triangle fan. points[0] stays first; the rest follow by their
// angle around the face centroid, measured about normal. CounterClockwise
// sorts ascending, Clockwise descending.
//
// The input slice is not modified. Fewer than 3 points are returned as-is.
func SortFaceVertices(points []mgl64.Vec3, normal mgl64.Vec3, winding Winding) []mgl64.Vec3 {
	out := append([]mgl64.Vec3(nil), points...)
	if len(out) < 3 {
		return out
	}

	var centroid mgl64.Vec3
	for _, p := range out {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(out)))

	ref := out[0].Sub(centroid)

	angles := make([]float64, len(out))
	order := make([]int, len(out))

	for i, p := range out {
		order[i] = i

		if i == 0 {
			continue
		}

		v := p.Sub(centroid)
		a := math.Atan2(normal.Dot(ref.Cross(v)), ref.Dot(v))

		if winding == Clockwise {
			a = -a
		}

		// keep the reference point first
		if a < 0 {
			a += 2 * math.Pi
		}

		angles[i] = a
	}

	sort.SliceStable(order, func(x, y int) bool {
		return angles[order[x]] < angles[order[y]]
	})

	sorted := make([]mgl64.Vec3, len(out))
	for i, idx := range order {
		sorted[i] = out[idx]
	}

	return sorted
}
