package brushmesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/saiko-tech/brushmesh/pkg/brushmesh/collision"
)

// Hit is the nearest face of a mesh struck by a ray.
type Hit struct {
	Polygon int // index into Mesh.Polygons
	Side    int // index into the source Solid.Sides
	T       float32
	Point   mgl32.Vec3
}

// Raycast returns the nearest polygon hit by the ray origin + t*direction, t > 0.
func (m *Mesh) Raycast(origin, direction mgl32.Vec3) (Hit, bool) {
	if m.IsEmpty() {
		return Hit{}, false
	}

	if !m.Bounds.Contains(origin) {
		if !collision.RayIntersectsAxisAlignedBoundingBox(origin, direction, m.Bounds.Min, m.Bounds.Max).Hit {
			return Hit{}, false
		}
	}

	var (
		best  Hit
		found bool
	)

	for pi := range m.Polygons {
		poly := &m.Polygons[pi]

		for i := poly.FirstIndex; i < poly.FirstIndex+poly.NumIndices; i += 3 {
			tri := [3]mgl32.Vec3{
				m.Vertices[m.Indices[i]].Position,
				m.Vertices[m.Indices[i+1]].Position,
				m.Vertices[m.Indices[i+2]].Position,
			}

			r := collision.RayIntersectsTriangle(origin, direction, tri)
			if !r.Hit || (found && r.T >= best.T) {
				continue
			}

			best = Hit{Polygon: pi, Side: poly.Side, T: r.T, Point: r.Point}
			found = true
		}
	}

	return best, found
}
