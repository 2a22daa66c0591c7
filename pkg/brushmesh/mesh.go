package brushmesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3 `json:"min"`
	Max mgl32.Vec3 `json:"max"`
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether point lies inside or on the box.
func (b AABB) Contains(point mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}

	return true
}

// IsEmpty reports whether the box has no volume.
func (b AABB) IsEmpty() bool {
	return b.Min[0] >= b.Max[0] || b.Min[1] >= b.Max[1] || b.Min[2] >= b.Max[2]
}

// Polygon is one triangulated face of a Mesh.
type Polygon struct {
	Side    int // index into the source Solid.Sides
	Texture string
	Projection
	Normal mgl32.Vec3

	// Indices[FirstIndex:FirstIndex+NumIndices] hold this face's triangles.
	FirstIndex int
	NumIndices int

	FirstVertex int
	NumVertices int
}

// TriangleCount returns the number of triangles in the face's fan.
func (p *Polygon) TriangleCount() int {
	return p.NumIndices / 3
}

// Mesh is the renderable result of a Solid.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32 // 3 per triangle
	Polygons []Polygon
	Bounds   AABB
	Centroid mgl32.Vec3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Polygons) == 0
}

// Build reconstructs and assembles the mesh of a single solid.
func Build(solid Solid, opts Options) *Mesh {
	return Assemble(solid, ReconstructBoundary(solid, opts), opts)
}

// Assemble turns the boundary points of each side into a fan-triangulated
// face and merges the faces into one mesh. Sides are visited in order; sides
// with fewer than 3 points produce no polygon.
//
// UVs are projected for a 1x1 texture; see ComputeUVs and ApplyTextureSizes.
func Assemble(solid Solid, boundary Boundary, opts Options) *Mesh {
	opts = opts.withDefaults()

	m := &Mesh{}

	for i, side := range solid.Sides {
		if i >= len(boundary) || len(boundary[i]) < 3 {
			continue
		}

		ring := SortFaceVertices(boundary[i], side.Plane.Normal, opts.Winding)
		normal := vec32(side.Plane.Normal)

		poly := Polygon{
			Side:        i,
			Texture:     side.Texture,
			Projection:  side.Projection,
			Normal:      normal,
			FirstIndex:  len(m.Indices),
			FirstVertex: len(m.Vertices),
			NumVertices: len(ring),
		}

		for _, p := range ring {
			pos := vec32(p)
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   normal,
				Color:    solid.Color,
				UV:       side.Projection.UV(pos, 1, 1),
			})
		}

		base := uint32(poly.FirstVertex)
		for t := 1; t < len(ring)-1; t++ {
			m.Indices = append(m.Indices, base, base+uint32(t), base+uint32(t+1))
		}

		poly.NumIndices = len(m.Indices) - poly.FirstIndex
		m.Polygons = append(m.Polygons, poly)
	}

	m.Bounds = extents(m.Vertices)
	m.Centroid = m.Bounds.Center()

	return m
}

// find minimum and maximum extents of the vertices
func extents(vertices []Vertex) (b AABB) {
	if len(vertices) == 0 {
		return b
	}

	b.Min = mgl32.Vec3{mgl32.MaxValue, mgl32.MaxValue, mgl32.MaxValue}
	b.Max = mgl32.Vec3{-mgl32.MaxValue, -mgl32.MaxValue, -mgl32.MaxValue}

	for _, v := range vertices {
		for i, f := range v.Position {
			if f < b.Min[i] {
				b.Min[i] = f
			}
			if f > b.Max[i] {
				b.Max[i] = f
			}
		}
	}

	return b
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
