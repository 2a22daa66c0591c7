package brushmesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// ErrInvalidTextureSize is returned when a texture width or height is not positive.
var ErrInvalidTextureSize = errors.New("invalid texture size")

// UV projects a world position onto the texture plane of a face with the
// given texture size in pixels:
//
//	u = (dot(position, BasisS) + Offset.x*Scale.x) / (width*Scale.x)
//	v = (dot(position, BasisT) + Offset.y*Scale.y) / (height*Scale.y)
//
// A zero scale component is treated as 1.
func (p Projection) UV(position mgl32.Vec3, width, height int) mgl32.Vec2 {
	sx, sy := p.Scale[0], p.Scale[1]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}

	return mgl32.Vec2{
		(position.Dot(p.BasisS) + p.Offset[0]*sx) / (float32(width) * sx),
		(position.Dot(p.BasisT) + p.Offset[1]*sy) / (float32(height) * sy),
	}
}

// ComputeUV projects a single vertex of side for a width x height texture.
func ComputeUV(vertex Vertex, side Side, width, height int) mgl32.Vec2 {
	return side.Projection.UV(vertex.Position, width, height)
}

// TextureSizer resolves texture names to pixel dimensions.
type TextureSizer interface {
	TextureSize(name string) (width, height int, ok bool)
}

// TextureSize is the pixel size of a texture.
type TextureSize struct {
	Width, Height int
}

// TextureSizes is a map-backed TextureSizer.
type TextureSizes map[string]TextureSize

// TextureSize implements TextureSizer.
func (ts TextureSizes) TextureSize(name string) (int, int, bool) {
	s, ok := ts[name]

	return s.Width, s.Height, ok
}

// ComputeUVs recomputes, in place, the UVs of every polygon that uses texture.
// Geometry is left untouched.
func (m *Mesh) ComputeUVs(texture string, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidTextureSize, "texture %q is %dx%d", texture, width, height)
	}

	for i := range m.Polygons {
		if m.Polygons[i].Texture == texture {
			m.projectPolygon(&m.Polygons[i], width, height)
		}
	}

	return nil
}

// ApplyTextureSizes recomputes the UVs of every polygon whose texture is known
// to sizes. Unknown textures keep their current UVs.
func (m *Mesh) ApplyTextureSizes(sizes TextureSizer) error {
	for i := range m.Polygons {
		poly := &m.Polygons[i]

		w, h, ok := sizes.TextureSize(poly.Texture)
		if !ok {
			continue
		}

		if w <= 0 || h <= 0 {
			return errors.Wrapf(ErrInvalidTextureSize, "texture %q is %dx%d", poly.Texture, w, h)
		}

		m.projectPolygon(poly, w, h)
	}

	return nil
}

func (m *Mesh) projectPolygon(poly *Polygon, width, height int) {
	verts := m.Vertices[poly.FirstVertex : poly.FirstVertex+poly.NumVertices]
	for i := range verts {
		verts[i].UV = poly.Projection.UV(verts[i].Position, width, height)
	}
}
