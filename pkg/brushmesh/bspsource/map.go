// Package bspsource reads the brushes of a compiled Source engine BSP map
// (on top of github.com/galaco/bsp) as brushmesh solids.
package bspsource

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/galaco/bsp"
	"github.com/galaco/bsp/lumps"
	"github.com/galaco/bsp/primitives/brush"
	"github.com/galaco/bsp/primitives/brushside"
	"github.com/galaco/bsp/primitives/plane"
	"github.com/galaco/bsp/primitives/texdata"
	"github.com/galaco/bsp/primitives/texinfo"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/saiko-tech/brushmesh/pkg/brushmesh"
)

// Map holds the brushes of a loaded BSP map.
type Map struct {
	Solids       []brushmesh.Solid
	Contents     []int32 // contents flags of Solids[i]
	Brushes      []int   // index of Solids[i] in the brush lump
	TextureSizes brushmesh.TextureSizes
}

type config struct {
	vpkPaths []string
	logger   *slog.Logger
}

// Option configures Load and Read.
type Option func(*config)

// WithVPKs makes Load look up the map inside the given VPK archives when it
// does not exist on disk. Paths are given without the "_dir.vpk" suffix.
func WithVPKs(paths ...string) Option {
	return func(c *config) {
		c.vpkPaths = append(c.vpkPaths, paths...)
	}
}

// WithLogger sets the logger used to report skipped brushes.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) config {
	c := config{logger: slog.Default()}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// Load loads the brushes of a BSP map from a file.
func Load(path string, opts ...Option) (*Map, error) {
	c := newConfig(opts)

	fs, err := newVFS(c.vpkPaths)
	if err != nil {
		return nil, err
	}

	f, err := fs.open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return read(f, c)
}

// Read loads the brushes of a BSP map from a stream.
func Read(r io.Reader, opts ...Option) (*Map, error) {
	return read(r, newConfig(opts))
}

func read(r io.Reader, c config) (*Map, error) {
	bspfile, err := bsp.ReadFromStream(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bsp")
	}

	data := mapData{
		brushes:    bspfile.Lump(bsp.LumpBrushes).(*lumps.Brush).GetData(),
		brushSides: bspfile.Lump(bsp.LumpBrushSides).(*lumps.BrushSide).GetData(),
		planes:     bspfile.Lump(bsp.LumpPlanes).(*lumps.Planes).GetData(),
		texInfos:   bspfile.Lump(bsp.LumpTexInfo).(*lumps.TexInfo).GetData(),
		texDatas:   bspfile.Lump(bsp.LumpTexData).(*lumps.TexData).GetData(),
		texNames: textureNames(
			bspfile.Lump(bsp.LumpTexDataStringData).(*lumps.TexDataStringData).GetData(),
			bspfile.Lump(bsp.LumpTexDataStringTable).(*lumps.TexDataStringTable).GetData(),
		),
	}

	return data.toMap(c.logger), nil
}

// Build builds the meshes of all solids and resolves their UVs against the
// texture sizes of the map. Like brushmesh.BuildAll it returns the meshes
// together with a brushmesh.DegenerateSolidsError if some brushes were empty.
func (m *Map) Build(ctx context.Context, opts brushmesh.Options) ([]*brushmesh.Mesh, error) {
	meshes, err := brushmesh.BuildAll(ctx, m.Solids, opts)
	if err != nil && !errors.As(err, new(brushmesh.DegenerateSolidsError)) {
		return nil, err
	}

	for i, mesh := range meshes {
		if uvErr := mesh.ApplyTextureSizes(m.TextureSizes); uvErr != nil {
			return nil, errors.Wrapf(uvErr, "failed to project brush %d", m.Brushes[i])
		}
	}

	return meshes, err
}

type mapData struct {
	brushes    []brush.Brush
	brushSides []brushside.BrushSide
	planes     []plane.Plane
	texInfos   []texinfo.TexInfo
	texDatas   []texdata.TexData
	texNames   []string
}

func (d mapData) toMap(logger *slog.Logger) *Map {
	m := &Map{
		TextureSizes: make(brushmesh.TextureSizes),
	}

	for _, td := range d.texDatas {
		name := d.textureName(td)
		if name == "" {
			continue
		}

		m.TextureSizes[name] = brushmesh.TextureSize{Width: int(td.Width), Height: int(td.Height)}
	}

	for i := range d.brushes {
		b := &d.brushes[i]

		solid, ok := d.solid(b, logger.With("brush", i))
		if !ok {
			continue
		}

		m.Solids = append(m.Solids, solid)
		m.Contents = append(m.Contents, b.Contents)
		m.Brushes = append(m.Brushes, i)
	}

	return m
}

func (d mapData) solid(b *brush.Brush, logger *slog.Logger) (brushmesh.Solid, bool) {
	solid := brushmesh.Solid{Color: contentsColor(b.Contents)}

	first, num := int(b.FirstSide), int(b.NumSides)
	if first < 0 || first+num > len(d.brushSides) {
		logger.Debug("skipping brush with out of range sides", "firstSide", first, "numSides", num)

		return solid, false
	}

	for _, bs := range d.brushSides[first : first+num] {
		if bs.Bevel&0xff != 0 {
			continue
		}

		if int(bs.PlaneNum) >= len(d.planes) {
			logger.Debug("skipping side with out of range plane", "plane", bs.PlaneNum)

			continue
		}

		solid.Sides = append(solid.Sides, d.side(bs))
	}

	if len(solid.Sides) < 3 {
		logger.Debug("skipping brush with too few sides", "sides", len(solid.Sides))

		return solid, false
	}

	return solid, true
}

func (d mapData) side(bs brushside.BrushSide) brushmesh.Side {
	p := d.planes[bs.PlaneNum]

	side := brushmesh.Side{
		Plane: brushmesh.PlaneFromNormal(vec64(p.Normal), float64(p.Distance)),
	}

	ti := int(bs.TexInfo)
	if ti < 0 || ti >= len(d.texInfos) {
		return side
	}

	info := d.texInfos[ti]
	s, t := info.TextureVecsTexelsPerWorldUnits[0], info.TextureVecsTexelsPerWorldUnits[1]

	side.Projection = brushmesh.Projection{
		BasisS: mgl32.Vec3{s[0], s[1], s[2]},
		BasisT: mgl32.Vec3{t[0], t[1], t[2]},
		Offset: mgl32.Vec2{s[3], t[3]},
		Scale:  mgl32.Vec2{1, 1},
	}

	if td := int(info.TexData); td >= 0 && td < len(d.texDatas) {
		side.Texture = d.textureName(d.texDatas[td])
	}

	return side
}

func (d mapData) textureName(td texdata.TexData) string {
	id := int(td.NameStringTableID)
	if id < 0 || id >= len(d.texNames) {
		return ""
	}

	return d.texNames[id]
}

// textureNames splits the texdata string data at the offsets of the string table.
func textureNames(data string, table []int32) []string {
	names := make([]string, len(table))

	for i, off := range table {
		if off < 0 || int(off) >= len(data) {
			continue
		}

		name := data[off:]
		if end := strings.IndexByte(name, 0); end >= 0 {
			name = name[:end]
		}

		names[i] = name
	}

	return names
}

var (
	colorSolid = mgl32.Vec4{0.8, 0.8, 0.8, 1}
	colorWater = mgl32.Vec4{0.2, 0.4, 0.9, 0.5}
	colorOther = mgl32.Vec4{0.9, 0.6, 0.2, 0.5}
)

func contentsColor(contents int32) mgl32.Vec4 {
	switch {
	case contents&bsp.CONTENTS_WATER != 0:
		return colorWater
	case contents&bsp.CONTENTS_SOLID != 0:
		return colorSolid
	default:
		return colorOther
	}
}

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
