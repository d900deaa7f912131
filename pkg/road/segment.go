package road

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/foliage"
	"github.com/golangdaddy/roadloop/pkg/geom"
	"github.com/golangdaddy/roadloop/pkg/noise"
	"github.com/golangdaddy/roadloop/pkg/scene"
	"github.com/golangdaddy/roadloop/pkg/terrain"
)

// Segment is one repeatable tile of road, ground and decoration. Only its
// root group moves; its contents are built once.
type Segment struct {
	Name    string
	Root    scene.Handle
	Terrain *geom.Mesh
	Grass   [2]scene.Handle
	Trees   int
	Stripes int
}

// SetOffset moves the segment along the travel axis.
func (s *Segment) SetOffset(g *scene.Graph, z float64) {
	g.Node(s.Root).Transform.Position[2] = z
}

// Offset returns the segment's current position along the travel axis.
func (s *Segment) Offset(g *scene.Graph) float64 {
	return g.Node(s.Root).Transform.Position.Z()
}

// Materials shared by every segment.
var (
	RoadMaterial   = &scene.Material{Color: color.RGBA{0x33, 0x33, 0x33, 255}, DoubleSided: true}
	StripeMaterial = &scene.Material{Color: color.RGBA{255, 255, 255, 255}}
	GroundMaterial = &scene.Material{Color: color.RGBA{92, 104, 58, 255}}
	GrassMaterial  = &scene.Material{Color: color.RGBA{78, 128, 44, 255}, DoubleSided: true, Wind: true}
	TrunkMaterial  = &scene.Material{Color: color.RGBA{0x8b, 0x45, 0x13, 255}}
	CrownMaterial  = &scene.Material{Color: color.RGBA{0x22, 0x8b, 0x22, 255}}
)

// Builder constructs segments. Meshes that do not depend on the segment are
// built once and shared.
type Builder struct {
	road     config.Road
	terrain  config.Terrain
	grass    config.Grass
	field    noise.Field
	scatter  *foliage.Generator
	grassMat *scene.Material

	roadMesh   *geom.Mesh
	stripeMesh *geom.Mesh
	trunkMesh  *geom.Mesh
	crownMesh  *geom.Mesh
	bladeMesh  *geom.Mesh
}

// NewBuilder prepares the shared meshes.
func NewBuilder(cfg *config.Config, field noise.Field) *Builder {
	grassMat := GrassMaterial
	if !cfg.Grass.Wind {
		still := *GrassMaterial
		still.Wind = false
		grassMat = &still
	}
	return &Builder{
		road:       cfg.Road,
		terrain:    cfg.Terrain,
		grass:      cfg.Grass,
		field:      field,
		scatter:    foliage.NewGenerator(cfg.Grass.Seed),
		grassMat:   grassMat,
		roadMesh:   geom.NewPlane(cfg.Road.Width, cfg.Road.SegmentLength, 1, 1),
		stripeMesh: geom.NewBox(cfg.Road.StripeWidth, 0.01, cfg.Road.StripeLength),
		trunkMesh:  geom.NewCylinder(0.2, 0.2, 1, 8),
		crownMesh:  geom.NewSphere(0.6, 8, 6),
		bladeMesh:  geom.NewPlane(cfg.Grass.BladeWidth, cfg.Grass.BladeHeight, 1, 4),
	}
}

// flat lays an XY mesh onto the ground plane.
func flat(x, y, z float64) scene.Transform {
	t := scene.At(x, y, z)
	t.Rotation = mgl64.Vec3{-math.Pi / 2, 0, 0}
	return t
}

// Build adds a segment group at offset z under parent. The terrain is
// generated here, once, and shared by the left and right patches.
func (b *Builder) Build(g *scene.Graph, parent scene.Handle, name string, z float64) *Segment {
	length := b.road.SegmentLength
	seg := &Segment{Name: name}
	seg.Root = g.Group(parent, name, scene.At(0, 0, z))

	g.Add(seg.Root, scene.Node{Name: name + "/road", Transform: flat(0, 0, 0), Mesh: b.roadMesh, Material: RoadMaterial})

	seg.Terrain = terrain.Generate(b.field, terrain.ParamsFromConfig(b.terrain, length))
	tx, ty := b.terrain.OffsetX, b.terrain.OffsetY
	g.Add(seg.Root, scene.Node{Name: name + "/terrain-left", Transform: flat(-tx, ty, 0), Mesh: seg.Terrain, Material: GroundMaterial})
	g.Add(seg.Root, scene.Node{Name: name + "/terrain-right", Transform: flat(tx, ty, 0), Mesh: seg.Terrain, Material: GroundMaterial})

	for i, side := range []float64{-1, 1} {
		h := g.Add(seg.Root, scene.Node{Name: name + "/grass", Transform: scene.Identity(), Mesh: b.bladeMesh, Material: b.grassMat})
		g.SetInstances(h, b.scatter.Blades(foliage.GrassPatch{
			CenterX: side * b.grass.CenterX,
			Spread:  b.grass.Spread,
			Length:  length,
			BaseY:   b.grass.BaseY,
			Count:   b.grass.BladesPerSide,
		}))
		seg.Grass[i] = h
	}

	stripes := g.Group(seg.Root, name+"/stripes", scene.Identity())
	for _, sz := range foliage.Row(length, b.road.StripeSpacing) {
		g.Add(stripes, scene.Node{Name: "stripe", Transform: scene.At(0, 0.01, sz), Mesh: b.stripeMesh, Material: StripeMaterial})
		seg.Stripes++
	}

	trees := g.Group(seg.Root, name+"/trees", scene.Identity())
	for _, tz := range foliage.Row(length, b.road.TreeSpacing) {
		for _, side := range []float64{-1, 1} {
			x := side * b.road.TreeOffset
			g.Add(trees, scene.Node{Name: "trunk", Transform: scene.At(x, -0.5, tz), Mesh: b.trunkMesh, Material: TrunkMaterial})
			g.Add(trees, scene.Node{Name: "crown", Transform: scene.At(x, 0.4, tz), Mesh: b.crownMesh, Material: CrownMaterial})
			seg.Trees++
		}
	}
	return seg
}
