package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/geom"
	"github.com/golangdaddy/roadloop/pkg/scene"
)

// Triangle is a lit, fogged triangle in screen space.
type Triangle struct {
	X, Y  [3]float32
	Depth float64 // mean view-space depth
	Color color.RGBA
}

// Projector turns a scene graph into a back-to-front list of screen
// triangles. The returned slice is reused by the next call.
type Projector struct {
	Light Lighting

	tris  []Triangle
	verts []projected
}

type projected struct {
	world  mgl64.Vec3
	sx, sy float64
	depth  float64
}

// NewProjector returns a projector using light.
func NewProjector(light Lighting) *Projector {
	return &Projector{Light: light}
}

// Project walks root and returns its triangles sorted far to near. t is the
// scene clock in seconds and drives the grass sway.
func (p *Projector) Project(g *scene.Graph, root scene.Handle, cam *Camera, t float64, width, height int) []Triangle {
	p.tris = p.tris[:0]
	view := cam.View()
	proj := cam.Projection()

	g.Walk(root, func(_ scene.Handle, n *scene.Node, world mgl64.Mat4) {
		if n.Mesh == nil || n.Material == nil {
			return
		}
		if inst := n.Instances(); inst != nil {
			for _, m := range inst {
				p.mesh(n.Mesh, n.Material, world.Mul4(m), view, proj, cam, t, width, height)
			}
			return
		}
		p.mesh(n.Mesh, n.Material, world, view, proj, cam, t, width, height)
	})

	slices.SortStableFunc(p.tris, func(a, b Triangle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return p.tris
}

func (p *Projector) mesh(m *geom.Mesh, mat *scene.Material, model, view, proj mgl64.Mat4, cam *Camera, t float64, width, height int) {
	if cap(p.verts) < len(m.Positions) {
		p.verts = make([]projected, len(m.Positions))
	}
	verts := p.verts[:len(m.Positions)]
	for i, pos := range m.Positions {
		if mat.Wind {
			pos = Sway(pos, t)
		}
		w := model.Mul4x1(pos.Vec4(1))
		v := view.Mul4x1(w)
		c := proj.Mul4x1(v)
		pv := projected{world: w.Vec3(), depth: -v.Z()}
		if c.W() > 0 {
			pv.sx, pv.sy, _ = ndcToScreen(c.X()/c.W(), c.Y()/c.W(), width, height)
		}
		verts[i] = pv
	}

	normalMat := model.Mat3().Inv().Transpose()
	fw, fh := float64(width), float64(height)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := verts[ia], verts[ib], verts[ic]

		if a.depth < cam.Near || b.depth < cam.Near || c.depth < cam.Near {
			continue
		}
		depth := (a.depth + b.depth + c.depth) / 3
		if min(a.depth, b.depth, c.depth) >= p.Light.FogFar {
			continue
		}
		if max(a.sx, b.sx, c.sx) < 0 || min(a.sx, b.sx, c.sx) > fw ||
			max(a.sy, b.sy, c.sy) < 0 || min(a.sy, b.sy, c.sy) > fh {
			continue
		}

		face := c.world.Sub(b.world).Cross(a.world.Sub(b.world))
		facing := face.Dot(cam.Position.Sub(a.world)) > 0
		if !facing && !mat.DoubleSided {
			continue
		}

		clr := mat.Color
		if !mat.Unlit {
			n := face
			if len(m.Normals) == len(m.Positions) {
				n = normalMat.Mul3x1(m.Normals[ia].Add(m.Normals[ib]).Add(m.Normals[ic]))
			}
			n = geom.SafeNormalize(n)
			if !facing {
				n = n.Mul(-1)
			}
			clr = p.Light.Shade(clr, n)
		}
		clr = p.Light.Fog(clr, depth)

		p.tris = append(p.tris, Triangle{
			X:     [3]float32{float32(a.sx), float32(b.sx), float32(c.sx)},
			Y:     [3]float32{float32(a.sy), float32(b.sy), float32(c.sy)},
			Depth: depth,
			Color: clr,
		})
	}
}
