package car

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/geom"
	"github.com/golangdaddy/roadloop/pkg/scene"
)

// Part is one separable piece of the car model.
type Part struct {
	Name     string
	Mesh     *geom.Mesh
	Material *scene.Material
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

var (
	bodyColor      = &scene.Material{Color: color.RGBA{220, 20, 20, 255}}
	roofColor      = &scene.Material{Color: color.RGBA{180, 15, 15, 255}}
	windowColor    = &scene.Material{Color: color.RGBA{100, 180, 220, 255}}
	wheelColor     = &scene.Material{Color: color.RGBA{40, 40, 40, 255}}
	chromeColor    = &scene.Material{Color: color.RGBA{200, 200, 200, 255}}
	headlightColor = &scene.Material{Color: color.RGBA{255, 255, 100, 255}, Unlit: true}
	taillightColor = &scene.Material{Color: color.RGBA{255, 0, 0, 255}, Unlit: true}
)

// ClassicParts returns the parts of a boxy classic car in model units,
// nose toward +Z, wheels resting on y=0.
func ClassicParts() []Part {
	wheel := geom.NewCylinder(1.1, 1.1, 0.8, 12)
	light := geom.NewSphere(0.35, 6, 4)
	onSide := mgl64.Vec3{0, 0, math.Pi / 2}

	parts := []Part{
		{Name: "body", Mesh: geom.NewBox(6, 1.6, 14), Material: bodyColor, Position: mgl64.Vec3{0, 1.8, 0}},
		{Name: "cabin", Mesh: geom.NewBox(5, 1.7, 6), Material: roofColor, Position: mgl64.Vec3{0, 3.45, -0.8}},
		{Name: "windscreen", Mesh: geom.NewBox(4.6, 1.3, 0.1), Material: windowColor, Position: mgl64.Vec3{0, 3.45, 2.25}},
		{Name: "rear-window", Mesh: geom.NewBox(4.6, 1.3, 0.1), Material: windowColor, Position: mgl64.Vec3{0, 3.45, -3.85}},
		{Name: "bumper-front", Mesh: geom.NewBox(6.4, 0.5, 0.5), Material: chromeColor, Position: mgl64.Vec3{0, 1.1, 7.2}},
		{Name: "bumper-rear", Mesh: geom.NewBox(6.4, 0.5, 0.5), Material: chromeColor, Position: mgl64.Vec3{0, 1.1, -7.2}},
		{Name: "headlight-left", Mesh: light, Material: headlightColor, Position: mgl64.Vec3{-2.1, 2.0, 7.0}},
		{Name: "headlight-right", Mesh: light, Material: headlightColor, Position: mgl64.Vec3{2.1, 2.0, 7.0}},
		{Name: "taillight-left", Mesh: light, Material: taillightColor, Position: mgl64.Vec3{-2.1, 2.0, -7.0}},
		{Name: "taillight-right", Mesh: light, Material: taillightColor, Position: mgl64.Vec3{2.1, 2.0, -7.0}},
	}
	for _, w := range []struct {
		name string
		x, z float64
	}{
		{"wheel-front-left", -3.1, 4.5},
		{"wheel-front-right", 3.1, 4.5},
		{"wheel-rear-left", -3.1, -4.5},
		{"wheel-rear-right", 3.1, -4.5},
	} {
		parts = append(parts, Part{Name: w.name, Mesh: wheel, Material: wheelColor, Position: mgl64.Vec3{w.x, 1.1, w.z}, Rotation: onSide})
	}
	return parts
}

// Car is the car model placed in the scene.
type Car struct {
	Root   scene.Handle
	Parts  []scene.Handle
	Anchor scene.Handle // where the label hangs, in car space
}

// Build adds the car under parent, facing the camera.
func Build(g *scene.Graph, parent scene.Handle, cfg config.Car, parts []Part) *Car {
	t := scene.At(0, 0.1, 0)
	t.Rotation = mgl64.Vec3{0, math.Pi, 0}
	t.Scale = mgl64.Vec3{cfg.Scale, cfg.Scale, cfg.Scale}

	c := &Car{Root: g.Group(parent, "car", t)}
	for _, p := range parts {
		pt := scene.At(p.Position.X(), p.Position.Y(), p.Position.Z())
		pt.Rotation = p.Rotation
		h := g.Add(c.Root, scene.Node{Name: p.Name, Transform: pt, Mesh: p.Mesh, Material: p.Material})
		c.Parts = append(c.Parts, h)
	}
	c.Anchor = g.Group(c.Root, "label-anchor", scene.At(0, 0.4, 0))
	return c
}

// Bounds returns the world-space box around every part.
func (c *Car) Bounds(g *scene.Graph) (lo, hi mgl64.Vec3) {
	first := true
	for _, h := range c.Parts {
		n := g.Node(h)
		world := g.World(h)
		for _, p := range n.Mesh.Positions {
			wp := world.Mul4x1(p.Vec4(1)).Vec3()
			if first {
				lo, hi = wp, wp
				first = false
				continue
			}
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], wp[k])
				hi[k] = math.Max(hi[k], wp[k])
			}
		}
	}
	return lo, hi
}
