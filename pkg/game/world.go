package game

import (
	"image/color"
	"log"

	"github.com/golangdaddy/roadloop/pkg/car"
	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/geom"
	"github.com/golangdaddy/roadloop/pkg/noise"
	"github.com/golangdaddy/roadloop/pkg/render"
	"github.com/golangdaddy/roadloop/pkg/road"
	"github.com/golangdaddy/roadloop/pkg/scene"
)

// TickSeconds is the scene clock advance per Update at ebiten's default TPS.
const TickSeconds = 1.0 / 60

var sunMaterial = &scene.Material{Color: color.RGBA{255, 204, 0, 255}, Unlit: true}

// World is everything in the driving scene.
type World struct {
	Graph    *scene.Graph
	Segments [2]*road.Segment
	Recycler *road.Recycler
	Throttle *road.Throttle
	Car      *car.Car
	Exploder *car.Exploder
	Camera   *render.Camera
	Sun      scene.Handle

	verbose bool
	fogFar  float64
	clock   float64
	frames  int
}

// BuildWorld generates both road segments, the car and the sun.
func BuildWorld(cfg *config.Config, width, height int) *World {
	g := scene.NewGraph()
	field := noise.NewPerlin(cfg.Terrain.Seed)
	builder := road.NewBuilder(cfg, field)
	length := cfg.Road.SegmentLength

	w := &World{
		Graph:    g,
		Recycler: road.NewRecycler(length),
		Throttle: road.NewThrottle(cfg.Drive),
		Camera:   render.NewCamera(cfg.Camera, width, height),
		verbose:  cfg.Verbose,
		fogFar:   cfg.Fog.Far,
	}
	w.Segments[0] = builder.Build(g, g.Root(), "segment-a", w.Recycler.Offset(0))
	w.Segments[1] = builder.Build(g, g.Root(), "segment-b", w.Recycler.Offset(1))

	w.Car = car.Build(g, g.Root(), cfg.Car, car.ClassicParts())
	w.Exploder = car.NewExploder(g, w.Car.Parts, cfg.Car)

	w.Sun = g.Add(g.Root(), scene.Node{
		Name:      "sun",
		Mesh:      geom.NewSphere(2, 16, 12),
		Material:  sunMaterial,
		Transform: scene.At(10, 10, -50),
	})

	log.Printf("World built: %d nodes, segment length %.0f, terrain %dx%d per side, seed %d",
		g.Len(), length, cfg.Terrain.Resolution, cfg.Terrain.Resolution, field.Seed())
	return w
}

// Step advances the scene by one frame.
func (w *World) Step() {
	w.frames++
	w.clock += TickSeconds

	recycled := w.Recycler.Tick(w.Throttle.Speed())
	for i, seg := range w.Segments {
		seg.SetOffset(w.Graph, w.Recycler.Offset(i))
		if recycled[i] && w.verbose {
			log.Printf("Frame %d: recycled %s to z=%.3f", w.frames, seg.Name, w.Recycler.Offset(i))
		}
	}

	w.Exploder.Update(w.Graph)
	w.Camera.Follow(w.Graph.WorldPosition(w.Car.Root))

	for _, seg := range w.Segments {
		w.Graph.Node(seg.Root).Hidden = !w.segmentInView(seg)
	}
}

// segmentInView reports whether any part of seg lies between the camera and
// the far edge of the fog.
func (w *World) segmentInView(seg *road.Segment) bool {
	z := seg.Offset(w.Graph)
	half := w.Recycler.Half().Float()
	camZ := w.Camera.Position.Z()
	return z+half >= camZ-w.fogFar && z-half <= camZ
}

// Clock returns the scene time in seconds.
func (w *World) Clock() float64 {
	return w.clock
}

// Frames returns the number of steps taken.
func (w *World) Frames() int {
	return w.frames
}
