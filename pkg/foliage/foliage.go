package foliage

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/scene"
)

// Generator scatters roadside decoration from a fixed seed, so two
// generators with the same seed lay out identical segments.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a scatter generator.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// GrassPatch describes one strip of blades along a segment.
type GrassPatch struct {
	CenterX float64 // strip centre across the road
	Spread  float64 // strip width
	Length  float64 // segment length
	BaseY   float64
	Count   int
}

// Blades returns one transform per blade: random position inside the strip,
// random yaw, slight tilt and a jittered scale.
func (g *Generator) Blades(p GrassPatch) []scene.Transform {
	out := make([]scene.Transform, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		x := p.CenterX + (g.rng.Float64()-0.5)*p.Spread
		z := (g.rng.Float64() - 0.5) * p.Length
		yaw := g.rng.Float64() * math.Pi

		s := 0.7 + g.rng.Float64()*0.6
		sx := s*0.5 + g.rng.Float64()*0.15
		sy := s * 0.9
		sz := s*0.5 + g.rng.Float64()*0.15

		tiltX := (g.rng.Float64()-0.5)*0.4 + (g.rng.Float64()-0.5)*0.1
		tiltZ := (g.rng.Float64() - 0.5) * 0.2

		out = append(out, scene.Transform{
			Position: mgl64.Vec3{x, p.BaseY, z},
			Rotation: mgl64.Vec3{tiltX, yaw, tiltZ},
			Scale:    mgl64.Vec3{sx, sy, sz},
		})
	}
	return out
}

// Row returns evenly spaced positions in [-length/2, length/2).
func Row(length, spacing float64) []float64 {
	if spacing <= 0 {
		return nil
	}
	half := length / 2
	n := int(math.Ceil(length / spacing))
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		z := -half + float64(i)*spacing
		if z >= half {
			break
		}
		out = append(out, z)
	}
	return out
}
