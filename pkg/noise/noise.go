package noise

import (
	"github.com/aquilax/go-perlin"
)

// Field samples coherent noise. Implementations return values in roughly
// [-1, 1] and must be deterministic for a given construction.
type Field interface {
	Noise3D(x, y, z float64) float64
}

// FieldFunc adapts a plain function to a Field.
type FieldFunc func(x, y, z float64) float64

func (f FieldFunc) Noise3D(x, y, z float64) float64 {
	return f(x, y, z)
}

// Perlin is a single-octave Perlin field. Octave layering is done by the
// caller, so the generator itself is built with one iteration.
type Perlin struct {
	noise *perlin.Perlin
	seed  int64
}

// NewPerlin creates a Perlin field for the given seed.
func NewPerlin(seed int64) *Perlin {
	// alpha and beta only matter when n > 1
	return &Perlin{
		noise: perlin.NewPerlin(2, 2, 1, seed),
		seed:  seed,
	}
}

func (p *Perlin) Noise3D(x, y, z float64) float64 {
	return p.noise.Noise3D(x, y, z)
}

// Seed returns the seed the field was built from.
func (p *Perlin) Seed() int64 {
	return p.seed
}

// Constant is a Field that ignores its input.
type Constant float64

func (c Constant) Noise3D(x, y, z float64) float64 {
	return float64(c)
}
