package terrain

import (
	"math"

	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/geom"
	"github.com/golangdaddy/roadloop/pkg/noise"
)

// Params controls the two-octave displacement.
type Params struct {
	Width      float64 // across the road
	Length     float64 // along the road
	Resolution int     // cells per side, must be > 0

	Scale           float64 // s
	Amplitude       float64 // a1
	DetailAmplitude float64 // a2, sampled at 2s
	DetailPhase     float64 // c, z of the second octave
	MaxHeight       float64 // hmax, keeps the ground under the road
}

// ParamsFromConfig builds terrain parameters for a segment of the given length.
func ParamsFromConfig(cfg config.Terrain, length float64) Params {
	return Params{
		Width:           cfg.Width,
		Length:          length,
		Resolution:      cfg.Resolution,
		Scale:           cfg.Scale,
		Amplitude:       cfg.Amplitude,
		DetailAmplitude: cfg.DetailAmplitude,
		DetailPhase:     cfg.DetailPhase,
		MaxHeight:       cfg.MaxHeight,
	}
}

// Height returns the clamped elevation of the grid point (x, y).
func Height(field noise.Field, x, y float64, p Params) float64 {
	s := p.Scale
	h := field.Noise3D(x*s, y*s, 0)*p.Amplitude +
		field.Noise3D(x*2*s, y*2*s, p.DetailPhase)*p.DetailAmplitude
	return math.Min(h, p.MaxHeight)
}

// Generate builds the displaced ground patch. The grid lies in XY and is
// displaced along +Z, so callers rotate it onto the ground plane. Boundary
// vertices get no special treatment. A zero resolution is not supported.
func Generate(field noise.Field, p Params) *geom.Mesh {
	m := geom.NewPlane(p.Width, p.Length, p.Resolution, p.Resolution)
	Displace(m, field, p)
	return m
}

// Displace writes Height into the Z of every vertex and recomputes normals.
func Displace(m *geom.Mesh, field noise.Field, p Params) {
	for i, v := range m.Positions {
		m.Positions[i][2] = Height(field, v.X(), v.Y(), p)
	}
	m.ComputeNormals()
}
