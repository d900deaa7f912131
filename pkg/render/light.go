package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/geom"
)

// Lighting is a single directional sun, an ambient term and linear fog.
type Lighting struct {
	Sun       mgl64.Vec3 // unit vector toward the sun
	Intensity float64
	Ambient   float64
	Sky       color.RGBA
	FogNear   float64
	FogFar    float64
}

// NewLighting builds the lighting model from the config.
func NewLighting(cfg *config.Config) Lighting {
	d := cfg.Lighting.SunDirection
	return Lighting{
		Sun:       geom.SafeNormalize(mgl64.Vec3{d[0], d[1], d[2]}),
		Intensity: cfg.Lighting.Intensity,
		Ambient:   cfg.Lighting.Ambient,
		Sky:       cfg.SkyColor(),
		FogNear:   cfg.Fog.Near,
		FogFar:    cfg.Fog.Far,
	}
}

// Shade applies ambient plus Lambert diffuse to base for a surface normal.
func (l Lighting) Shade(base color.RGBA, normal mgl64.Vec3) color.RGBA {
	ndl := math.Max(0, normal.Dot(l.Sun))
	k := l.Ambient + 0.5*l.Intensity*ndl
	return scale(base, k)
}

// FogFactor returns how much of the sky colour replaces a surface at view
// depth d: 0 before FogNear, 1 past FogFar.
func (l Lighting) FogFactor(d float64) float64 {
	if d <= l.FogNear {
		return 0
	}
	if d >= l.FogFar {
		return 1
	}
	return (d - l.FogNear) / (l.FogFar - l.FogNear)
}

// Fog blends c toward the sky colour for view depth d.
func (l Lighting) Fog(c color.RGBA, d float64) color.RGBA {
	f := l.FogFactor(d)
	if f == 0 {
		return c
	}
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1-f) + float64(b)*f))
	}
	return color.RGBA{mix(c.R, l.Sky.R), mix(c.G, l.Sky.G), mix(c.B, l.Sky.B), c.A}
}

func scale(c color.RGBA, k float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*k)))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

// Sway displaces a grass vertex given in blade space at time t.
func Sway(p mgl64.Vec3, t float64) mgl64.Vec3 {
	wind := math.Sin(t+p.Z()*2+p.X()*0.5) * 0.15
	x := p.X() + wind*(p.Y()*0.8)
	z := p.Z() + math.Sin(t*0.7+p.X())*0.08*p.Y()
	return mgl64.Vec3{x, p.Y(), z}
}
