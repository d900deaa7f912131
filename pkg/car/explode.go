package car

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/geom"
	"github.com/golangdaddy/roadloop/pkg/scene"
)

// Exploder eases car parts away from their resting positions and back.
type Exploder struct {
	exploded bool
	offset   float64
	lerp     float64
	original map[scene.Handle]mgl64.Vec3
}

// NewExploder records the resting position of every part.
func NewExploder(g *scene.Graph, parts []scene.Handle, cfg config.Car) *Exploder {
	e := &Exploder{
		offset:   cfg.ExplodeOffset,
		lerp:     cfg.ExplodeLerp,
		original: make(map[scene.Handle]mgl64.Vec3, len(parts)),
	}
	for _, h := range parts {
		e.original[h] = g.Node(h).Transform.Position
	}
	return e
}

// Toggle flips between the exploded and assembled views.
func (e *Exploder) Toggle() bool {
	e.exploded = !e.exploded
	return e.exploded
}

// Exploded reports the current target view.
func (e *Exploder) Exploded() bool {
	return e.exploded
}

// Original returns the recorded resting position of h.
func (e *Exploder) Original(h scene.Handle) (mgl64.Vec3, bool) {
	p, ok := e.original[h]
	return p, ok
}

// Update moves every part one step toward its target. Exploded targets push
// the part along the direction of its current position.
func (e *Exploder) Update(g *scene.Graph) {
	for h, orig := range e.original {
		n := g.Node(h)
		target := orig
		if e.exploded {
			dir := geom.SafeNormalize(n.Transform.Position)
			target = orig.Add(dir.Mul(e.offset))
		}
		pos := n.Transform.Position
		n.Transform.Position = pos.Add(target.Sub(pos).Mul(e.lerp))
	}
}
