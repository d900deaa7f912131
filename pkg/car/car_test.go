package car

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCar(t *testing.T) (*scene.Graph, *Car, config.Car) {
	t.Helper()
	cfg := config.Default().Car
	g := scene.NewGraph()
	c := Build(g, g.Root(), cfg, ClassicParts())
	require.Len(t, c.Parts, len(ClassicParts()))
	return g, c, cfg
}

func TestBuildPlacesCarFacingCamera(t *testing.T) {
	g, c, cfg := buildCar(t)

	root := g.Node(c.Root).Transform
	assert.Equal(t, mgl64.Vec3{0, 0.1, 0}, root.Position)
	assert.Equal(t, mgl64.Vec3{cfg.Scale, cfg.Scale, cfg.Scale}, root.Scale)

	// the nose (+Z in model space) ends up pointing away from the camera
	for _, h := range c.Parts {
		if g.Node(h).Name == "bumper-front" {
			assert.Less(t, g.WorldPosition(h).Z(), 0.0)
		}
	}
	assert.Equal(t, c.Root, g.Node(c.Anchor).Parent())
}

func TestBoundsCoverTheCar(t *testing.T) {
	g, c, cfg := buildCar(t)

	lo, hi := c.Bounds(g)

	assert.InDelta(t, 0.1, lo.Y(), 1e-9, "wheels rest on the car origin")
	assert.Greater(t, hi.Y(), lo.Y())
	assert.InDelta(t, 14.9*cfg.Scale, hi.Z()-lo.Z(), 1e-9)
	// wheels stick out to ±3.5
	assert.InDelta(t, 7.0*cfg.Scale, hi.X()-lo.X(), 1e-9)
}

func TestExploderRecordsOriginalsByHandle(t *testing.T) {
	g, c, cfg := buildCar(t)
	e := NewExploder(g, c.Parts, cfg)

	for _, h := range c.Parts {
		orig, ok := e.Original(h)
		require.True(t, ok)
		assert.Equal(t, g.Node(h).Transform.Position, orig)
	}
	_, ok := e.Original(c.Root)
	assert.False(t, ok)
}

func TestExploderMovesOutAndBack(t *testing.T) {
	g, c, cfg := buildCar(t)
	e := NewExploder(g, c.Parts, cfg)

	// assembled: nothing moves
	e.Update(g)
	for _, h := range c.Parts {
		orig, _ := e.Original(h)
		assert.Equal(t, orig, g.Node(h).Transform.Position)
	}

	require.True(t, e.Toggle())
	for i := 0; i < 300; i++ {
		e.Update(g)
	}
	for _, h := range c.Parts {
		orig, _ := e.Original(h)
		pos := g.Node(h).Transform.Position
		moved := pos.Sub(orig)
		assert.Greater(t, moved.Len(), 0.0, g.Node(h).Name)
		assert.Greater(t, moved.Dot(orig), 0.0, "%s moves away from the car centre", g.Node(h).Name)
		assert.LessOrEqual(t, moved.Len(), cfg.ExplodeOffset+1e-9)
	}

	require.False(t, e.Toggle())
	for i := 0; i < 600; i++ {
		e.Update(g)
	}
	for _, h := range c.Parts {
		orig, _ := e.Original(h)
		pos := g.Node(h).Transform.Position
		assert.InDeltaSlice(t, orig[:], pos[:], 1e-6, g.Node(h).Name)
	}
}

func TestExploderStepIsALerp(t *testing.T) {
	g := scene.NewGraph()
	h := g.Add(g.Root(), scene.Node{Name: "p", Transform: scene.At(2, 0, 0)})
	e := NewExploder(g, []scene.Handle{h}, config.Car{ExplodeOffset: 1, ExplodeLerp: 0.5})
	e.Toggle()

	e.Update(g)

	// target is (3,0,0); half way from 2 is 2.5
	assert.InDelta(t, 2.5, g.Node(h).Transform.Position.X(), 1e-12)
}
