package foliage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBladesStayInsideStrip(t *testing.T) {
	p := GrassPatch{CenterX: -10, Spread: 8, Length: 200, BaseY: -0.8, Count: 500}

	blades := NewGenerator(1).Blades(p)

	require.Len(t, blades, 500)
	for i, b := range blades {
		assert.GreaterOrEqual(t, b.Position.X(), -14.0, "blade %d", i)
		assert.Less(t, b.Position.X(), -6.0, "blade %d", i)
		assert.GreaterOrEqual(t, b.Position.Z(), -100.0, "blade %d", i)
		assert.Less(t, b.Position.Z(), 100.0, "blade %d", i)
		assert.Equal(t, -0.8, b.Position.Y())

		assert.GreaterOrEqual(t, b.Rotation.Y(), 0.0)
		assert.Less(t, b.Rotation.Y(), math.Pi)
		assert.LessOrEqual(t, math.Abs(b.Rotation.X()), 0.25)
		assert.LessOrEqual(t, math.Abs(b.Rotation.Z()), 0.1)

		assert.GreaterOrEqual(t, b.Scale.Y(), 0.7*0.9-1e-12)
		assert.LessOrEqual(t, b.Scale.Y(), 1.3*0.9+1e-12)
	}
}

func TestBladesAreSeeded(t *testing.T) {
	p := GrassPatch{CenterX: 10, Spread: 8, Length: 200, Count: 20}

	a := NewGenerator(99).Blades(p)
	b := NewGenerator(99).Blades(p)
	c := NewGenerator(100).Blades(p)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestRow(t *testing.T) {
	zs := Row(200, 10)

	require.Len(t, zs, 20)
	assert.Equal(t, -100.0, zs[0])
	assert.Equal(t, 90.0, zs[len(zs)-1])

	assert.Len(t, Row(200, 5), 40)
	assert.Nil(t, Row(200, 0))
}
