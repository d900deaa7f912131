package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerlinIsDeterministic(t *testing.T) {
	a := NewPerlin(42)
	b := NewPerlin(42)

	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		y := float64(i) * -0.21
		assert.Equal(t, a.Noise3D(x, y, 0), b.Noise3D(x, y, 0), "sample %d", i)
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestPerlinVaries(t *testing.T) {
	p := NewPerlin(3)

	seen := map[float64]struct{}{}
	for i := 0; i < 20; i++ {
		seen[p.Noise3D(float64(i)*0.53+0.1, float64(i)*0.29+0.2, 0)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestFieldFuncAndConstant(t *testing.T) {
	var f Field = FieldFunc(func(x, y, z float64) float64 { return x + y + z })
	assert.Equal(t, 6.0, f.Noise3D(1, 2, 3))

	f = Constant(-0.5)
	assert.Equal(t, -0.5, f.Noise3D(10, 20, 30))
}
