package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outward checks that every triangle faces away from the mesh centre.
func outward(t *testing.T, name string, m *Mesh) {
	t.Helper()
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Positions[m.Indices[i*3]], m.Positions[m.Indices[i*3+1]], m.Positions[m.Indices[i*3+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), 0.0, "%s triangle %d faces inward", name, i)
	}
}

func TestPlaneLayout(t *testing.T) {
	m := NewPlane(40, 200, 4, 10)

	require.Equal(t, 5*11, m.VertexCount())
	assert.Equal(t, 4*10*2, m.TriangleCount())
	assert.Equal(t, mgl64.Vec3{-20, 100, 0}, m.Positions[0])
	assert.Equal(t, mgl64.Vec3{20, -100, 0}, m.Positions[len(m.Positions)-1])

	lo, hi := m.Bounds()
	assert.Equal(t, mgl64.Vec3{-20, -100, 0}, lo)
	assert.Equal(t, mgl64.Vec3{20, 100, 0}, hi)
}

func TestComputeNormalsFlatPlane(t *testing.T) {
	m := NewPlane(10, 10, 3, 3)
	for i := range m.Normals {
		m.Normals[i] = mgl64.Vec3{1, 0, 0}
	}

	m.ComputeNormals()

	for i, n := range m.Normals {
		assert.InDelta(t, 0, n.X(), 1e-12, "vertex %d", i)
		assert.InDelta(t, 0, n.Y(), 1e-12, "vertex %d", i)
		assert.InDelta(t, 1, n.Z(), 1e-12, "vertex %d", i)
	}
}

func TestComputeNormalsFollowsSlope(t *testing.T) {
	m := NewPlane(10, 10, 2, 2)
	// raise z with x: surface tilts, so normals lean toward -x
	for i, p := range m.Positions {
		m.Positions[i] = mgl64.Vec3{p.X(), p.Y(), p.X()}
	}

	m.ComputeNormals()

	for _, n := range m.Normals {
		assert.InDelta(t, -1/mgl64.Vec3{1, 0, 1}.Len(), n.X(), 1e-9)
		assert.InDelta(t, 1/mgl64.Vec3{1, 0, 1}.Len(), n.Z(), 1e-9)
	}
}

func TestPrimitivesFaceOutward(t *testing.T) {
	outward(t, "box", NewBox(1, 2, 3))
	outward(t, "sphere", NewSphere(0.6, 8, 6))
	outward(t, "cylinder", NewCylinder(0.2, 0.2, 1, 8))
}

func TestSafeNormalize(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{}, SafeNormalize(mgl64.Vec3{}))
	assert.InDelta(t, 1, SafeNormalize(mgl64.Vec3{3, 4, 0}).Len(), 1e-12)
}
