package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle list. Triangles wind counter-clockwise when
// seen from the side their normal points to.
type Mesh struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// ComputeNormals rebuilds per-vertex normals from the current positions.
// Face normals are accumulated unnormalised, so larger triangles weigh more.
func (m *Mesh) ComputeNormals() {
	if len(m.Normals) != len(m.Positions) {
		m.Normals = make([]mgl64.Vec3, len(m.Positions))
	} else {
		for i := range m.Normals {
			m.Normals[i] = mgl64.Vec3{}
		}
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := m.Positions[ia], m.Positions[ib], m.Positions[ic]
		n := c.Sub(b).Cross(a.Sub(b))
		m.Normals[ia] = m.Normals[ia].Add(n)
		m.Normals[ib] = m.Normals[ib].Add(n)
		m.Normals[ic] = m.Normals[ic].Add(n)
	}

	for i, n := range m.Normals {
		m.Normals[i] = SafeNormalize(n)
	}
}

// Bounds returns the axis-aligned box around the mesh.
func (m *Mesh) Bounds() (lo, hi mgl64.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

// SafeNormalize normalises v, returning the zero vector for zero input.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// appendQuad adds the quad p, p+u, p+u+v, p+v facing u×v.
func (m *Mesh) appendQuad(p, u, v mgl64.Vec3) {
	base := uint32(len(m.Positions))
	n := SafeNormalize(u.Cross(v))
	m.Positions = append(m.Positions, p, p.Add(u), p.Add(u).Add(v), p.Add(v))
	m.Normals = append(m.Normals, n, n, n, n)
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}
