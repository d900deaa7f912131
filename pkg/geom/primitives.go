package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NewPlane builds a width×height grid in the XY plane facing +Z, centred on
// the origin, with segW×segH cells. Rows run from +Y to -Y.
func NewPlane(width, height float64, segW, segH int) *Mesh {
	gridX1, gridY1 := segW+1, segH+1
	cellW, cellH := width/float64(segW), height/float64(segH)

	m := &Mesh{
		Positions: make([]mgl64.Vec3, 0, gridX1*gridY1),
		Normals:   make([]mgl64.Vec3, 0, gridX1*gridY1),
		Indices:   make([]uint32, 0, segW*segH*6),
	}

	for iy := 0; iy < gridY1; iy++ {
		y := float64(iy)*cellH - height/2
		for ix := 0; ix < gridX1; ix++ {
			x := float64(ix)*cellW - width/2
			m.Positions = append(m.Positions, mgl64.Vec3{x, -y, 0})
			m.Normals = append(m.Normals, mgl64.Vec3{0, 0, 1})
		}
	}

	for iy := 0; iy < segH; iy++ {
		for ix := 0; ix < segW; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32(ix + 1 + gridX1*(iy+1))
			d := uint32(ix + 1 + gridX1*iy)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}

// NewBox builds an axis-aligned box centred on the origin.
func NewBox(w, h, d float64) *Mesh {
	m := &Mesh{}
	hw, hh, hd := w/2, h/2, d/2

	m.appendQuad(mgl64.Vec3{hw, -hh, -hd}, mgl64.Vec3{0, h, 0}, mgl64.Vec3{0, 0, d})
	m.appendQuad(mgl64.Vec3{-hw, -hh, -hd}, mgl64.Vec3{0, 0, d}, mgl64.Vec3{0, h, 0})
	m.appendQuad(mgl64.Vec3{-hw, hh, -hd}, mgl64.Vec3{0, 0, d}, mgl64.Vec3{w, 0, 0})
	m.appendQuad(mgl64.Vec3{-hw, -hh, -hd}, mgl64.Vec3{w, 0, 0}, mgl64.Vec3{0, 0, d})
	m.appendQuad(mgl64.Vec3{-hw, -hh, hd}, mgl64.Vec3{w, 0, 0}, mgl64.Vec3{0, h, 0})
	m.appendQuad(mgl64.Vec3{-hw, -hh, -hd}, mgl64.Vec3{0, h, 0}, mgl64.Vec3{w, 0, 0})
	return m
}

// NewCylinder builds a capped cylinder along Y, centred on the origin.
func NewCylinder(radiusTop, radiusBottom, height float64, radial int) *Mesh {
	if radial < 3 {
		radial = 3
	}
	m := &Mesh{}
	hh := height / 2

	ring := func(r, y float64, i int) mgl64.Vec3 {
		a := 2 * math.Pi * float64(i) / float64(radial)
		return mgl64.Vec3{r * math.Sin(a), y, r * math.Cos(a)}
	}

	for i := 0; i < radial; i++ {
		base := uint32(len(m.Positions))
		a0 := 2 * math.Pi * float64(i) / float64(radial)
		a1 := 2 * math.Pi * float64(i+1) / float64(radial)
		n0 := mgl64.Vec3{math.Sin(a0), 0, math.Cos(a0)}
		n1 := mgl64.Vec3{math.Sin(a1), 0, math.Cos(a1)}
		m.Positions = append(m.Positions,
			ring(radiusBottom, -hh, i), ring(radiusBottom, -hh, i+1),
			ring(radiusTop, hh, i+1), ring(radiusTop, hh, i))
		m.Normals = append(m.Normals, n0, n1, n1, n0)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	for _, lid := range []struct {
		r, y float64
		up   bool
	}{{radiusTop, hh, true}, {radiusBottom, -hh, false}} {
		if lid.r <= 0 {
			continue
		}
		n := mgl64.Vec3{0, 1, 0}
		if !lid.up {
			n = mgl64.Vec3{0, -1, 0}
		}
		center := uint32(len(m.Positions))
		m.Positions = append(m.Positions, mgl64.Vec3{0, lid.y, 0})
		m.Normals = append(m.Normals, n)
		for i := 0; i <= radial; i++ {
			m.Positions = append(m.Positions, ring(lid.r, lid.y, i))
			m.Normals = append(m.Normals, n)
		}
		for i := uint32(0); i < uint32(radial); i++ {
			if lid.up {
				m.Indices = append(m.Indices, center, center+1+i, center+2+i)
			} else {
				m.Indices = append(m.Indices, center, center+2+i, center+1+i)
			}
		}
	}
	return m
}

// NewSphere builds a UV sphere centred on the origin.
func NewSphere(radius float64, widthSegs, heightSegs int) *Mesh {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}
	m := &Mesh{}
	rows := make([][]uint32, 0, heightSegs+1)

	for iy := 0; iy <= heightSegs; iy++ {
		v := float64(iy) / float64(heightSegs)
		row := make([]uint32, 0, widthSegs+1)
		for ix := 0; ix <= widthSegs; ix++ {
			u := float64(ix) / float64(widthSegs)
			phi, theta := u*2*math.Pi, v*math.Pi
			p := mgl64.Vec3{
				-radius * math.Cos(phi) * math.Sin(theta),
				radius * math.Cos(theta),
				radius * math.Sin(phi) * math.Sin(theta),
			}
			row = append(row, uint32(len(m.Positions)))
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, SafeNormalize(p))
		}
		rows = append(rows, row)
	}

	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := rows[iy][ix+1]
			b := rows[iy][ix]
			c := rows[iy+1][ix]
			d := rows[iy+1][ix+1]
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegs-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}
