package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

var whiteImage *ebiten.Image

// whiteSource returns the 1x1 white texel every triangle samples.
func whiteSource() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Renderer batches screen triangles into ebiten draw calls.
type Renderer struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// Draw fills tris onto screen in order.
func (r *Renderer) Draw(screen *ebiten.Image, tris []Triangle) {
	src := whiteSource()
	op := &ebiten.DrawTrianglesOptions{}

	r.vertices, r.indices = r.vertices[:0], r.indices[:0]
	for _, t := range tris {
		if len(r.vertices)+3 > math.MaxUint16 {
			screen.DrawTriangles(r.vertices, r.indices, src, op)
			r.vertices, r.indices = r.vertices[:0], r.indices[:0]
		}
		cr := float32(t.Color.R) / 255.0
		cg := float32(t.Color.G) / 255.0
		cb := float32(t.Color.B) / 255.0
		ca := float32(t.Color.A) / 255.0
		base := uint16(len(r.vertices))
		for k := 0; k < 3; k++ {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   t.X[k],
				DstY:   t.Y[k],
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	if len(r.indices) > 0 {
		screen.DrawTriangles(r.vertices, r.indices, src, op)
	}
}
