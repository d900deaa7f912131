package render

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/config"
)

// Camera is a perspective camera that looks at a target point.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64

	offset mgl64.Vec3
	follow float64
}

// NewCamera creates a camera from the config, placed behind and above the
// origin.
func NewCamera(cfg config.Camera, width, height int) *Camera {
	return &Camera{
		Position: mgl64.Vec3{0, 3, 10},
		FOV:      cfg.FOV,
		Aspect:   float64(width) / float64(height),
		Near:     cfg.Near,
		Far:      cfg.Far,
		offset:   mgl64.Vec3{cfg.Offset[0], cfg.Offset[1], cfg.Offset[2]},
		follow:   cfg.Follow,
	}
}

// Follow eases the camera toward target+offset and aims it at target.
func (c *Camera) Follow(target mgl64.Vec3) {
	want := target.Add(c.offset)
	c.Position = c.Position.Add(want.Sub(c.Position).Mul(c.follow))
	c.Target = target
}

// Resize keeps the aspect ratio in step with the screen.
func (c *Camera) Resize(width, height int) {
	if width > 0 && height > 0 {
		c.Aspect = float64(width) / float64(height)
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, mgl64.Vec3{0, 1, 0})
}

// Projection returns the camera-to-clip matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection · View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// ToScreen projects a world point. ok is false when the point is behind the
// near plane.
func (c *Camera) ToScreen(p mgl64.Vec3, width, height int) (x, y float64, ok bool) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() < c.Near {
		return 0, 0, false
	}
	return ndcToScreen(clip.X()/clip.W(), clip.Y()/clip.W(), width, height)
}

func ndcToScreen(nx, ny float64, width, height int) (float64, float64, bool) {
	return (nx + 1) / 2 * float64(width), (1 - ny) / 2 * float64(height), true
}

// ScreenRect projects a world-space box and returns the screen rectangle
// around it. ok is false if any corner lies behind the camera.
func (c *Camera) ScreenRect(lo, hi mgl64.Vec3, width, height int) (image.Rectangle, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{lo.X(), lo.Y(), lo.Z()}
		if i&1 != 0 {
			corner[0] = hi.X()
		}
		if i&2 != 0 {
			corner[1] = hi.Y()
		}
		if i&4 != 0 {
			corner[2] = hi.Z()
		}
		x, y, ok := c.ToScreen(corner, width, height)
		if !ok {
			return image.Rectangle{}, false
		}
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY))), true
}
