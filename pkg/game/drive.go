package game

import (
	"image"
	"log"
	"strings"

	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/render"
	"github.com/golangdaddy/roadloop/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/browser"
)

// OpenResume opens target in the system browser. Anything that is not an
// http(s) URL is treated as a local file.
func OpenResume(target string) error {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return browser.OpenURL(target)
	}
	return browser.OpenFile(target)
}

// DriveScreen runs the looping drive.
type DriveScreen struct {
	world     *World
	projector *render.Projector
	picker    *render.Projector
	renderer  *render.Renderer
	speedo    *ui.Speedometer
	label     *ui.Label
	resumeURL string
	open      func(string) error

	width, height int
	touches       []ebiten.TouchID
}

// NewDriveScreen wraps a built world. open is called with the resume URL when
// the label is clicked.
func NewDriveScreen(w *World, cfg *config.Config, open func(string) error) *DriveScreen {
	return &DriveScreen{
		world:     w,
		projector: render.NewProjector(render.NewLighting(cfg)),
		picker:    render.NewProjector(render.NewLighting(cfg)),
		renderer:  &render.Renderer{},
		speedo:    ui.NewSpeedometer(),
		label:     ui.NewResumeLabel(),
		resumeURL: cfg.ResumeURL,
		open:      open,
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
	}
}

// Update handles input and steps the world.
func (ds *DriveScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ds.world.Throttle.Increase()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ds.world.Throttle.Decrease()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ds.Click(ebiten.CursorPosition())
	}
	ds.touches = inpututil.AppendJustPressedTouchIDs(ds.touches[:0])
	for _, id := range ds.touches {
		ds.Click(ebiten.TouchPosition(id))
	}

	ds.world.Step()
	ds.placeLabel()
	return nil
}

// Click routes a press at screen (x, y). The label swallows clicks that land
// on it; otherwise a click on the car toggles the exploded view.
func (ds *DriveScreen) Click(x, y int) {
	if ds.label.Contains(x, y) {
		log.Printf("Opening resume: %s", ds.resumeURL)
		if err := ds.open(ds.resumeURL); err != nil {
			log.Printf("Failed to open resume %s: %v", ds.resumeURL, err)
		}
		return
	}
	if !ds.HitsCar(x, y) {
		return
	}
	exploded := ds.world.Exploder.Toggle()
	ds.label.Visible = true
	ds.placeLabel()
	log.Printf("Car clicked: exploded=%v", exploded)
}

// HitsCar reports whether the pixel at (x, y) is covered by a visible car
// triangle. The screen rectangle is checked first to skip projecting the car
// on most misses.
func (ds *DriveScreen) HitsCar(x, y int) bool {
	if !image.Pt(x, y).In(ds.CarRect()) {
		return false
	}
	w := ds.world
	tris := ds.picker.Project(w.Graph, w.Car.Root, w.Camera, w.Clock(), ds.width, ds.height)
	return render.Hit(tris, float64(x)+0.5, float64(y)+0.5)
}

// CarRect returns the car's screen rectangle, empty if it is off camera.
func (ds *DriveScreen) CarRect() image.Rectangle {
	lo, hi := ds.world.Car.Bounds(ds.world.Graph)
	r, ok := ds.world.Camera.ScreenRect(lo, hi, ds.width, ds.height)
	if !ok {
		return image.Rectangle{}
	}
	return r
}

func (ds *DriveScreen) placeLabel() {
	anchor := ds.world.Graph.WorldPosition(ds.world.Car.Anchor)
	x, y, ok := ds.world.Camera.ToScreen(anchor, ds.width, ds.height)
	if !ok {
		return
	}
	ds.label.Place(x, y)
}

// Resize tracks the screen size for projection and picking.
func (ds *DriveScreen) Resize(width, height int) {
	if width == ds.width && height == ds.height {
		return
	}
	ds.width, ds.height = width, height
	ds.world.Camera.Resize(width, height)
	ds.placeLabel()
}

// Label returns the resume label overlay.
func (ds *DriveScreen) Label() *ui.Label {
	return ds.label
}

// Draw renders sky, scene and overlays.
func (ds *DriveScreen) Draw(screen *ebiten.Image) {
	ds.Resize(screen.Bounds().Dx(), screen.Bounds().Dy())
	screen.Fill(ds.projector.Light.Sky)

	w := ds.world
	tris := ds.projector.Project(w.Graph, w.Graph.Root(), w.Camera, w.Clock(), ds.width, ds.height)
	ds.renderer.Draw(screen, tris)

	ds.label.Draw(screen)
	ds.speedo.Draw(screen, w.Throttle.Speed().Float(), w.Throttle.Max().Float())
}
