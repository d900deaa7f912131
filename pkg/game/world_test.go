package game

import (
	"errors"
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Terrain.Resolution = 8
	cfg.Grass.BladesPerSide = 10
	return cfg
}

func TestBuildWorldLayout(t *testing.T) {
	w := BuildWorld(testConfig(), 1024, 600)

	assert.Equal(t, 0.0, w.Segments[0].Offset(w.Graph))
	assert.Equal(t, -200.0, w.Segments[1].Offset(w.Graph))
	assert.True(t, w.Graph.WorldPosition(w.Car.Root).ApproxEqual(mgl64.Vec3{0, 0.1, 0}))
	assert.True(t, w.Graph.WorldPosition(w.Sun).ApproxEqual(mgl64.Vec3{10, 10, -50}))
	assert.Len(t, w.Car.Parts, 14)
}

func TestStepMovesSegmentsTogether(t *testing.T) {
	w := BuildWorld(testConfig(), 1024, 600)

	w.Step()
	assert.InDelta(t, 0.2, w.Segments[0].Offset(w.Graph), 1e-12)
	assert.InDelta(t, -199.8, w.Segments[1].Offset(w.Graph), 1e-12)
	assert.InDelta(t, TickSeconds, w.Clock(), 1e-12)

	for i := 1; i < 500; i++ {
		w.Step()
	}
	assert.InDelta(t, 100, w.Segments[0].Offset(w.Graph), 1e-12)
	assert.Equal(t, 0, w.Recycler.Recycles())

	w.Step()
	assert.Equal(t, 501, w.Frames())
	assert.Equal(t, 1, w.Recycler.Recycles())
	a, b := w.Segments[0].Offset(w.Graph), w.Segments[1].Offset(w.Graph)
	assert.InDelta(t, -99.8, b, 1e-9)
	assert.InDelta(t, b-200, a, 1e-9)
}

func TestStepHidesSegmentsOutOfView(t *testing.T) {
	w := BuildWorld(testConfig(), 1024, 600)
	back := w.Graph.Node(w.Segments[1].Root)

	w.Step()
	assert.False(t, w.Graph.Node(w.Segments[0].Root).Hidden)
	assert.True(t, back.Hidden, "the trailing segment starts past the fog")

	for i := 0; i < 40; i++ {
		w.Step()
	}
	assert.False(t, back.Hidden)
	assert.False(t, w.Graph.Node(w.Segments[0].Root).Hidden)
}

func TestStepCameraFollowsCar(t *testing.T) {
	w := BuildWorld(testConfig(), 1024, 600)
	for i := 0; i < 300; i++ {
		w.Step()
	}
	want := mgl64.Vec3{0, 0.1, 0}.Add(mgl64.Vec3{0, 3.5, 6})
	assert.True(t, w.Camera.Position.ApproxEqualThreshold(want, 1e-6))
	assert.True(t, w.Camera.Target.ApproxEqual(mgl64.Vec3{0, 0.1, 0}))
}

func settledDrive(t *testing.T) (*DriveScreen, *[]string) {
	t.Helper()
	cfg := testConfig()
	opened := &[]string{}
	ds := NewDriveScreen(BuildWorld(cfg, cfg.Window.Width, cfg.Window.Height), cfg, func(s string) error {
		*opened = append(*opened, s)
		return nil
	})
	for i := 0; i < 300; i++ {
		ds.world.Step()
	}
	return ds, opened
}

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

// bodyPoint is the pixel under the centre of the car body.
func bodyPoint(t *testing.T, ds *DriveScreen) (int, int) {
	t.Helper()
	w := ds.world
	x, y, ok := w.Camera.ToScreen(w.Graph.WorldPosition(w.Car.Parts[0]), ds.width, ds.height)
	require.True(t, ok)
	return int(x), int(y)
}

func TestClickCarTogglesExplode(t *testing.T) {
	ds, opened := settledDrive(t)
	require.False(t, ds.CarRect().Empty())

	ds.Click(bodyPoint(t, ds))
	assert.True(t, ds.world.Exploder.Exploded())
	assert.True(t, ds.Label().Visible)
	assert.Empty(t, *opened)

	body := ds.world.Car.Parts[0]
	orig, ok := ds.world.Exploder.Original(body)
	require.True(t, ok)
	for i := 0; i < 60; i++ {
		ds.world.Step()
	}
	assert.False(t, ds.world.Graph.Node(body).Transform.Position.ApproxEqual(orig))
}

func TestClickLabelOpensResumeOnly(t *testing.T) {
	ds, opened := settledDrive(t)
	ds.Click(bodyPoint(t, ds))
	require.True(t, ds.world.Exploder.Exploded())

	ds.Click(center(ds.Label().Rect()))
	assert.Equal(t, []string{"resume.pdf"}, *opened)
	assert.True(t, ds.world.Exploder.Exploded(), "label clicks do not reach the car")
}

func TestClickMissesEverything(t *testing.T) {
	ds, opened := settledDrive(t)
	ds.Click(0, 0)
	assert.False(t, ds.world.Exploder.Exploded())
	assert.False(t, ds.Label().Visible)
	assert.Empty(t, *opened)
}

func TestClickBesideCarInsideItsRectMisses(t *testing.T) {
	ds, _ := settledDrive(t)
	r := ds.CarRect()
	require.False(t, r.Empty())

	// the top corners of the box around the car show sky or road
	assert.True(t, r.Min.In(r))
	assert.False(t, ds.HitsCar(r.Min.X, r.Min.Y))
	assert.False(t, ds.HitsCar(r.Max.X-1, r.Min.Y))
	assert.True(t, ds.HitsCar(bodyPoint(t, ds)))

	ds.Click(r.Min.X, r.Min.Y)
	assert.False(t, ds.world.Exploder.Exploded())
	assert.False(t, ds.Label().Visible)
}

func TestClickLabelReportsOpenFailure(t *testing.T) {
	ds, _ := settledDrive(t)
	calls := 0
	ds.open = func(string) error {
		calls++
		return errors.New("no browser")
	}
	ds.Click(bodyPoint(t, ds))
	ds.Click(center(ds.Label().Rect()))
	assert.Equal(t, 1, calls)
}

func TestResizeTracksAspect(t *testing.T) {
	ds, _ := settledDrive(t)
	ds.Resize(800, 800)
	assert.Equal(t, 1.0, ds.world.Camera.Aspect)
}

func TestGameLayoutFollowsWindow(t *testing.T) {
	g := NewGame(testConfig())
	_, loading := g.Screen().(*ui.LoadingScreen)
	assert.True(t, loading)

	w, h := g.Layout(800, 500)
	assert.Equal(t, 800, w)
	assert.Equal(t, 500, h)

	w, h = g.Layout(0, 0)
	assert.Equal(t, 800, w)
	assert.Equal(t, 500, h)
}
