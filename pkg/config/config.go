package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the driving scene.
type Config struct {
	Window    Window   `yaml:"window"`
	Road      Road     `yaml:"road"`
	Terrain   Terrain  `yaml:"terrain"`
	Grass     Grass    `yaml:"grass"`
	Drive     Drive    `yaml:"drive"`
	Car       Car      `yaml:"car"`
	Camera    Camera   `yaml:"camera"`
	Lighting  Lighting `yaml:"lighting"`
	Fog       Fog      `yaml:"fog"`
	ResumeURL string   `yaml:"resume_url"`
	Verbose   bool     `yaml:"verbose"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Road describes one segment's strip and its decoration.
type Road struct {
	SegmentLength float64 `yaml:"segment_length"`
	Width         float64 `yaml:"width"`
	StripeSpacing float64 `yaml:"stripe_spacing"`
	StripeWidth   float64 `yaml:"stripe_width"`
	StripeLength  float64 `yaml:"stripe_length"`
	TreeSpacing   float64 `yaml:"tree_spacing"`
	TreeOffset    float64 `yaml:"tree_offset"`
}

// Terrain parameters follow height = min(n(x·s, y·s, 0)·a1 + n(x·2s, y·2s, c)·a2, hmax).
type Terrain struct {
	Width           float64 `yaml:"width"`
	Resolution      int     `yaml:"resolution"`
	Scale           float64 `yaml:"scale"`
	Amplitude       float64 `yaml:"amplitude"`
	DetailAmplitude float64 `yaml:"detail_amplitude"`
	DetailPhase     float64 `yaml:"detail_phase"`
	MaxHeight       float64 `yaml:"max_height"`
	OffsetX         float64 `yaml:"offset_x"`
	OffsetY         float64 `yaml:"offset_y"`
	Seed            int64   `yaml:"seed"`
}

type Grass struct {
	BladesPerSide int     `yaml:"blades_per_side"`
	CenterX       float64 `yaml:"center_x"`
	Spread        float64 `yaml:"spread"`
	BaseY         float64 `yaml:"base_y"`
	BladeWidth    float64 `yaml:"blade_width"`
	BladeHeight   float64 `yaml:"blade_height"`
	Wind          bool    `yaml:"wind"`
	Seed          int64   `yaml:"seed"`
}

// Drive bounds the travel speed, in world units per frame.
type Drive struct {
	InitialSpeed float64 `yaml:"initial_speed"`
	SpeedStep    float64 `yaml:"speed_step"`
	MaxSpeed     float64 `yaml:"max_speed"`
}

type Car struct {
	Scale         float64 `yaml:"scale"`
	ExplodeOffset float64 `yaml:"explode_offset"`
	ExplodeLerp   float64 `yaml:"explode_lerp"`
}

type Camera struct {
	FOV    float64    `yaml:"fov"`
	Near   float64    `yaml:"near"`
	Far    float64    `yaml:"far"`
	Offset [3]float64 `yaml:"offset"`
	Follow float64    `yaml:"follow"`
}

type Lighting struct {
	SunDirection [3]float64 `yaml:"sun_direction"`
	Intensity    float64    `yaml:"intensity"`
	Ambient      float64    `yaml:"ambient"`
}

type Fog struct {
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
	Sky  string  `yaml:"sky"`
}

// Default returns the configuration of the stock scene.
func Default() *Config {
	return &Config{
		Window: Window{Width: 1024, Height: 600, Title: "Roadloop"},
		Road: Road{
			SegmentLength: 200,
			Width:         6,
			StripeSpacing: 5,
			StripeWidth:   0.3,
			StripeLength:  1,
			TreeSpacing:   10,
			TreeOffset:    3.5,
		},
		Terrain: Terrain{
			Width:           40,
			Resolution:      100,
			Scale:           0.05,
			Amplitude:       1.0,
			DetailAmplitude: 0.3,
			DetailPhase:     10,
			MaxHeight:       -0.2,
			OffsetX:         20,
			OffsetY:         -1,
			Seed:            1,
		},
		Grass: Grass{
			BladesPerSide: 600,
			CenterX:       10,
			Spread:        8,
			BaseY:         -0.8,
			BladeWidth:    0.1,
			BladeHeight:   1.5,
			Wind:          true,
			Seed:          7,
		},
		Drive: Drive{InitialSpeed: 0.2, SpeedStep: 0.1, MaxSpeed: 0.7},
		Car:   Car{Scale: 0.28, ExplodeOffset: 1.5, ExplodeLerp: 0.12},
		Camera: Camera{
			FOV:    65,
			Near:   0.1,
			Far:    500,
			Offset: [3]float64{0, 3.5, 6},
			Follow: 0.1,
		},
		Lighting: Lighting{
			SunDirection: [3]float64{5, 10, 5},
			Intensity:    2,
			Ambient:      0.3,
		},
		Fog:       Fog{Near: 20, Far: 100, Sky: "#87ceeb"},
		ResumeURL: "resume.pdf",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the scene cannot be built from.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Road.SegmentLength <= 0 {
		errs = append(errs, fmt.Errorf("road.segment_length must be positive, got %v", c.Road.SegmentLength))
	}
	if c.Road.StripeSpacing <= 0 || c.Road.TreeSpacing <= 0 {
		errs = append(errs, errors.New("road.stripe_spacing and road.tree_spacing must be positive"))
	}
	if c.Terrain.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("terrain.resolution must be positive, got %d", c.Terrain.Resolution))
	}
	if c.Terrain.Width <= 0 {
		errs = append(errs, fmt.Errorf("terrain.width must be positive, got %v", c.Terrain.Width))
	}
	if c.Grass.BladesPerSide < 0 {
		errs = append(errs, fmt.Errorf("grass.blades_per_side must not be negative, got %d", c.Grass.BladesPerSide))
	}
	if c.Drive.MaxSpeed < 0 || c.Drive.SpeedStep <= 0 {
		errs = append(errs, errors.New("drive.max_speed must be >= 0 and drive.speed_step > 0"))
	}
	// speeds are kept in thousandths of a unit
	if c.Drive.SpeedStep > 0 && math.Round(c.Drive.SpeedStep*1000) < 1 {
		errs = append(errs, fmt.Errorf("drive.speed_step %v rounds to zero at 0.001 resolution", c.Drive.SpeedStep))
	}
	if c.Drive.InitialSpeed < 0 || c.Drive.InitialSpeed > c.Drive.MaxSpeed {
		errs = append(errs, fmt.Errorf("drive.initial_speed %v outside [0, %v]", c.Drive.InitialSpeed, c.Drive.MaxSpeed))
	}
	if c.Car.Scale <= 0 {
		errs = append(errs, fmt.Errorf("car.scale must be positive, got %v", c.Car.Scale))
	}
	if c.Car.ExplodeLerp <= 0 || c.Car.ExplodeLerp > 1 {
		errs = append(errs, fmt.Errorf("car.explode_lerp must be in (0, 1], got %v", c.Car.ExplodeLerp))
	}
	if c.Camera.Follow <= 0 || c.Camera.Follow > 1 {
		errs = append(errs, fmt.Errorf("camera.follow must be in (0, 1], got %v", c.Camera.Follow))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera planes invalid: near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Fog.Far <= c.Fog.Near {
		errs = append(errs, fmt.Errorf("fog.far must exceed fog.near, got %v..%v", c.Fog.Near, c.Fog.Far))
	}
	if _, err := ParseHexColor(c.Fog.Sky); err != nil {
		errs = append(errs, fmt.Errorf("fog.sky: %w", err))
	}
	return errors.Join(errs...)
}

// SkyColor returns the parsed fog colour. Validate guarantees it parses.
func (c *Config) SkyColor() color.RGBA {
	clr, err := ParseHexColor(c.Fog.Sky)
	if err != nil {
		return color.RGBA{135, 206, 235, 255}
	}
	return clr
}

// ParseHexColor parses "#rrggbb" or "rrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{r, g, b, 255}, nil
}
