package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 1800
	DefaultHeight        = 1000
	DefaultFPS           = 120
	DefaultStepsPerFrame = 1
	DefaultParticles     = 10
	DefaultTimeStep      = 0.01
	DefaultAcceleration  = 20.0
	DefaultAngular       = 0.1
	DefaultFrictionRate  = 0.01
	DefaultOverflow      = -10
	DefaultTrailDepth    = 100
	DefaultFastSpeed     = 300.0
)

// Config is the full set of tunables for one simulation run. It is built once
// at startup and passed down; nothing mutates it while the loop runs.
type Config struct {
	Window        WindowConfig   `yaml:"window"`
	FPS           int            `yaml:"fps"`
	StepsPerFrame int            `yaml:"steps_per_frame"`
	Particles     int            `yaml:"particles"`
	Seed          int64          `yaml:"seed"`
	Engine        EngineConfig   `yaml:"engine"`
	Boundary      BoundaryConfig `yaml:"boundary"`
	Trail         TrailConfig    `yaml:"trail"`
	Sprite        SpriteConfig   `yaml:"sprite"`
	Canvas        CanvasConfig   `yaml:"canvas"`
	Color         ColorConfig    `yaml:"color"`
	Cursor        CursorConfig   `yaml:"cursor"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type EngineConfig struct {
	Model               Model          `yaml:"model"`
	TimeStep            float64        `yaml:"time_step"`
	Acceleration        float64        `yaml:"acceleration"`
	AngularAcceleration float64        `yaml:"angular_acceleration"`
	Friction            FrictionConfig `yaml:"friction"`
}

type FrictionConfig struct {
	Enabled bool         `yaml:"enabled"`
	Type    FrictionType `yaml:"type"`
	Rate    float64      `yaml:"rate"`
}

// BoundaryConfig pads the viewport. A negative overflow keeps particles
// inside the window, a positive one lets them leave it before bouncing.
type BoundaryConfig struct {
	Overflow int `yaml:"overflow"`
}

type TrailConfig struct {
	Depth          int        `yaml:"depth"`
	UpdateEvery    int        `yaml:"update_every"`
	Type           TrailType  `yaml:"type"`
	VariationMult  float64    `yaml:"variation_mult"`
	VariationLimit int        `yaml:"variation_limit"`
	MinSize        int        `yaml:"min_size"`
	MaxSize        int        `yaml:"max_size"`
	Fade           FadeConfig `yaml:"fade"`
}

type FadeConfig struct {
	Enabled bool  `yaml:"enabled"`
	Amount  int   `yaml:"amount"`
	Min     uint8 `yaml:"min"`
}

type SpriteConfig struct {
	Type  SpriteType `yaml:"type"`
	Size  int        `yaml:"size"`
	Color Color      `yaml:"color"`
}

type CanvasConfig struct {
	Background   Color `yaml:"background"`
	RefreshEvery int   `yaml:"refresh_every"`
}

type ColorConfig struct {
	Scheme    ColorScheme `yaml:"scheme"`
	Slow      Color       `yaml:"slow"`
	Fast      Color       `yaml:"fast"`
	FastSpeed float64     `yaml:"fast_speed"`
}

// CursorConfig controls the keyboard-driven square that can be moved around
// the window independently of the particles.
type CursorConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	Step    int  `yaml:"step"`
}

// DefaultConfig returns the "dragons" profile.
func DefaultConfig() *Config {
	return &Config{
		Window:        WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
		FPS:           DefaultFPS,
		StepsPerFrame: DefaultStepsPerFrame,
		Particles:     DefaultParticles,
		Engine: EngineConfig{
			Model:               ModelKinematic,
			TimeStep:            DefaultTimeStep,
			Acceleration:        DefaultAcceleration,
			AngularAcceleration: DefaultAngular,
			Friction: FrictionConfig{
				Type: FrictionLinear,
				Rate: DefaultFrictionRate,
			},
		},
		Boundary: BoundaryConfig{Overflow: DefaultOverflow},
		Trail: TrailConfig{
			Depth:          DefaultTrailDepth,
			UpdateEvery:    1,
			Type:           TrailPeriodicVertical,
			VariationMult:  2.5,
			VariationLimit: 60,
			MinSize:        1,
			MaxSize:        110,
			Fade:           FadeConfig{Enabled: true, Amount: 5, Min: 50},
		},
		Sprite: SpriteConfig{
			Type:  SpriteHollowSquare,
			Size:  60,
			Color: White,
		},
		Canvas: CanvasConfig{Background: Black, RefreshEvery: 1},
		Color: ColorConfig{
			Scheme:    SchemePlain,
			Slow:      Color{R: 0, G: 128, B: 255, A: 255},
			Fast:      Color{R: 255, G: 64, B: 0, A: 255},
			FastSpeed: DefaultFastSpeed,
		},
		Cursor: CursorConfig{Size: 40, Step: 10},
	}
}

// Clone returns an independent copy. Config holds no reference types, so a
// value copy is deep.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Load reads a yaml file on top of DefaultConfig, so a file only needs the
// keys it wants to change.
func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads a yaml file on top of base.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
