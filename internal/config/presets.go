package config

import (
	"fmt"
	"sort"
)

// Presets are named profiles applied on top of DefaultConfig.
var Presets = map[string]func(c *Config){
	"dragons": func(c *Config) {},
	"chinese-dragons": func(c *Config) {
		c.Trail.Type = TrailLinearSquare
		c.Trail.VariationMult = 0.5
	},
	"sandclock": func(c *Config) {
		c.Trail.Type = TrailPeriodicSquare
		c.Trail.VariationMult = 2
	},
	"linear-vertical": func(c *Config) {
		c.Trail.Type = TrailLinearVertical
	},
	"linear-horizontal": func(c *Config) {
		c.Trail.Type = TrailLinearHorizontal
	},
	"periodic-horizontal": func(c *Config) {
		c.Trail.Type = TrailPeriodicHorizontal
	},
	"threads": func(c *Config) {
		threads(c)
		c.Trail.VariationMult = 0.5
	},
	"threads-inverted": func(c *Config) {
		threads(c)
		c.Trail.VariationMult = -0.5
	},
	"sperm": func(c *Config) {
		c.Sprite.Size = 10
		c.Particles = 100
		c.Trail.Depth = 20
		c.Trail.VariationLimit = 450
		c.Trail.Type = TrailLinearSquare
		c.Trail.VariationMult = 1
	},
	"random-walk": func(c *Config) {
		c.Window = WindowConfig{Width: 1000, Height: 1000}
		c.FPS = 60
		c.Particles = 100
		c.Boundary.Overflow = 0
		c.Engine.Acceleration = 5
		c.Engine.AngularAcceleration = 0.1
		c.Sprite.Size = 10
		c.Trail.Depth = 0
		c.Trail.Fade.Enabled = false
	},
}

func threads(c *Config) {
	c.Sprite.Size = 2
	c.Particles = 3
	c.Trail.Depth = 450
	c.Trail.VariationLimit = 450
	c.Trail.Type = TrailLinearSquare
}

// GetPreset returns a fresh config for the named profile, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Preset is GetPreset with an error for unknown names.
func Preset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
