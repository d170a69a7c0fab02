package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig marks a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrModelNotImplemented marks a kinematic model that is declared but has
	// no update rule.
	ErrModelNotImplemented = errors.New("config: kinematic model not implemented")

	// ErrUnknownPreset marks a lookup of a profile that does not exist.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FPS <= 0 {
		return invalid("fps must be positive, got %d", c.FPS)
	}
	if c.StepsPerFrame < 1 {
		return invalid("steps_per_frame must be at least 1, got %d", c.StepsPerFrame)
	}
	if c.Particles < 0 {
		return invalid("particles must not be negative, got %d", c.Particles)
	}
	if err := c.Engine.validate(); err != nil {
		return err
	}

	// the padded viewport must keep a usable interior for the clamp targets
	m := c.Boundary.Overflow
	if c.Window.Width+2*m <= 2 || c.Window.Height+2*m <= 2 {
		return invalid("boundary overflow %d leaves no room inside a %dx%d window", m, c.Window.Width, c.Window.Height)
	}

	if err := c.Trail.validate(); err != nil {
		return err
	}
	if !oneOf(c.Sprite.Type, spriteTypes) {
		return invalid("sprite type %q, want one of %s", c.Sprite.Type, names(spriteTypes))
	}
	if c.Sprite.Size <= 0 {
		return invalid("sprite size must be positive, got %d", c.Sprite.Size)
	}
	if c.Canvas.RefreshEvery < 1 {
		return invalid("refresh_every must be at least 1, got %d", c.Canvas.RefreshEvery)
	}
	if !oneOf(c.Color.Scheme, colorSchemes) {
		return invalid("color scheme %q, want one of %s", c.Color.Scheme, names(colorSchemes))
	}
	if c.Color.Scheme == SchemeSpeed && c.Color.FastSpeed <= 0 {
		return invalid("fast_speed must be positive for the speed scheme, got %f", c.Color.FastSpeed)
	}
	if c.Cursor.Enabled {
		if c.Cursor.Size <= 0 || c.Cursor.Size > c.Window.Width || c.Cursor.Size > c.Window.Height {
			return invalid("cursor size %d does not fit a %dx%d window", c.Cursor.Size, c.Window.Width, c.Window.Height)
		}
		if c.Cursor.Step <= 0 {
			return invalid("cursor step must be positive, got %d", c.Cursor.Step)
		}
	}
	return nil
}

func (e *EngineConfig) validate() error {
	if !oneOf(e.Model, models) {
		return invalid("engine model %q, want one of %s", e.Model, names(models))
	}
	if e.Model != ModelKinematic {
		return fmt.Errorf("%w: %s", ErrModelNotImplemented, e.Model)
	}
	if e.TimeStep <= 0 {
		return invalid("time_step must be positive, got %f", e.TimeStep)
	}
	if e.Acceleration < 0 || e.AngularAcceleration < 0 {
		return invalid("acceleration coefficients must not be negative")
	}
	if e.Friction.Enabled {
		if !oneOf(e.Friction.Type, frictions) {
			return invalid("friction type %q, want one of %s", e.Friction.Type, names(frictions))
		}
		// rate >= 1 flips the sign of speed on every step
		if e.Friction.Rate < 0 || e.Friction.Rate >= 1 {
			return invalid("friction rate must be in [0, 1), got %f", e.Friction.Rate)
		}
	}
	return nil
}

func (t *TrailConfig) validate() error {
	if t.Depth < 0 {
		return invalid("trail depth must not be negative, got %d", t.Depth)
	}
	if t.UpdateEvery < 1 {
		return invalid("trail update_every must be at least 1, got %d", t.UpdateEvery)
	}
	if !oneOf(t.Type, trailTypes) {
		return invalid("trail type %q, want one of %s", t.Type, names(trailTypes))
	}
	if t.VariationLimit <= 0 {
		return invalid("trail variation_limit must be positive, got %d", t.VariationLimit)
	}
	if t.MinSize < 0 || t.MaxSize < t.MinSize {
		return invalid("trail sizes must satisfy 0 <= min <= max, got min=%d max=%d", t.MinSize, t.MaxSize)
	}
	if t.Fade.Enabled && t.Fade.Amount < 0 {
		return invalid("trail fade amount must not be negative, got %d", t.Fade.Amount)
	}
	return nil
}
