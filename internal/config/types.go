package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Model string

const (
	ModelKinematic Model = "kinematic"
	// Declared, never implemented. Validate rejects them.
	ModelDynamicInteraction Model = "dynamic-interaction"
	ModelDynamicField       Model = "dynamic-field"
)

type FrictionType string

const (
	FrictionLinear    FrictionType = "linear"
	FrictionQuadratic FrictionType = "quadratic"
)

type TrailType string

const (
	TrailLinearSquare       TrailType = "linear-square"
	TrailPeriodicSquare     TrailType = "periodic-square"
	TrailLinearVertical     TrailType = "linear-vertical"
	TrailLinearHorizontal   TrailType = "linear-horizontal"
	TrailPeriodicVertical   TrailType = "periodic-vertical"
	TrailPeriodicHorizontal TrailType = "periodic-horizontal"
)

// Periodic reports whether the trail size oscillates along the trail.
func (t TrailType) Periodic() bool {
	switch t {
	case TrailPeriodicSquare, TrailPeriodicVertical, TrailPeriodicHorizontal:
		return true
	}
	return false
}

type SpriteType string

const (
	SpriteHollowSquare SpriteType = "hollow-square"
	SpriteHollowCircle SpriteType = "hollow-circle"
)

type ColorScheme string

const (
	SchemePlain     ColorScheme = "plain"
	SchemeSpeed     ColorScheme = "speed"
	SchemeDirection ColorScheme = "direction"
	SchemeRandom    ColorScheme = "random"
	SchemeRainbow   ColorScheme = "rainbow"
)

var (
	models       = []Model{ModelKinematic, ModelDynamicInteraction, ModelDynamicField}
	frictions    = []FrictionType{FrictionLinear, FrictionQuadratic}
	trailTypes   = []TrailType{TrailLinearSquare, TrailPeriodicSquare, TrailLinearVertical, TrailLinearHorizontal, TrailPeriodicVertical, TrailPeriodicHorizontal}
	spriteTypes  = []SpriteType{SpriteHollowSquare, SpriteHollowCircle}
	colorSchemes = []ColorScheme{SchemePlain, SchemeSpeed, SchemeDirection, SchemeRandom, SchemeRainbow}
)

func oneOf[T ~string](v T, all []T) bool {
	for _, a := range all {
		if v == a {
			return true
		}
	}
	return false
}

func names[T ~string](all []T) string {
	s := make([]string, len(all))
	for i, a := range all {
		s[i] = string(a)
	}
	return strings.Join(s, ", ")
}

// Color is an RGBA colour written as "#rrggbb" or "#rrggbbaa" in yaml.
type Color color.RGBA

var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{R: 0, G: 0, B: 0, A: 255}
)

func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
