package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/entity"
)

// goldenAngle spreads per-particle hues evenly around the colour wheel.
const goldenAngle = 137.50776405

// rainbowDrift is the hue shift in degrees per rendered frame.
const rainbowDrift = 2.0

// Mix linearly interpolates a towards b. t is clamped to [0, 1], so Mix at 0
// is exactly a and at 1 exactly b.
func Mix(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(math.Min(t, 1), 0)
	return color.RGBA{
		R: uint8((1-t)*float64(a.R) + t*float64(b.R)),
		G: uint8((1-t)*float64(a.G) + t*float64(b.G)),
		B: uint8((1-t)*float64(a.B) + t*float64(b.B)),
		A: uint8((1-t)*float64(a.A) + t*float64(b.A)),
	}
}

// Palette picks the trail colour of a particle under the configured scheme.
type Palette struct {
	scheme    config.ColorScheme
	base      color.RGBA
	slow      color.RGBA
	fast      color.RGBA
	fastSpeed float64
}

func NewPalette(cc config.ColorConfig, sprite config.Color) *Palette {
	return &Palette{
		scheme:    cc.Scheme,
		base:      sprite.ToRGBA(),
		slow:      cc.Slow.ToRGBA(),
		fast:      cc.Fast.ToRGBA(),
		fastSpeed: cc.FastSpeed,
	}
}

// Color returns the colour for the trail of particle index at frame.
func (p *Palette) Color(particle entity.Particle, index, frame int) color.RGBA {
	switch p.scheme {
	case config.SchemeSpeed:
		return Mix(p.slow, p.fast, math.Abs(particle.Speed/p.fastSpeed))
	case config.SchemeDirection:
		deg := math.Mod(particle.Direction*180/math.Pi, 360)
		return p.hue(deg)
	case config.SchemeRandom:
		return p.hue(float64(index) * goldenAngle)
	case config.SchemeRainbow:
		return p.hue(float64(index)*goldenAngle + float64(frame)*rainbowDrift)
	default:
		return p.base
	}
}

func (p *Palette) hue(deg float64) color.RGBA {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	r, g, b := colorful.Hsv(deg, 1, 1).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: p.base.A}
}

// Fade lowers alpha by amount per trail position n, floored at floor.
func Fade(c color.RGBA, n, amount int, floor uint8) color.RGBA {
	a := int(c.A) - n*amount
	if a < int(floor) {
		a = int(floor)
	}
	c.A = uint8(a)
	return c
}
