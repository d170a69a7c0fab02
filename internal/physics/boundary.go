package physics

import (
	"math"

	"github.com/san-kum/particles/internal/entity"
)

// Bounds is the padded viewport particles bounce off. Margin extends the
// window on every side; a negative margin shrinks it.
type Bounds struct {
	Width, Height float64
	Margin        float64
}

func NewBounds(width, height, overflow int) Bounds {
	return Bounds{Width: float64(width), Height: float64(height), Margin: float64(overflow)}
}

// Reflect clamps particles that crossed the padded viewport back inside and
// mirrors their heading: π-d off a vertical wall, -d off a horizontal one.
// It returns the number of reflections applied.
func Reflect(store *entity.Store, b Bounds) int {
	right, left := b.Width+b.Margin, -b.Margin
	bottom, top := b.Height+b.Margin, -b.Margin

	bounces := 0
	for i := range store.Particles {
		p := &store.Particles[i]

		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			p.X, p.Y = b.Width/2, b.Height/2
		}

		if p.X > right {
			p.X = right - 1
			p.Direction = math.Pi - p.Direction
			bounces++
		}
		if p.X < left {
			p.X = left + 1
			p.Direction = math.Pi - p.Direction
			bounces++
		}
		if p.Y > bottom {
			p.Y = bottom - 1
			p.Direction = -p.Direction
			bounces++
		}
		if p.Y < top {
			p.Y = top + 1
			p.Direction = -p.Direction
			bounces++
		}
	}
	return bounces
}
