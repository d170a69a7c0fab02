package entity

// Cursor is a keyboard-driven square kept fully inside the window.
type Cursor struct {
	X, Y int
	Size int
	Step int

	maxX, maxY int
}

// NewCursor centres a cursor in a w x h window.
func NewCursor(w, h, size, step int) *Cursor {
	return &Cursor{
		X:    (w - size) / 2,
		Y:    (h - size) / 2,
		Size: size,
		Step: step,
		maxX: w - size,
		maxY: h - size,
	}
}

// Move shifts the cursor by dx, dy steps and clamps it to the window.
func (c *Cursor) Move(dx, dy int) {
	c.X += dx * c.Step
	c.Y += dy * c.Step
	c.X = clamp(c.X, 0, c.maxX)
	c.Y = clamp(c.Y, 0, c.maxY)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
