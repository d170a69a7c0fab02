package render

import "image/color"

// Surface is anything the renderer can draw sprites on.
type Surface interface {
	Size() (w, h int)
	// Fill replaces the whole surface with c.
	Fill(c color.RGBA)
	// StrokeRect outlines the w x h rectangle whose top-left pixel is (x, y).
	StrokeRect(x, y, w, h int, c color.RGBA)
	// StrokeEllipse outlines the ellipse inscribed in the same box.
	StrokeEllipse(x, y, w, h int, c color.RGBA)
}
