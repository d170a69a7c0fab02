package render

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"
)

// Canvas is a raster Surface. Strokes are alpha-blended (source over) onto
// an opaque background.
type Canvas struct {
	img *image.RGBA
	// outline scratch reused by StrokeEllipse
	pts []image.Point
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	c.Fill(color.RGBA{A: 255})
	return c
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Fill(col color.RGBA) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = col.R, col.G, col.B, col.A
	}
}

// Blend composites col over the pixel at (x, y). Out of range is a no-op.
func (c *Canvas) Blend(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(c.img.Rect)) {
		return
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]

	a := uint32(col.A)
	if a == 255 {
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, 255
		return
	}
	inv := 255 - a
	p[0] = uint8((uint32(col.R)*a + uint32(p[0])*inv) / 255)
	p[1] = uint8((uint32(col.G)*a + uint32(p[1])*inv) / 255)
	p[2] = uint8((uint32(col.B)*a + uint32(p[2])*inv) / 255)
	p[3] = uint8(a + uint32(p[3])*inv/255)
}

func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

func (c *Canvas) StrokeRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	for px := x; px <= x1; px++ {
		c.Blend(px, y, col)
		if y1 != y {
			c.Blend(px, y1, col)
		}
	}
	for py := y + 1; py < y1; py++ {
		c.Blend(x, py, col)
		if x1 != x {
			c.Blend(x1, py, col)
		}
	}
}

// StrokeEllipse samples the outline column by column and row by row so the
// curve stays closed on steep and flat arcs. Each pixel is blended once.
func (c *Canvas) StrokeEllipse(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if w <= 2 || h <= 2 {
		c.StrokeRect(x, y, w, h, col)
		return
	}

	rx, ry := float64(w-1)/2, float64(h-1)/2
	cx, cy := float64(x)+rx, float64(y)+ry

	pts := c.pts[:0]
	for px := x; px < x+w; px++ {
		dx := (float64(px) - cx) / rx
		t := 1 - dx*dx
		if t < 0 {
			continue
		}
		dy := ry * math.Sqrt(t)
		pts = append(pts,
			image.Point{X: px, Y: int(math.Round(cy - dy))},
			image.Point{X: px, Y: int(math.Round(cy + dy))})
	}
	for py := y; py < y+h; py++ {
		dy := (float64(py) - cy) / ry
		t := 1 - dy*dy
		if t < 0 {
			continue
		}
		dx := rx * math.Sqrt(t)
		pts = append(pts,
			image.Point{X: int(math.Round(cx - dx)), Y: py},
			image.Point{X: int(math.Round(cx + dx)), Y: py})
	}

	slices.SortFunc(pts, comparePoints)
	pts = slices.Compact(pts)
	for _, p := range pts {
		c.Blend(p.X, p.Y, col)
	}
	c.pts = pts
}

func comparePoints(a, b image.Point) int {
	if n := cmp.Compare(a.Y, b.Y); n != 0 {
		return n
	}
	return cmp.Compare(a.X, b.X)
}
