package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells, each carrying the mean colour of the
// pixels that lit its dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.RGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.RGBA, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.RGBA, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
			c.Colors[i][j] = color.RGBA{}
		}
	}
}

// Set lights dot (x, y) in sub-pixel coordinates; the canvas is
// (Width*2) x (Height*4) dots.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Downsample redraws c from img. A dot is lit when any pixel of its block
// differs from bg.
func (c *Canvas) Downsample(img *image.RGBA, bg color.RGBA) {
	c.Clear()

	b := img.Bounds()
	dotsW, dotsH := c.Width*2, c.Height*4
	if dotsW == 0 || dotsH == 0 || b.Empty() {
		return
	}

	type acc struct{ r, g, b, n uint32 }
	sums := make([]acc, c.Width*c.Height)

	for dy := 0; dy < dotsH; dy++ {
		y0 := b.Min.Y + dy*b.Dy()/dotsH
		y1 := b.Min.Y + (dy+1)*b.Dy()/dotsH
		for dx := 0; dx < dotsW; dx++ {
			x0 := b.Min.X + dx*b.Dx()/dotsW
			x1 := b.Min.X + (dx+1)*b.Dx()/dotsW

			lit := false
			cell := &sums[(dy/4)*c.Width+dx/2]
			for y := y0; y < max(y1, y0+1); y++ {
				for x := x0; x < max(x1, x0+1); x++ {
					p := img.RGBAAt(x, y)
					if p.R == bg.R && p.G == bg.G && p.B == bg.B {
						continue
					}
					lit = true
					cell.r += uint32(p.R)
					cell.g += uint32(p.G)
					cell.b += uint32(p.B)
					cell.n++
				}
			}
			if lit {
				c.Set(dx, dy)
			}
		}
	}

	for i, s := range sums {
		if s.n == 0 {
			continue
		}
		c.Colors[i/c.Width][i%c.Width] = color.RGBA{
			R: uint8(s.r / s.n), G: uint8(s.g / s.n), B: uint8(s.b / s.n), A: 255,
		}
	}
}

// String renders the grid without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Styled renders the grid, colouring each run of equally coloured cells.
func (c *Canvas) Styled() string {
	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Colors[row][col] == c.Colors[row][start] {
				continue
			}
			run := string(c.Grid[row][start:col])
			if cc := c.Colors[row][start]; cc.A != 0 {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(hex(cc))).Render(run)
			}
			b.WriteString(run)
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
