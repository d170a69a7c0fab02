package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/particles/internal/render"
)

// SVG is a vector render.Surface. Every stroke becomes one element; Fill
// drops what was drawn before, so the document holds a single frame.
type SVG struct {
	width, height int
	background    color.RGBA
	elements      []string
}

var _ render.Surface = (*SVG)(nil)

func NewSVG(w, h int) *SVG {
	return &SVG{width: w, height: h, background: color.RGBA{A: 255}}
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

func (s *SVG) Fill(c color.RGBA) {
	s.background = c
	s.elements = s.elements[:0]
}

func (s *SVG) StrokeRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.elements = append(s.elements, fmt.Sprintf(
		`<rect x="%.1f" y="%.1f" width="%d" height="%d" %s/>`,
		float64(x)+0.5, float64(y)+0.5, max(w-1, 0), max(h-1, 0), stroke(c)))
}

func (s *SVG) StrokeEllipse(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	rx, ry := float64(w-1)/2, float64(h-1)/2
	s.elements = append(s.elements, fmt.Sprintf(
		`<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" %s/>`,
		float64(x)+rx+0.5, float64(y)+ry+0.5, rx, ry, stroke(c)))
}

func (s *SVG) Len() int { return len(s.elements) }

func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="none" stroke-width="1">
`, s.width, s.height, s.width, s.height, hex(s.background))
	for _, e := range s.elements {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	if err != nil {
		return int64(n), fmt.Errorf("export: write svg: %w", err)
	}
	return int64(n), nil
}

func stroke(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf(`stroke="%s"`, hex(c))
	}
	return fmt.Sprintf(`stroke="%s" stroke-opacity="%.3f"`, hex(c), float64(c.A)/255)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
