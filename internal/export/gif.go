package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/san-kum/particles/internal/sim"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoFrames   = errors.New("export: no frames captured")
	ErrEmptyFrame = errors.New("export: scale leaves an empty frame")
)

// GIFOptions controls what a GIF recorder keeps.
type GIFOptions struct {
	// Frames is the number of presented frames after which the recorder
	// asks the loop to quit. Zero means never.
	Frames int
	// Every keeps one presented frame out of Every.
	Every int
	// Scale divides both image dimensions.
	Scale int
	// FPS of the source loop, used for frame delays.
	FPS int
}

// GIF is a sim.Presenter recording presented frames as an animated GIF.
type GIF struct {
	opts      GIFOptions
	presented int
	frames    []*image.Paletted
	delays    []int
}

var _ sim.Presenter = (*GIF)(nil)

func NewGIF(opts GIFOptions) *GIF {
	if opts.Every < 1 {
		opts.Every = 1
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.FPS < 1 {
		opts.FPS = 60
	}
	return &GIF{opts: opts}
}

func (g *GIF) Poll() []sim.Event {
	if g.opts.Frames > 0 && g.presented >= g.opts.Frames {
		return []sim.Event{sim.Quit()}
	}
	return nil
}

func (g *GIF) Present(img *image.RGBA) {
	defer func() { g.presented++ }()
	if g.presented%g.opts.Every != 0 {
		return
	}
	g.frames = append(g.frames, g.capture(img))

	// delays are in 1/100 s
	delay := 100 * g.opts.Every / g.opts.FPS
	g.delays = append(g.delays, max(delay, 2))
}

func (g *GIF) capture(img *image.RGBA) *image.Paletted {
	src := image.Image(img)
	if g.opts.Scale > 1 {
		src = downscale(img, g.opts.Scale)
	}
	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, b.Min)
	return dst
}

// downscale keeps every k-th pixel in both directions.
func downscale(img *image.RGBA, k int) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()/k, b.Dy()/k))
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			out.SetRGBA(x, y, img.RGBAAt(b.Min.X+x*k, b.Min.Y+y*k))
		}
	}
	return out
}

func (g *GIF) Len() int { return len(g.frames) }

// Close encodes every captured frame to w as a looping animation.
func (g *GIF) Close(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	if g.frames[0].Rect.Empty() {
		return fmt.Errorf("%w (scale %d)", ErrEmptyFrame, g.opts.Scale)
	}
	anim := gif.GIF{Image: g.frames, Delay: g.delays, LoopCount: 0}
	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	logrus.Debugf("encoded %d gif frames out of %d presented", len(g.frames), g.presented)
	return nil
}
