package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/particles/internal/sim"
	"github.com/sirupsen/logrus"
)

const Title = "particles"

var ErrNoWindow = errors.New("window: could not open a window")

// Options configures the native window.
type Options struct {
	Width, Height int
	// ShowFPS draws raylib's frame counter in the top-left corner.
	ShowFPS bool
}

// Window presents frames in a raylib window. All methods must be called from
// the goroutine that called Open.
type Window struct {
	opts   Options
	tex    rl.Texture2D
	pixels []color.RGBA
}

var _ sim.Presenter = (*Window)(nil)

func Open(opts Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrNoWindow, opts.Width, opts.Height)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), Title)
	if !rl.IsWindowReady() {
		return nil, ErrNoWindow
	}

	img := rl.GenImageColor(opts.Width, opts.Height, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	logrus.Debugf("opened %dx%d window", opts.Width, opts.Height)
	return &Window{
		opts:   opts,
		tex:    tex,
		pixels: make([]color.RGBA, opts.Width*opts.Height),
	}, nil
}

func (w *Window) Poll() []sim.Event {
	if rl.WindowShouldClose() {
		return []sim.Event{sim.Quit()}
	}
	var evs []sim.Event
	if dx, dy := direction(keyActive); dx != 0 || dy != 0 {
		evs = append(evs, sim.Move(dx, dy))
	}
	return evs
}

// Present uploads img to the window texture and draws it. img must match
// the window size.
func (w *Window) Present(img *image.RGBA) {
	b := img.Bounds()
	if b.Dx() != w.opts.Width || b.Dy() != w.opts.Height {
		logrus.Warnf("dropping %dx%d frame for %dx%d window", b.Dx(), b.Dy(), w.opts.Width, w.opts.Height)
		return
	}
	toPixels(w.pixels, img)
	rl.UpdateTexture(w.tex, w.pixels)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(w.tex, 0, 0, rl.White)
	if w.opts.ShowFPS {
		rl.DrawFPS(10, 10)
	}
	rl.EndDrawing()
}

func (w *Window) Close() {
	rl.UnloadTexture(w.tex)
	rl.CloseWindow()
}

// toPixels copies img row by row into dst, which holds Dx*Dy entries.
func toPixels(dst []color.RGBA, img *image.RGBA) {
	b := img.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			o := 4 * x
			dst[i] = color.RGBA{R: row[o], G: row[o+1], B: row[o+2], A: row[o+3]}
			i++
		}
	}
}
