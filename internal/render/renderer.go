package render

import (
	"image/color"
	"math"

	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/entity"
)

// Renderer draws an entity store onto a Surface. It only reads the store.
type Renderer struct {
	sprite     config.SpriteConfig
	trail      config.TrailConfig
	background color.RGBA
	refresh    int
	palette    *Palette
}

func NewRenderer(cfg *config.Config) *Renderer {
	refresh := cfg.Canvas.RefreshEvery
	if refresh < 1 {
		refresh = 1
	}
	return &Renderer{
		sprite:     cfg.Sprite,
		trail:      cfg.Trail,
		background: cfg.Canvas.Background.ToRGBA(),
		refresh:    refresh,
		palette:    NewPalette(cfg.Color, cfg.Sprite.Color),
	}
}

// Render draws frame onto s. The surface is cleared only every refresh-th
// frame; in between, draws accumulate into a smear.
func (r *Renderer) Render(s Surface, store *entity.Store, frame int) {
	if frame%r.refresh == 0 {
		s.Fill(r.background)
	}

	size := r.sprite.Size
	base := r.sprite.Color.ToRGBA()
	for _, p := range store.Particles {
		r.drawSprite(s, p.X, p.Y, size, size, base)
	}

	for i := range store.Trails {
		tr := &store.Trails[i]
		tracked := store.Tracked(i)
		for k := 0; k < tr.Len(); k++ {
			n := k + 1
			w, h := TrailSize(r.trail, size, n)
			col := r.palette.Color(*tracked, tr.Particle, frame)
			if r.trail.Fade.Enabled {
				col = Fade(col, n, r.trail.Fade.Amount, r.trail.Fade.Min)
			}
			pos := tr.At(k)
			r.drawSprite(s, pos.X, pos.Y, w, h, col)
		}
	}

	if c := store.Cursor; c != nil {
		s.StrokeRect(c.X, c.Y, c.Size, c.Size, base)
	}
}

// drawSprite draws one sprite of w x h centred on the rounded position.
func (r *Renderer) drawSprite(s Surface, x, y float64, w, h int, col color.RGBA) {
	left := int(math.Round(x)) - w/2
	top := int(math.Round(y)) - h/2
	switch r.sprite.Type {
	case config.SpriteHollowCircle:
		s.StrokeEllipse(left, top, w, h, col)
	default:
		s.StrokeRect(left, top, w, h, col)
	}
}
