package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/entity"
	"github.com/san-kum/particles/internal/physics"
	"github.com/san-kum/particles/internal/render"
	"github.com/sirupsen/logrus"
)

// Simulator owns one run: the entity store, the stepper and the raster the
// renderer draws into. It is not safe for concurrent use.
type Simulator struct {
	cfg       *config.Config
	store     *entity.Store
	stepper   *physics.Stepper
	bounds    physics.Bounds
	renderer  *render.Renderer
	canvas    *render.Canvas
	observers []Observer

	state State
	frame int
	delay time.Duration
}

func New(cfg *config.Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	store := entity.New(cfg.Particles, cfg.Trail.Depth)
	store.Seed(rng, cfg.Window.Width, cfg.Window.Height)
	if cfg.Cursor.Enabled {
		store.Cursor = entity.NewCursor(cfg.Window.Width, cfg.Window.Height, cfg.Cursor.Size, cfg.Cursor.Step)
	}

	return &Simulator{
		cfg:      cfg,
		store:    store,
		stepper:  physics.NewStepper(cfg.Engine, cfg.Trail.UpdateEvery, rng),
		bounds:   physics.NewBounds(cfg.Window.Width, cfg.Window.Height, cfg.Boundary.Overflow),
		renderer: render.NewRenderer(cfg),
		canvas:   render.NewCanvas(cfg.Window.Width, cfg.Window.Height),
		state:    Running,
		delay:    time.Second / time.Duration(cfg.FPS),
	}, nil
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// SetFrameDelay overrides the 1/FPS sleep between presented frames.
// Zero disables pacing.
func (s *Simulator) SetFrameDelay(d time.Duration) { s.delay = d }

func (s *Simulator) State() State           { return s.state }
func (s *Simulator) FrameIndex() int        { return s.frame }
func (s *Simulator) Store() *entity.Store   { return s.store }
func (s *Simulator) Canvas() *render.Canvas { return s.canvas }
func (s *Simulator) Config() *config.Config { return s.cfg }

// Frame advances the store by one frame's worth of steps, reflects particles
// off the walls after every step and renders the result.
func (s *Simulator) Frame() {
	bounces := 0
	for i := 0; i < s.cfg.StepsPerFrame; i++ {
		s.stepper.Advance(s.store)
		bounces += physics.Reflect(s.store, s.bounds)
	}

	s.renderer.Render(s.canvas, s.store, s.frame)

	for _, o := range s.observers {
		o.OnFrame(s.frame, s.store, bounces)
	}
	if bounces > 0 {
		logrus.Debugf("frame %d: %d bounces", s.frame, bounces)
	}
	s.frame++
}

// Handle applies one input event. Events after close are ignored.
func (s *Simulator) Handle(ev Event) {
	if s.state == Closed {
		return
	}
	switch ev.Kind {
	case EventQuit:
		s.Close()
	case EventMove:
		if s.store.Cursor != nil {
			s.store.Cursor.Move(ev.DX, ev.DY)
		}
	}
}

func (s *Simulator) Close() {
	if s.state != Closed {
		logrus.Debugf("closing after %d frames", s.frame)
	}
	s.state = Closed
}

// Run drives the loop until the presenter asks to quit or ctx is done.
// A clean close returns nil.
func (s *Simulator) Run(ctx context.Context, p Presenter) error {
	if s.state == Closed {
		return fmt.Errorf("sim: run on closed simulator")
	}

	logrus.Infof("running %d particles at %d fps (%dx%d, seed %d)",
		s.cfg.Particles, s.cfg.FPS, s.cfg.Window.Width, s.cfg.Window.Height, s.cfg.Seed)

	for s.state == Running {
		select {
		case <-ctx.Done():
			s.Close()
			continue
		default:
		}

		for _, ev := range p.Poll() {
			s.Handle(ev)
		}
		if s.state != Running {
			break
		}

		s.Frame()
		p.Present(s.canvas.Image())

		if s.delay > 0 {
			time.Sleep(s.delay)
		}
	}

	logrus.Infof("closed after %d frames", s.frame)
	return nil
}

// Headless renders n frames without a presenter, stopping early if ctx is
// cancelled.
func (s *Simulator) Headless(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Frame()
	}
	return nil
}
