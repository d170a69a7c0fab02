package sim_test

import (
	"context"
	"image"
	"math"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/entity"
	"github.com/san-kum/particles/internal/sim"
)

// scriptedPresenter replays one batch of events per Poll and quits once the
// script runs out.
type scriptedPresenter struct {
	script    [][]sim.Event
	presented int
	last      *image.RGBA
}

func (p *scriptedPresenter) Poll() []sim.Event {
	if len(p.script) == 0 {
		return []sim.Event{sim.Quit()}
	}
	evs := p.script[0]
	p.script = p.script[1:]
	return evs
}

func (p *scriptedPresenter) Present(img *image.RGBA) {
	p.presented++
	p.last = img
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Window = config.WindowConfig{Width: 200, Height: 150}
	cfg.Sprite.Size = 12
	cfg.Trail.Depth = 20
	cfg.Trail.MaxSize = 20
	cfg.Seed = 7
	return cfg
}

type frameLog struct {
	frames  []int
	bounces int
}

func (l *frameLog) OnFrame(frame int, _ *entity.Store, bounces int) {
	l.frames = append(l.frames, frame)
	l.bounces += bounces
}

var _ = Describe("Simulator", func() {
	var (
		cfg *config.Config
		s   *sim.Simulator
	)

	BeforeEach(func() {
		cfg = testConfig()
		var err error
		s, err = sim.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		s.SetFrameDelay(0)
	})

	Describe("New", func() {
		It("seeds every particle inside the window at rest", func() {
			Expect(s.Store().Len()).To(Equal(cfg.Particles))
			for _, p := range s.Store().Particles {
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<", cfg.Window.Width))
				Expect(p.Y).To(BeNumerically(">=", 0))
				Expect(p.Y).To(BeNumerically("<", cfg.Window.Height))
				Expect(p.Speed).To(BeZero())
				Expect(p.Direction).To(BeZero())
			}
		})

		It("starts running", func() {
			Expect(s.State()).To(Equal(sim.Running))
		})

		It("rejects invalid configuration", func() {
			cfg.FPS = 0
			_, err := sim.New(cfg)
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})

		It("rejects unimplemented engine models", func() {
			cfg.Engine.Model = config.ModelDynamicField
			_, err := sim.New(cfg)
			Expect(err).To(MatchError(config.ErrModelNotImplemented))
		})

		It("only creates a cursor when enabled", func() {
			Expect(s.Store().Cursor).To(BeNil())

			cfg.Cursor.Enabled = true
			withCursor, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(withCursor.Store().Cursor).NotTo(BeNil())
		})
	})

	Describe("Frame", func() {
		It("notifies observers with consecutive frame indices", func() {
			log := &frameLog{}
			s.AddObserver(log)
			for i := 0; i < 4; i++ {
				s.Frame()
			}
			Expect(log.frames).To(Equal([]int{0, 1, 2, 3}))
			Expect(s.FrameIndex()).To(Equal(4))
		})

		It("takes steps_per_frame steps per frame", func() {
			cfg.StepsPerFrame = 3
			multi, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			multi.Frame()
			multi.Frame()
			Expect(multi.Store().Frame).To(Equal(6))
		})

		It("keeps particles inside the margin over a long run", func() {
			cfg.Engine.Acceleration = 400
			fast, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			log := &frameLog{}
			fast.AddObserver(log)
			Expect(fast.Headless(context.Background(), 500)).To(Succeed())

			m := float64(cfg.Boundary.Overflow)
			for _, p := range fast.Store().Particles {
				Expect(math.IsNaN(p.X) || math.IsNaN(p.Y)).To(BeFalse())
				Expect(p.X).To(BeNumerically(">=", -m))
				Expect(p.X).To(BeNumerically("<=", float64(cfg.Window.Width)+m))
				Expect(p.Y).To(BeNumerically(">=", -m))
				Expect(p.Y).To(BeNumerically("<=", float64(cfg.Window.Height)+m))
			}
			Expect(log.bounces).To(BeNumerically(">", 0))
		})

		It("is deterministic for a fixed seed", func() {
			other, err := sim.New(testConfig())
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 50; i++ {
				s.Frame()
				other.Frame()
			}
			Expect(other.Store().Particles).To(Equal(s.Store().Particles))
			Expect(other.Canvas().Image().Pix).To(Equal(s.Canvas().Image().Pix))
		})
	})

	Describe("Run", func() {
		It("presents frames until the presenter quits", func() {
			p := &scriptedPresenter{script: [][]sim.Event{nil, nil, nil}}
			Expect(s.Run(context.Background(), p)).To(Succeed())
			Expect(s.State()).To(Equal(sim.Closed))
			Expect(p.presented).To(Equal(3))
			Expect(p.last).To(BeIdenticalTo(s.Canvas().Image()))
		})

		It("does not render the frame in which quit arrives", func() {
			p := &scriptedPresenter{script: [][]sim.Event{{sim.Quit()}}}
			Expect(s.Run(context.Background(), p)).To(Succeed())
			Expect(p.presented).To(BeZero())
			Expect(s.FrameIndex()).To(BeZero())
		})

		It("moves the cursor on move events", func() {
			cfg.Cursor.Enabled = true
			withCursor, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			withCursor.SetFrameDelay(0)

			start := *withCursor.Store().Cursor
			p := &scriptedPresenter{script: [][]sim.Event{{sim.Move(1, 0)}, {sim.Move(0, -2)}}}
			Expect(withCursor.Run(context.Background(), p)).To(Succeed())

			cur := withCursor.Store().Cursor
			Expect(cur.X).To(Equal(start.X + cfg.Cursor.Step))
			Expect(cur.Y).To(Equal(start.Y - 2*cfg.Cursor.Step))
		})

		It("closes when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			p := &scriptedPresenter{script: [][]sim.Event{nil, nil}}
			Expect(s.Run(ctx, p)).To(Succeed())
			Expect(s.State()).To(Equal(sim.Closed))
			Expect(p.presented).To(BeZero())
		})

		It("refuses to run again after closing", func() {
			s.Close()
			Expect(s.Run(context.Background(), &scriptedPresenter{})).NotTo(Succeed())
		})

		It("paces frames by the frame delay", func() {
			s.SetFrameDelay(5 * time.Millisecond)
			p := &scriptedPresenter{script: [][]sim.Event{nil, nil, nil, nil}}
			start := time.Now()
			Expect(s.Run(context.Background(), p)).To(Succeed())
			Expect(time.Since(start)).To(BeNumerically(">=", 20*time.Millisecond))
		})
	})

	Describe("Handle", func() {
		It("ignores events after close", func() {
			s.Handle(sim.Quit())
			s.Handle(sim.Move(1, 1))
			Expect(s.State()).To(Equal(sim.Closed))
		})
	})
})

var _ = Describe("Batch", func() {
	It("runs every seed and reports frames per run", func() {
		cfg := testConfig()
		cfg.Seed = 100

		var mu sync.Mutex
		seeds := map[int64]int{}

		b := sim.NewBatch(cfg, 4)
		err := b.Run(context.Background(), 10, func(run int, seed int64) sim.Observer {
			return sim.ObserverFunc(func(frame int, _ *entity.Store, _ int) {
				mu.Lock()
				defer mu.Unlock()
				seeds[seed]++
			})
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(seeds).To(HaveLen(4))
		for seed := int64(100); seed < 104; seed++ {
			Expect(seeds).To(HaveKeyWithValue(seed, 10))
		}
		Expect(cfg.Seed).To(Equal(int64(100)))
	})

	It("fails when the configuration is invalid", func() {
		cfg := testConfig()
		cfg.Particles = -1
		err := sim.NewBatch(cfg, 2).Run(context.Background(), 1, nil)
		Expect(err).To(MatchError(config.ErrInvalidConfig))
	})

	It("stops on cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := sim.NewBatch(testConfig(), 2).Run(ctx, 1000, nil)
		Expect(err).To(MatchError(context.Canceled))
	})
})
