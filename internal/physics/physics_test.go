package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/entity"
)

func quietEngine() config.EngineConfig {
	return config.EngineConfig{
		Model:    config.ModelKinematic,
		TimeStep: 0.01,
	}
}

func TestAdvance_MovesAlongHeading(t *testing.T) {
	store := entity.New(1, 0)
	store.Particles[0] = entity.Particle{X: 10, Y: 10, Speed: 100, Direction: math.Pi / 2}

	s := NewStepper(quietEngine(), 1, rand.New(rand.NewSource(1)))
	s.Advance(store)

	p := store.Particles[0]
	if math.Abs(p.X-10) > 1e-9 || math.Abs(p.Y-11) > 1e-9 {
		t.Errorf("position = (%v, %v), want (10, 11)", p.X, p.Y)
	}
	if p.Speed != 100 || p.Direction != math.Pi/2 {
		t.Errorf("speed/direction changed without perturbation: %+v", p)
	}
}

func TestAdvance_PerturbationBounded(t *testing.T) {
	eng := quietEngine()
	eng.Acceleration = 20
	eng.AngularAcceleration = 0.1

	store := entity.New(50, 0)
	s := NewStepper(eng, 1, rand.New(rand.NewSource(7)))
	s.Advance(store)

	for i, p := range store.Particles {
		if math.Abs(p.Speed) > 20 {
			t.Errorf("particle %d speed %v exceeds one step of acceleration", i, p.Speed)
		}
		if math.Abs(p.Direction) > 0.1 {
			t.Errorf("particle %d direction %v exceeds one step of angular acceleration", i, p.Direction)
		}
	}
}

func TestAdvance_Deterministic(t *testing.T) {
	eng := config.DefaultConfig().Engine
	a, b := entity.New(5, 3), entity.New(5, 3)

	sa := NewStepper(eng, 1, rand.New(rand.NewSource(42)))
	sb := NewStepper(eng, 1, rand.New(rand.NewSource(42)))
	for i := 0; i < 50; i++ {
		sa.Advance(a)
		sb.Advance(b)
	}

	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Errorf("particle %d diverged: %+v vs %+v", i, a.Particles[i], b.Particles[i])
		}
	}
}

func TestLinearFriction_SpeedNonIncreasing(t *testing.T) {
	eng := quietEngine()
	eng.Friction = config.FrictionConfig{Enabled: true, Type: config.FrictionLinear, Rate: 0.05}

	for _, v0 := range []float64{250, -250} {
		store := entity.New(1, 0)
		store.Particles[0].Speed = v0
		s := NewStepper(eng, 1, rand.New(rand.NewSource(1)))

		prev := math.Abs(v0)
		for i := 0; i < 200; i++ {
			s.Advance(store)
			cur := math.Abs(store.Particles[0].Speed)
			if cur > prev {
				t.Fatalf("v0=%v step %d: |speed| rose from %v to %v", v0, i, prev, cur)
			}
			prev = cur
		}
		if prev >= math.Abs(v0) {
			t.Errorf("v0=%v: friction had no effect", v0)
		}
	}
}

func TestFriction(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		f     config.FrictionConfig
		want  float64
	}{
		{"linear positive", 10, config.FrictionConfig{Type: config.FrictionLinear, Rate: 0.1}, 9},
		{"linear negative", -10, config.FrictionConfig{Type: config.FrictionLinear, Rate: 0.1}, -9},
		{"quadratic positive", 2, config.FrictionConfig{Type: config.FrictionQuadratic, Rate: 0.1}, 1.6},
		{"quadratic negative", -2, config.FrictionConfig{Type: config.FrictionQuadratic, Rate: 0.1}, -1.6},
		{"zero", 0, config.FrictionConfig{Type: config.FrictionQuadratic, Rate: 0.1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Friction(tt.speed, tt.f); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Friction(%v) = %v, want %v", tt.speed, got, tt.want)
			}
		})
	}
}

func TestAdvance_TrailSampling(t *testing.T) {
	store := entity.New(2, 10)
	s := NewStepper(quietEngine(), 3, rand.New(rand.NewSource(1)))

	for i := 1; i <= 9; i++ {
		s.Advance(store)
		want := i / 3
		for j := range store.Trails {
			if got := store.Trails[j].Len(); got != want {
				t.Fatalf("after %d steps trail %d has %d entries, want %d", i, j, got, want)
			}
		}
	}
	if store.Frame != 9 {
		t.Errorf("Frame = %d, want 9", store.Frame)
	}
}

func TestAdvance_TrailRecordsCurrentPosition(t *testing.T) {
	store := entity.New(1, 4)
	store.Particles[0] = entity.Particle{X: 0, Y: 0, Speed: 100}
	s := NewStepper(quietEngine(), 1, rand.New(rand.NewSource(1)))

	s.Advance(store)
	s.Advance(store)

	tr := &store.Trails[0]
	if tr.At(0).X != store.Particles[0].X {
		t.Errorf("newest trail entry %v, want particle x %v", tr.At(0).X, store.Particles[0].X)
	}
	if tr.At(1).X >= tr.At(0).X {
		t.Errorf("trail not newest first: %v", tr.Points())
	}
}

func TestReflect(t *testing.T) {
	b := NewBounds(100, 50, -10)
	d := 0.3

	tests := []struct {
		name    string
		in      entity.Particle
		wantX   float64
		wantY   float64
		wantDir float64
	}{
		{"right", entity.Particle{X: 95, Y: 25, Direction: d}, 89, 25, math.Pi - d},
		{"left", entity.Particle{X: 5, Y: 25, Direction: d}, 11, 25, math.Pi - d},
		{"bottom", entity.Particle{X: 50, Y: 45, Direction: d}, 50, 39, -d},
		{"top", entity.Particle{X: 50, Y: 2, Direction: d}, 50, 11, -d},
		{"inside", entity.Particle{X: 50, Y: 25, Direction: d}, 50, 25, d},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := entity.New(1, 0)
			store.Particles[0] = tt.in
			Reflect(store, b)

			p := store.Particles[0]
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, tt.wantX, tt.wantY)
			}
			if math.Abs(p.Direction-tt.wantDir) > 1e-12 {
				t.Errorf("direction = %v, want %v", p.Direction, tt.wantDir)
			}
		})
	}
}

func TestReflect_PositiveMargin(t *testing.T) {
	b := NewBounds(100, 100, 20)
	store := entity.New(1, 0)
	store.Particles[0] = entity.Particle{X: 110, Y: -30}

	if n := Reflect(store, b); n != 1 {
		t.Errorf("Reflect returned %d bounces, want 1", n)
	}
	p := store.Particles[0]
	if p.X != 110 {
		t.Errorf("X = %v, inside a positive margin it should stay at 110", p.X)
	}
	if p.Y != -19 {
		t.Errorf("Y = %v, want -19", p.Y)
	}
}

func TestReflect_NonFinite(t *testing.T) {
	b := NewBounds(100, 60, 0)
	store := entity.New(1, 0)
	store.Particles[0] = entity.Particle{X: math.NaN(), Y: math.Inf(1)}

	Reflect(store, b)
	p := store.Particles[0]
	if p.X != 50 || p.Y != 30 {
		t.Errorf("non-finite particle reset to (%v, %v), want (50, 30)", p.X, p.Y)
	}
}

func TestScenario_DragonsWarmUp(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Particles = 10
	cfg.Trail.Depth = 100
	cfg.Trail.Type = config.TrailPeriodicVertical
	cfg.Trail.VariationLimit = 60

	rng := rand.New(rand.NewSource(2022))
	store := entity.New(cfg.Particles, cfg.Trail.Depth)
	store.Seed(rng, cfg.Window.Width, cfg.Window.Height)

	s := NewStepper(cfg.Engine, cfg.Trail.UpdateEvery, rng)
	b := NewBounds(cfg.Window.Width, cfg.Window.Height, cfg.Boundary.Overflow)

	lo, hiX, hiY := b.Margin*-1, b.Width+b.Margin, b.Height+b.Margin
	for step := 0; step < 500; step++ {
		s.Advance(store)
		Reflect(store, b)
		for i, p := range store.Particles {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("step %d: particle %d is NaN", step, i)
			}
			if p.X < lo || p.X > hiX || p.Y < lo || p.Y > hiY {
				t.Fatalf("step %d: particle %d at (%v, %v) outside margin", step, i, p.X, p.Y)
			}
		}
	}

	for i := range store.Trails {
		if got := store.Trails[i].Len(); got != 100 {
			t.Errorf("trail %d holds %d entries, want 100", i, got)
		}
	}
}
