package physics

import (
	"math"
	"math/rand"

	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/entity"
)

// Stepper advances every particle by one fixed time step.
type Stepper struct {
	engine     config.EngineConfig
	trailEvery int
	rng        *rand.Rand
}

func NewStepper(engine config.EngineConfig, trailEvery int, rng *rand.Rand) *Stepper {
	if trailEvery < 1 {
		trailEvery = 1
	}
	return &Stepper{
		engine:     engine,
		trailEvery: trailEvery,
		rng:        rng,
	}
}

// Advance moves each particle along its heading, random-walks its speed and
// heading, applies friction and samples trails on every trailEvery-th call.
func (s *Stepper) Advance(store *entity.Store) {
	dt := s.engine.TimeStep
	for i := range store.Particles {
		p := &store.Particles[i]

		switch s.engine.Model {
		case config.ModelKinematic:
			p.X += p.Speed * math.Cos(p.Direction) * dt
			p.Y += p.Speed * math.Sin(p.Direction) * dt

			p.Speed += s.uniform() * s.engine.Acceleration
			p.Direction += s.uniform() * s.engine.AngularAcceleration
		}

		if s.engine.Friction.Enabled {
			p.Speed = Friction(p.Speed, s.engine.Friction)
		}
	}

	store.Frame++
	if store.Frame%s.trailEvery == 0 {
		for i := range store.Trails {
			tr := &store.Trails[i]
			tr.Push(store.Particles[tr.Particle].Position())
		}
	}
}

// uniform draws from U(-1, 1).
func (s *Stepper) uniform() float64 {
	return s.rng.Float64()*2 - 1
}

// Friction returns speed after one step of linear or quadratic drag.
// Quadratic drag keeps the sign of speed.
func Friction(speed float64, f config.FrictionConfig) float64 {
	switch f.Type {
	case config.FrictionQuadratic:
		return speed - math.Copysign(f.Rate*speed*speed, speed)
	default:
		return speed - f.Rate*speed
	}
}
