package entity

import "math/rand"

type Point struct {
	X, Y float64
}

// Particle is a kinematic particle in polar form. Direction is in radians and
// is never normalised; Speed is signed.
type Particle struct {
	X, Y      float64
	Speed     float64
	Direction float64
}

func (p Particle) Position() Point { return Point{X: p.X, Y: p.Y} }

// Store owns all particle and trail state of one run. Trails[i] tracks
// Particles[i]. Access is single-threaded.
type Store struct {
	Particles []Particle
	Trails    []Trail
	Cursor    *Cursor

	// Frame counts stepper calls and drives trail sampling.
	Frame int
}

func New(numParticles, trailDepth int) *Store {
	s := &Store{
		Particles: make([]Particle, numParticles),
		Trails:    make([]Trail, numParticles),
	}
	for i := range s.Trails {
		s.Trails[i] = NewTrail(trailDepth, i)
	}
	return s
}

// Seed places every particle uniformly in [0,w)x[0,h) at rest.
func (s *Store) Seed(rng *rand.Rand, w, h int) {
	for i := range s.Particles {
		s.Particles[i] = Particle{
			X: rng.Float64() * float64(w),
			Y: rng.Float64() * float64(h),
		}
	}
}

func (s *Store) Len() int { return len(s.Particles) }

// Tracked returns the particle trail i follows.
func (s *Store) Tracked(i int) *Particle {
	return &s.Particles[s.Trails[i].Particle]
}

// Clone deep-copies the store, including trail buffers.
func (s *Store) Clone() *Store {
	c := &Store{
		Particles: make([]Particle, len(s.Particles)),
		Trails:    make([]Trail, len(s.Trails)),
		Frame:     s.Frame,
	}
	copy(c.Particles, s.Particles)
	for i, t := range s.Trails {
		c.Trails[i] = t.clone()
	}
	if s.Cursor != nil {
		cur := *s.Cursor
		c.Cursor = &cur
	}
	return c
}
