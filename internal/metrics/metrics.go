package metrics

import (
	"math"

	"github.com/san-kum/particles/internal/entity"
)

// Metric accumulates one scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(frame int, store *entity.Store, bounces int)
	Value() float64
	Reset()
}

// MeanSpeed is the mean |speed| over all particles of the latest frame.
type MeanSpeed struct {
	value float64
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(_ int, store *entity.Store, _ int) {
	if store.Len() == 0 {
		m.value = 0
		return
	}
	sum := 0.0
	for _, p := range store.Particles {
		sum += math.Abs(p.Speed)
	}
	m.value = sum / float64(store.Len())
}

func (m *MeanSpeed) Value() float64 { return m.value }
func (m *MeanSpeed) Reset()         { m.value = 0 }

// MaxSpeed is the largest |speed| seen since the last reset.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(_ int, store *entity.Store, _ int) {
	for _, p := range store.Particles {
		m.max = math.Max(m.max, math.Abs(p.Speed))
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// Bounces counts wall reflections since the last reset.
type Bounces struct {
	total int
}

func NewBounces() *Bounces { return &Bounces{} }

func (b *Bounces) Name() string { return "bounces" }

func (b *Bounces) Observe(_ int, _ *entity.Store, bounces int) { b.total += bounces }

func (b *Bounces) Value() float64 { return float64(b.total) }
func (b *Bounces) Reset()         { b.total = 0 }

// Default returns the standard metric set.
func Default() []Metric {
	return []Metric{NewMeanSpeed(), NewMaxSpeed(), NewBounces()}
}
