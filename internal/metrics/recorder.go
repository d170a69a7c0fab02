package metrics

import (
	"sort"

	"github.com/san-kum/particles/internal/entity"
)

// DefaultHistory is how many per-frame samples a Recorder keeps per metric.
const DefaultHistory = 512

// Recorder fans frames out to its metrics and keeps the most recent values of
// each for plotting. It satisfies sim.Observer.
type Recorder struct {
	metrics []Metric
	limit   int
	history map[string][]float64
	frames  int
}

func NewRecorder(limit int, ms ...Metric) *Recorder {
	if limit < 1 {
		limit = DefaultHistory
	}
	if len(ms) == 0 {
		ms = Default()
	}
	return &Recorder{
		metrics: ms,
		limit:   limit,
		history: make(map[string][]float64, len(ms)),
	}
}

func (r *Recorder) OnFrame(frame int, store *entity.Store, bounces int) {
	for _, m := range r.metrics {
		m.Observe(frame, store, bounces)
		h := append(r.history[m.Name()], m.Value())
		if len(h) > r.limit {
			h = h[len(h)-r.limit:]
		}
		r.history[m.Name()] = h
	}
	r.frames++
}

func (r *Recorder) Frames() int { return r.frames }

// History returns the retained samples of metric name, oldest first.
func (r *Recorder) History(name string) []float64 {
	return r.history[name]
}

// Summary returns the current value of every metric.
func (r *Recorder) Summary() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names lists the recorded metrics alphabetically.
func (r *Recorder) Names() []string {
	names := make([]string, 0, len(r.metrics))
	for _, m := range r.metrics {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}

func (r *Recorder) Reset() {
	for _, m := range r.metrics {
		m.Reset()
	}
	r.history = make(map[string][]float64, len(r.metrics))
	r.frames = 0
}
