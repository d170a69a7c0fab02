package entity

// Trail is a bounded history of positions of one particle, newest first.
// It is a fixed ring: once full, every Push evicts the oldest entry.
type Trail struct {
	// Particle is the index of the tracked particle in Store.Particles.
	Particle int

	buf  []Point
	head int // index of the newest entry
	n    int
}

func NewTrail(depth, particle int) Trail {
	if depth < 0 {
		depth = 0
	}
	return Trail{Particle: particle, buf: make([]Point, depth)}
}

func (t *Trail) Depth() int { return len(t.buf) }
func (t *Trail) Len() int   { return t.n }

func (t *Trail) Push(p Point) {
	if len(t.buf) == 0 {
		return
	}
	t.head--
	if t.head < 0 {
		t.head = len(t.buf) - 1
	}
	t.buf[t.head] = p
	if t.n < len(t.buf) {
		t.n++
	}
}

// At returns the i-th most recent position, 0 being the newest.
func (t *Trail) At(i int) Point {
	if i < 0 || i >= t.n {
		panic("entity: trail index out of range")
	}
	return t.buf[(t.head+i)%len(t.buf)]
}

// Points copies the history out, newest first.
func (t *Trail) Points() []Point {
	out := make([]Point, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

func (t *Trail) Reset() {
	t.head, t.n = 0, 0
}

func (t Trail) clone() Trail {
	buf := make([]Point, len(t.buf))
	copy(buf, t.buf)
	t.buf = buf
	return t
}
