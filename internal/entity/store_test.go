package entity

import (
	"math/rand"
	"testing"
)

func TestTrail_CapsAtDepth(t *testing.T) {
	tr := NewTrail(3, 0)

	for i := 0; i < 10; i++ {
		tr.Push(Point{X: float64(i)})
		if tr.Len() > tr.Depth() {
			t.Fatalf("after push %d: Len() = %d exceeds depth %d", i, tr.Len(), tr.Depth())
		}
	}
	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
}

func TestTrail_NewestFirstOldestEvicted(t *testing.T) {
	tr := NewTrail(4, 0)
	for i := 1; i <= 6; i++ {
		tr.Push(Point{X: float64(i)})
	}

	// 1 and 2 were evicted, in that order
	want := []float64{6, 5, 4, 3}
	got := tr.Points()
	if len(got) != len(want) {
		t.Fatalf("Points() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].X != want[i] {
			t.Errorf("At(%d).X = %v, want %v", i, got[i].X, want[i])
		}
	}
}

func TestTrail_PartialFill(t *testing.T) {
	tr := NewTrail(5, 0)
	tr.Push(Point{X: 1})
	tr.Push(Point{X: 2})

	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	if tr.At(0).X != 2 || tr.At(1).X != 1 {
		t.Errorf("unexpected order: %v", tr.Points())
	}
}

func TestTrail_ZeroDepth(t *testing.T) {
	tr := NewTrail(0, 0)
	tr.Push(Point{X: 1})
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
}

func TestTrail_AtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At past Len() should panic")
		}
	}()
	tr := NewTrail(2, 0)
	tr.Push(Point{})
	tr.At(1)
}

func TestTrail_Reset(t *testing.T) {
	tr := NewTrail(2, 0)
	tr.Push(Point{X: 1})
	tr.Reset()
	if tr.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", tr.Len())
	}
}

func TestStore_IndexAligned(t *testing.T) {
	s := New(5, 10)
	if len(s.Particles) != 5 || len(s.Trails) != 5 {
		t.Fatalf("got %d particles, %d trails, want 5 each", len(s.Particles), len(s.Trails))
	}
	for i := range s.Trails {
		if s.Trails[i].Particle != i {
			t.Errorf("trail %d tracks particle %d", i, s.Trails[i].Particle)
		}
		if s.Tracked(i) != &s.Particles[i] {
			t.Errorf("Tracked(%d) does not point into the particle slice", i)
		}
	}
}

func TestStore_Seed(t *testing.T) {
	s := New(100, 0)
	s.Seed(rand.New(rand.NewSource(1)), 200, 100)

	for i, p := range s.Particles {
		if p.X < 0 || p.X >= 200 || p.Y < 0 || p.Y >= 100 {
			t.Errorf("particle %d at (%v, %v) outside the window", i, p.X, p.Y)
		}
		if p.Speed != 0 || p.Direction != 0 {
			t.Errorf("particle %d not at rest: %+v", i, p)
		}
	}
}

func TestStore_CloneIsDeep(t *testing.T) {
	s := New(1, 3)
	s.Trails[0].Push(Point{X: 1})
	c := s.Clone()

	c.Particles[0].X = 99
	c.Trails[0].Push(Point{X: 2})

	if s.Particles[0].X == 99 {
		t.Error("clone shares particles")
	}
	if s.Trails[0].Len() != 1 {
		t.Error("clone shares trail buffers")
	}
}

func TestCursor_Clamp(t *testing.T) {
	c := NewCursor(100, 80, 20, 10)
	if c.X != 40 || c.Y != 30 {
		t.Fatalf("cursor starts at (%d, %d), want (40, 30)", c.X, c.Y)
	}

	c.Move(-10, 0)
	if c.X != 0 {
		t.Errorf("X = %d, want 0 after moving past the left edge", c.X)
	}
	c.Move(20, 20)
	if c.X != 80 || c.Y != 60 {
		t.Errorf("cursor at (%d, %d), want (80, 60)", c.X, c.Y)
	}
}
