package sim

import (
	"context"
	"sync"

	"github.com/san-kum/particles/internal/config"
)

// Batch runs the same configuration headless under consecutive seeds in
// parallel.
type Batch struct {
	cfg       *config.Config
	runs      int
	seedStart int64
}

func NewBatch(cfg *config.Config, runs int) *Batch {
	return &Batch{cfg: cfg, runs: runs, seedStart: cfg.Seed}
}

// Run renders frames for every run. observe is called once per run, before
// it starts, to build that run's observer; it may return nil.
func (b *Batch) Run(ctx context.Context, frames int, observe func(run int, seed int64) Observer) error {
	errs := make([]error, b.runs)

	var wg sync.WaitGroup
	for i := 0; i < b.runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := b.cfg.Clone()
			cfg.Seed = b.seedStart + int64(idx)

			s, err := New(cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			if observe != nil {
				if o := observe(idx, cfg.Seed); o != nil {
					s.AddObserver(o)
				}
			}
			errs[idx] = s.Headless(ctx, frames)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
