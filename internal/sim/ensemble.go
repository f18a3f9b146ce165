package sim

import (
	"context"
	"sync"

	"github.com/san-kum/balancescale/internal/dynamo"
)

// Trial drives one headless simulation to completion and returns its
// recording.
type Trial func(ctx context.Context, seed int64) (*dynamo.Result, error)

// Ensemble runs independent trials in parallel, one goroutine per seed.
// Each trial must build its own Simulation; nothing is shared.
type Ensemble struct {
	trial     Trial
	numRuns   int
	seedStart int64
}

func NewEnsemble(trial Trial, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{trial: trial, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*dynamo.Result, error) {
	results := make([]*dynamo.Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = e.trial(ctx, e.seedStart+int64(idx))
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
