package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/balancescale/internal/dynamo"
)

var ErrNoResult = errors.New("optim: no parameter combination completed")

// Trial runs one simulation with params applied and returns its recording.
type Trial func(ctx context.Context, params map[string]float64) (*dynamo.Result, error)

// GridSearch tries every combination of the given parameter values and
// keeps the one with the lowest metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search returns the best combination and its metric value. Combinations
// whose trial fails are skipped; the first such error is returned only if
// none succeeded.
func (g *GridSearch) Search(ctx context.Context, trial Trial, metricName string) (map[string]float64, float64, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, fmt.Errorf("optim: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}

	s := &search{trial: trial, metric: metricName, best: math.Inf(1)}
	g.searchRecursive(ctx, 0, make(map[string]float64), s)

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if s.bestParams == nil {
		if s.firstErr != nil {
			return nil, 0, s.firstErr
		}
		return nil, 0, ErrNoResult
	}
	return s.bestParams, s.best, nil
}

type search struct {
	trial      Trial
	metric     string
	best       float64
	bestParams map[string]float64
	firstErr   error
}

func (s *search) fail(err error) {
	if s.firstErr == nil {
		s.firstErr = err
	}
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, s *search) {
	if ctx.Err() != nil {
		return
	}
	if depth == len(g.paramNames) {
		result, err := s.trial(ctx, current)
		if err != nil {
			s.fail(err)
			return
		}

		val, ok := result.Metrics[s.metric]
		if !ok {
			s.fail(fmt.Errorf("optim: run has no metric %q", s.metric))
			return
		}
		if val < s.best {
			s.best = val
			s.bestParams = make(map[string]float64, len(current))
			for k, v := range current {
				s.bestParams[k] = v
			}
		}
		return
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		g.searchRecursive(ctx, depth+1, newParams, s)
	}
}
