package optim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/balancescale/internal/dynamo"
)

// bowl scores (a-2)^2 + (b+1)^2.
func bowl(_ context.Context, p map[string]float64) (*dynamo.Result, error) {
	a, b := p["a"]-2, p["b"]+1
	return &dynamo.Result{Metrics: map[string]float64{"cost": a*a + b*b}}, nil
}

func TestGridSearchFindsMinimum(t *testing.T) {
	g := NewGridSearch([]string{"a", "b"}, [][]float64{{0, 1, 2, 3}, {-2, -1, 0}})
	best, val, err := g.Search(context.Background(), bowl, "cost")
	if err != nil {
		t.Fatal(err)
	}
	if best["a"] != 2 || best["b"] != -1 || val != 0 {
		t.Errorf("best %v = %v", best, val)
	}
}

func TestGridSearchSkipsFailures(t *testing.T) {
	boom := errors.New("boom")
	trial := func(ctx context.Context, p map[string]float64) (*dynamo.Result, error) {
		if p["a"] == 0 {
			return nil, boom
		}
		return bowl(ctx, p)
	}
	g := NewGridSearch([]string{"a"}, [][]float64{{0, 5}})
	best, _, err := g.Search(context.Background(), trial, "cost")
	if err != nil || best["a"] != 5 {
		t.Fatalf("best %v err %v", best, err)
	}

	g = NewGridSearch([]string{"a"}, [][]float64{{0}})
	if _, _, err := g.Search(context.Background(), trial, "cost"); !errors.Is(err, boom) {
		t.Errorf("expected trial error, got %v", err)
	}
}

func TestGridSearchErrors(t *testing.T) {
	g := NewGridSearch([]string{"a"}, [][]float64{{1}})
	if _, _, err := g.Search(context.Background(), bowl, "missing"); err == nil {
		t.Error("expected missing metric error")
	}

	g = NewGridSearch([]string{"a", "b"}, [][]float64{{1}})
	if _, _, err := g.Search(context.Background(), bowl, "cost"); err == nil {
		t.Error("expected length mismatch error")
	}

	g = NewGridSearch([]string{"a"}, [][]float64{{}})
	if _, _, err := g.Search(context.Background(), bowl, "cost"); !errors.Is(err, ErrNoResult) {
		t.Errorf("expected ErrNoResult, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g = NewGridSearch([]string{"a"}, [][]float64{{1, 2}})
	if _, _, err := g.Search(ctx, bowl, "cost"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
