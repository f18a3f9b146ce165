package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{math.Inf(-1), 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Clone(t *testing.T) {
	a := State{1, 2}
	c := a.Clone()
	c[0] = 99
	if a[0] != 1 {
		t.Error("Clone shares storage with the original")
	}
}

func TestConfigErrorUnwrap(t *testing.T) {
	err := &ConfigError{Field: "damping", Value: 0, Reason: "must be in (0, 1]"}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected %v to unwrap to ErrConfiguration", err)
	}
}

func TestSampleImbalance(t *testing.T) {
	s := Sample{LeftTotal: 3, RightTotal: 7.5}
	if got := s.Imbalance(); got != 4.5 {
		t.Errorf("Imbalance() = %v, want 4.5", got)
	}
}
