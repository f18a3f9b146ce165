package activity

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/sim"
	"github.com/san-kum/balancescale/internal/weights"
)

func TestEventLines(t *testing.T) {
	tests := []struct {
		event sim.Event
		want  string
	}{
		{sim.Event{Kind: sim.EventPlaced, Weight: weights.Weight{Mass: 5, Side: weights.Right}}, "Added weight 5 kg to right side"},
		{sim.Event{Kind: sim.EventUndone, Weight: weights.Weight{Mass: 2.5, Side: weights.Left}}, "Removed weight 2.5 kg from left side"},
		{sim.Event{Kind: sim.EventResumed}, "Simulation started"},
		{sim.Event{Kind: sim.EventPaused}, "Simulation stopped"},
		{sim.Event{Kind: sim.EventReset}, "System reset"},
		{sim.Event{Kind: sim.EventRejected, Mass: -1, Err: dynamo.ErrInvalidMass}, "Rejected weight -1 kg: dynamo: invalid mass"},
	}

	for _, tt := range tests {
		t.Run(tt.event.Kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf).OnEvent(tt.event)
			line := strings.TrimSpace(buf.String())
			if !strings.Contains(line, tt.want) {
				t.Errorf("line = %q, want %q", line, tt.want)
			}
		})
	}
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scale.txt")

	for i := 0; i < 2; i++ {
		l, err := Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		l.OnEvent(sim.Event{Kind: sim.EventReset})
		if err := l.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "System reset"); n != 2 {
		t.Errorf("got %d reset lines, want 2", n)
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	l, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	l.OnEvent(sim.Event{Kind: sim.EventReset})
	if err := l.Close(); err != nil {
		t.Error(err)
	}

	var nilLogger *Logger
	nilLogger.Printf("ignored")
	if err := nilLogger.Close(); err != nil {
		t.Error(err)
	}
}

func TestLogsLiveSimulation(t *testing.T) {
	var buf bytes.Buffer
	s, err := sim.New(sim.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	s.AddObserver(New(&buf))

	s.Place(5, weights.Right)
	s.Undo()
	if _, err := s.Place(0, weights.Left); !errors.Is(err, dynamo.ErrInvalidMass) {
		t.Fatalf("expected ErrInvalidMass, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Added weight 5 kg to right side", "Removed weight 5 kg from right side", "Rejected weight 0 kg"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
