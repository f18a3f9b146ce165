package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/balancescale/internal/sim"
	"github.com/san-kum/balancescale/internal/stability"
	"github.com/san-kum/balancescale/internal/weights"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := sim.New(sim.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(s, "chalk")
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestKeysApplyOnNextFrame(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m = send(m, key("."))
	if got := m.sim.TotalWeight(weights.Right); got != 0 {
		t.Fatalf("key applied before the frame: right = %v", got)
	}

	m = send(m, TickMsg(start))
	if got := m.sim.TotalWeight(weights.Right); got != 0.5 {
		t.Errorf("right = %v, want 0.5", got)
	}
}

func TestPaletteKeys(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m = send(m, key("down"), key("right"), key(","), TickMsg(now))
	if got := m.sim.TotalWeight(weights.Left); got != 5 {
		t.Errorf("left = %v, want 5 (big, second size)", got)
	}

	m = send(m, key("up"), key("4"), key("l"), TickMsg(now.Add(time.Second/60)))
	if got := m.sim.TotalWeight(weights.Right); got != 2 {
		t.Errorf("right = %v, want 2", got)
	}
}

func TestFramesAdvanceBeam(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m = send(m, key("."), TickMsg(now))
	for i := 1; i <= 120; i++ {
		m = send(m, TickMsg(now.Add(time.Duration(i)*time.Second/60)))
	}
	if m.sim.Angle() <= 0 {
		t.Errorf("expected right tilt after 2s, got %f", m.sim.Angle())
	}
	if len(m.history) == 0 {
		t.Error("angle history not recorded")
	}
}

func TestPauseUndoReset(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m = send(m, key(" "), TickMsg(now))
	if !m.sim.Paused() {
		t.Fatal("space should pause")
	}
	m = send(m, key(","), TickMsg(now.Add(time.Second)))
	if m.sim.Angle() != 0 {
		t.Error("beam moved while paused")
	}

	m = send(m, key("u"), TickMsg(now.Add(2*time.Second)))
	if m.sim.HistoryLen() != 0 {
		t.Error("undo did not remove the weight")
	}
	m = send(m, key("u"), TickMsg(now.Add(3*time.Second)))
	if m.notification != "Nothing to undo" {
		t.Errorf("notification = %q", m.notification)
	}

	m = send(m, key("."), key("r"), TickMsg(now.Add(4*time.Second)))
	if m.sim.TotalWeight(weights.Right) != 0 {
		t.Error("reset left weights behind")
	}
	if m.sim.StabilizationState() != stability.Stabilized {
		t.Error("fresh scale should be stabilized")
	}
}

func TestQuitAndView(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should return a quit command")
	}

	m = send(m, key("."), TickMsg(time.Now()), key("?"))
	view := m.View()
	for _, want := range []string{"BALANCE SCALE", "Stabilized", "KEYBOARD SHORTCUTS"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
