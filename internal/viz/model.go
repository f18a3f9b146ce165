package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/sim"
	"github.com/san-kum/balancescale/internal/weights"
)

const (
	canvasWidth     = 60
	canvasHeight    = 20
	historyCapacity = 300
	// notifyFrames is how long a notification stays up, in frames.
	notifyFrames = 2 * sim.FrameRate
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/sim.FrameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the interactive shell. Key presses are queued and applied at
// the start of the next frame, before the simulation advances.
type Model struct {
	sim          *sim.Simulation
	palette      *weights.Palette
	clock        *sim.Clock
	scene        *Scene
	theme        Theme
	pending      []string
	history      []float64
	notification string
	notifyLeft   int
	showHelp     bool
}

func NewModel(s *sim.Simulation, theme string) Model {
	t := GetTheme(theme)
	applyTheme(t)
	return Model{
		sim:     s,
		palette: weights.NewPalette(),
		clock:   &sim.Clock{},
		scene:   NewScene(canvasWidth, canvasHeight, s.Settings().Pivot),
		theme:   t,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			m.theme = NextTheme(m.theme.Name)
			applyTheme(m.theme)
		default:
			m.pending = append(m.pending, key)
		}
		return m, nil

	case tea.WindowSizeMsg:
		w := max(20, min(canvasWidth, msg.Width-48))
		h := max(8, min(canvasHeight, msg.Height-4))
		m.scene.Resize(w, h, m.sim.Settings().Pivot)
		return m, nil

	case TickMsg:
		m.frame(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

// frame runs one shell frame: input, then physics, then the data the
// next View reads.
func (m *Model) frame(now time.Time) {
	for _, key := range m.pending {
		m.handleKey(key)
	}
	m.pending = m.pending[:0]

	elapsed := m.clock.Elapsed(now)
	if m.sim.Advance(elapsed) {
		m.history = append(m.history, m.sim.Angle())
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
	}

	if m.notifyLeft > 0 {
		m.notifyLeft--
		if m.notifyLeft == 0 {
			m.notification = ""
		}
	}
}

func (m *Model) notify(format string, args ...any) {
	m.notification = fmt.Sprintf(format, args...)
	m.notifyLeft = notifyFrames
}

func (m *Model) handleKey(key string) {
	switch key {
	case ",", "h":
		m.place(weights.Left)
	case ".", "l":
		m.place(weights.Right)
	case "u":
		w, err := m.sim.UndoLast()
		switch {
		case errors.Is(err, dynamo.ErrEmptyHistory):
			m.notify("Nothing to undo")
		case err == nil:
			m.notify("Removed %s kg from the %s side", weights.FormatMass(w.Mass), w.Side)
		}
	case "r":
		m.sim.Reset()
		m.history = m.history[:0]
		m.notify("Scale reset")
	case " ":
		m.sim.TogglePause()
	case "up":
		m.palette.SetKind(weights.Small)
	case "down":
		m.palette.SetKind(weights.Big)
	case "left":
		m.palette.Prev()
	case "right":
		m.palette.Next()
	case "1", "2", "3", "4", "5":
		m.palette.Select(int(key[0] - '1'))
	}
}

func (m *Model) place(side weights.Side) {
	mass := m.palette.Mass()
	if _, err := m.sim.Place(mass, side); err != nil {
		switch {
		case errors.Is(err, dynamo.ErrInvalidMass):
			m.notify("Cannot place %s kg", weights.FormatMass(mass))
		default:
			m.notify("Rejected: %v", err)
		}
	}
}

func (m Model) View() string {
	m.scene.Draw(m.sim.Beam(), m.sim.WeightPositions())
	canvasView := canvasStyle.Render(m.scene.String())

	value := valueStyle(m.theme)
	var s strings.Builder
	s.WriteString(headerStyle(m.theme).Render("BALANCE SCALE") + "\n")

	if m.sim.Paused() {
		s.WriteString(StatusPaused.Render("PAUSED"))
	} else {
		s.WriteString(StatusRunning.Render("RUNNING"))
	}
	state := m.sim.StabilizationState()
	s.WriteString("  " + StateStyle(m.theme, state).Render(state.String()) + "\n\n")

	beam := m.sim.Beam()
	s.WriteString(TiltBar(beam.Angle, beam.MaxAngle, 30) + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Angle (deg)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	row := func(label, v string) {
		s.WriteString(labelStyle.Render(label) + value.Render(v) + "\n")
	}
	for _, side := range []struct {
		label string
		side  weights.Side
	}{{"Left", weights.Left}, {"Right", weights.Right}} {
		total := weights.FormatMass(m.sim.TotalWeight(side.side)) + " kg"
		s.WriteString(labelStyle.Render(side.label) + sideStyle(m.theme, side.side).Render(total) + "\n")
	}
	row("Angle", fmt.Sprintf("%+.2f°", beam.Angle))
	row("Velocity", fmt.Sprintf("%+.3f°/s", beam.AngularVelocity))
	row("Time", fmt.Sprintf("%.1fs", m.sim.Time()))

	s.WriteString("\n" + labelStyle.Render(strings.ToUpper(m.palette.Kind().String())))
	for i, mass := range m.palette.Masses() {
		label := weights.FormatMass(mass)
		if i == m.palette.Index() {
			s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(m.theme.Highlight).Render("[" + label + "]"))
		} else {
			s.WriteString(value.Render(" " + label + " "))
		}
	}
	s.WriteString("\n")

	if m.notification != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Near).Render(m.notification) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\n,/.:Drop U:Undo R:Reset\nSP:Pause ↑↓←→:Size ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  , or H   - Drop weight on the left  ║
║  . or L   - Drop weight on the right ║
║  U        - Undo last drop           ║
║  R        - Reset the scale          ║
║  Space    - Pause/Resume             ║
║  Up/Down  - Small or big weights     ║
║  ←/→      - Cycle weight size        ║
║  1-5      - Pick weight size         ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// RunInteractive runs the shell on the terminal until the user quits.
func RunInteractive(s *sim.Simulation, theme string) error {
	_, err := tea.NewProgram(NewModel(s, theme), tea.WithAltScreen()).Run()
	return err
}
