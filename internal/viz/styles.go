package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/balancescale/internal/stability"
	"github.com/san-kum/balancescale/internal/weights"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).Padding(1, 2).Width(42)
	labelStyle  = lipgloss.NewStyle().Width(12)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)

	StatusRunning = lipgloss.NewStyle().Bold(true)
	StatusPaused  = lipgloss.NewStyle().Bold(true)
)

// applyTheme recolors the package styles from t.
func applyTheme(t Theme) {
	canvasStyle = canvasStyle.Foreground(t.Beam)
	statsStyle = statsStyle.BorderForeground(t.Muted)
	labelStyle = labelStyle.Foreground(t.Muted)
	graphStyle = graphStyle.Foreground(t.Beam)
	helpStyle = helpStyle.Foreground(t.Muted)
	StatusRunning = StatusRunning.Foreground(t.Stable)
	StatusPaused = StatusPaused.Foreground(t.Near)
}

func headerStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Title).MarginBottom(1)
}

func valueStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

// StateStyle colors the stabilization indicator with the theme's band
// colors.
func StateStyle(t Theme, s stability.State) lipgloss.Style {
	c := t.Far
	switch s {
	case stability.Stabilized:
		c = t.Stable
	case stability.AlmostStabilized:
		c = t.Near
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

func sideStyle(t Theme, side weights.Side) lipgloss.Style {
	if side == weights.Left {
		return lipgloss.NewStyle().Foreground(t.Left)
	}
	return lipgloss.NewStyle().Foreground(t.Right)
}

// TiltBar draws the angle as a marker on a horizontal track spanning
// -limit..+limit.
func TiltBar(angle, limit float64, width int) string {
	if width < 3 || limit <= 0 {
		return ""
	}
	pos := int((angle/limit + 1) / 2 * float64(width-1))
	pos = max(0, min(width-1, pos))
	mid := (width - 1) / 2

	track := []rune(strings.Repeat("─", width))
	track[mid] = '┼'
	track[pos] = '●'
	return string(track)
}
