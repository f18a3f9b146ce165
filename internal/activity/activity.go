// Package activity writes the human-readable audit log of everything the
// user does to the scale.
package activity

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/san-kum/balancescale/internal/sim"
	"github.com/san-kum/balancescale/internal/weights"
)

const DefaultFile = "balancescale_log.txt"

// Logger appends one line per simulation event. The zero value discards.
type Logger struct {
	out  *log.Logger
	file *os.File
}

// Open appends to path, creating it and its directory if needed. An
// empty path returns a Logger that discards everything.
func Open(path string) (*Logger, error) {
	if path == "" {
		return Discard(), nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Logger{out: log.New(f, "", log.LstdFlags), file: f}, nil
}

// New logs to w without taking ownership of it.
func New(w io.Writer) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags)}
}

func Discard() *Logger {
	return New(io.Discard)
}

func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	l.out.Printf(format, args...)
}

func (l *Logger) OnEvent(e sim.Event) {
	switch e.Kind {
	case sim.EventPlaced:
		l.Printf("Added weight %s kg to %s side", weights.FormatMass(e.Weight.Mass), e.Weight.Side)
	case sim.EventUndone:
		l.Printf("Removed weight %s kg from %s side", weights.FormatMass(e.Weight.Mass), e.Weight.Side)
	case sim.EventResumed:
		l.Printf("Simulation started")
	case sim.EventPaused:
		l.Printf("Simulation stopped")
	case sim.EventReset:
		l.Printf("System reset")
	case sim.EventRejected:
		l.Printf("Rejected weight %s kg: %v", weights.FormatMass(e.Mass), e.Err)
	}
}

func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
