package sim

import (
	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/stability"
	"github.com/san-kum/balancescale/internal/weights"
)

type EventKind int

const (
	EventPlaced EventKind = iota
	EventUndone
	EventReset
	EventPaused
	EventResumed
	EventRejected
)

func (k EventKind) String() string {
	switch k {
	case EventPlaced:
		return "placed"
	case EventUndone:
		return "undone"
	case EventReset:
		return "reset"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventRejected:
		return "rejected"
	}
	return "unknown"
}

// Event is a change made through the input surface. Weight is a copy
// taken when the event fired.
type Event struct {
	Kind   EventKind
	Time   float64
	Weight weights.Weight
	Mass   float64
	Side   weights.Side
	Err    error
}

// Observer is told about every input the simulation accepts or rejects.
type Observer interface {
	OnEvent(e Event)
}

// TickObserver sees every integrated tick.
type TickObserver interface {
	OnTick(s dynamo.Sample, state stability.State)
}

// Resettable tick observers are cleared along with the metrics when the
// simulation resets, so a recording only ever covers one run of the clock.
type Resettable interface {
	Reset()
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }
