package sim

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/integrators"
	"github.com/san-kum/balancescale/internal/physics"
	"github.com/san-kum/balancescale/internal/stability"
	"github.com/san-kum/balancescale/internal/weights"
)

// Simulation owns the beam and its weights. It is driven by a single frame
// loop: inputs first, then Tick, then reads for rendering.
type Simulation struct {
	settings   Settings
	beam       *physics.BeamState
	registry   *weights.Registry
	integ      *physics.Integrator
	classifier stability.Classifier
	rng        *rand.Rand

	paused     bool
	t          float64
	ticks      int
	lastTorque float64

	observers     []Observer
	tickObservers []TickObserver
	metrics       []dynamo.Metric
}

type Option func(*options)

type options struct {
	backend    dynamo.Integrator
	model      physics.TorqueModel
	classifier stability.Classifier
	mapping    weights.Mapping
}

// WithBackend selects the integration backend. The default is
// integrators.SymplecticEuler.
func WithBackend(b dynamo.Integrator) Option {
	return func(o *options) { o.backend = b }
}

// WithTorqueModel overrides the model Settings.Mode would pick.
func WithTorqueModel(m physics.TorqueModel) Option {
	return func(o *options) { o.model = m }
}

func WithClassifier(c stability.Classifier) Option {
	return func(o *options) { o.classifier = c }
}

func WithMapping(m weights.Mapping) Option {
	return func(o *options) { o.mapping = m }
}

func New(s Settings, opts ...Option) (*Simulation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = integrators.NewSymplecticEuler()
	}
	if o.classifier == nil {
		o.classifier = stability.NewMotion()
	}
	if o.model == nil {
		m, err := physics.NewTorqueModel(s.Mode, s.Params)
		if err != nil {
			return nil, err
		}
		o.model = m
	}

	beam, err := physics.NewBeamState(s.Pivot, s.Params.ArmHalfLength, s.Params.MaxAngle)
	if err != nil {
		return nil, err
	}
	reg, err := weights.NewRegistry(s.Params.ArmHalfLength, o.mapping)
	if err != nil {
		return nil, err
	}
	integ, err := physics.NewIntegrator(s.Params, o.model, o.backend)
	if err != nil {
		return nil, err
	}

	sim := &Simulation{
		settings:   s,
		beam:       beam,
		registry:   reg,
		integ:      integ,
		classifier: o.classifier,
		rng:        rand.New(rand.NewSource(s.Seed)),
		paused:     s.StartPaused,
	}
	sim.seedChallenge()
	return sim, nil
}

func (s *Simulation) AddObserver(o Observer)         { s.observers = append(s.observers, o) }
func (s *Simulation) AddTickObserver(o TickObserver) { s.tickObservers = append(s.tickObservers, o) }
func (s *Simulation) AddMetric(m dynamo.Metric)      { s.metrics = append(s.metrics, m) }

func (s *Simulation) emit(e Event) {
	e.Time = s.t
	for _, o := range s.observers {
		o.OnEvent(e)
	}
}

func (s *Simulation) placed(w *weights.Weight, err error, mass float64, side weights.Side) (*weights.Weight, error) {
	if err != nil {
		s.emit(Event{Kind: EventRejected, Mass: mass, Side: side, Err: err})
		return nil, err
	}
	s.beam.Layout([]*weights.Weight{w})
	s.emit(Event{Kind: EventPlaced, Weight: *w, Mass: w.Mass, Side: w.Side})
	return w, nil
}

// Place drops mass at the end of side's arm.
func (s *Simulation) Place(mass float64, side weights.Side) (*weights.Weight, error) {
	w, err := s.registry.Add(mass, side)
	return s.placed(w, err, mass, side)
}

// PlaceAt drops mass at a signed distance from the pivot.
func (s *Simulation) PlaceAt(mass, offset float64) (*weights.Weight, error) {
	w, err := s.registry.AddAt(mass, offset)
	side := weights.Right
	if offset < 0 {
		side = weights.Left
	}
	return s.placed(w, err, mass, side)
}

// Undo removes the last placed weight. With nothing to undo it does
// nothing and reports false.
func (s *Simulation) Undo() (*weights.Weight, bool) {
	w, ok := s.registry.Undo()
	if ok {
		s.emit(Event{Kind: EventUndone, Weight: *w, Mass: w.Mass, Side: w.Side})
	}
	return w, ok
}

// UndoLast is Undo for callers that report an empty history as an error.
func (s *Simulation) UndoLast() (*weights.Weight, error) {
	w, ok := s.Undo()
	if !ok {
		return nil, dynamo.ErrEmptyHistory
	}
	return w, nil
}

// Reset replaces the beam with a fresh level one and empties the registry.
// Time, metrics and resettable tick observers start over; the pause state
// is kept.
func (s *Simulation) Reset() {
	s.beam = &physics.BeamState{
		Pivot:         s.beam.Pivot,
		ArmHalfLength: s.beam.ArmHalfLength,
		MaxAngle:      s.beam.MaxAngle,
	}
	s.registry.Reset()
	s.integ.Reset()
	s.t, s.ticks, s.lastTorque = 0, 0, 0
	for _, m := range s.metrics {
		m.Reset()
	}
	for _, o := range s.tickObservers {
		if r, ok := o.(Resettable); ok {
			r.Reset()
		}
	}
	s.seedChallenge()
	s.emit(Event{Kind: EventReset})
}

func (s *Simulation) seedChallenge() {
	if !s.settings.Challenge {
		return
	}
	n := 1 + s.rng.Intn(3)
	for i := 0; i < n; i++ {
		mass := weights.BigMasses[s.rng.Intn(len(weights.BigMasses))]
		if w, err := s.registry.AddFixed(mass, weights.Left); err == nil {
			s.beam.Layout([]*weights.Weight{w})
		}
	}
}

func (s *Simulation) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	s.emit(Event{Kind: EventPaused})
}

func (s *Simulation) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.emit(Event{Kind: EventResumed})
}

func (s *Simulation) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Tick integrates dt seconds. It is skipped while paused and reports
// whether the beam was advanced.
func (s *Simulation) Tick(dt float64) bool {
	if s.paused {
		return false
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	res := s.integ.Tick(s.beam, s.registry, dt)
	s.lastTorque = res.Torque
	s.t += dt
	s.ticks++

	sample := s.Sample()
	state := s.StabilizationState()
	for _, m := range s.metrics {
		m.Observe(sample)
	}
	for _, o := range s.tickObservers {
		o.OnTick(sample, state)
	}
	return true
}

// Advance ticks by wall-clock elapsed time, capped at MaxFrameDt.
func (s *Simulation) Advance(elapsed time.Duration) bool {
	dt := elapsed.Seconds()
	if dt > s.settings.MaxFrameDt {
		dt = s.settings.MaxFrameDt
	}
	return s.Tick(dt)
}

// RunFor ticks at a fixed dt for duration seconds of simulated time,
// checking ctx between ticks.
func (s *Simulation) RunFor(ctx context.Context, duration, dt float64) error {
	if !(dt > 0) {
		return &dynamo.ConfigError{Field: "dt", Value: dt, Reason: "must be positive"}
	}
	steps := int(math.Round(duration / dt))
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.Tick(dt)
		if !s.beam.State().IsValid() {
			return &dynamo.SimulationError{Step: s.ticks, Time: s.t, State: s.beam.State(), Wrapped: dynamo.ErrUnstable}
		}
	}
	return nil
}

func (s *Simulation) Angle() float64           { return s.beam.Angle }
func (s *Simulation) AngularVelocity() float64 { return s.beam.AngularVelocity }
func (s *Simulation) Torque() float64          { return s.lastTorque }
func (s *Simulation) Paused() bool             { return s.paused }
func (s *Simulation) Time() float64            { return s.t }
func (s *Simulation) Ticks() int               { return s.ticks }
func (s *Simulation) Settings() Settings       { return s.settings }

// Beam returns a copy of the beam state.
func (s *Simulation) Beam() physics.BeamState { return *s.beam }

// Integrator exposes the tick pipeline for live tuning.
func (s *Simulation) Integrator() *physics.Integrator { return s.integ }

func (s *Simulation) TotalWeight(side weights.Side) float64 {
	return s.registry.TotalWeight(side)
}

func (s *Simulation) HistoryLen() int { return s.registry.HistoryLen() }

// WeightPositions returns copies of every weight on the beam with its
// latest rendered position.
func (s *Simulation) WeightPositions() []weights.Weight {
	all := s.registry.All()
	out := make([]weights.Weight, len(all))
	for i, w := range all {
		out[i] = *w
	}
	return out
}

func (s *Simulation) Reading() stability.Reading {
	return stability.Reading{
		Angle:           s.beam.Angle,
		AngularVelocity: s.beam.AngularVelocity,
		LeftTotal:       s.registry.TotalWeight(weights.Left),
		RightTotal:      s.registry.TotalWeight(weights.Right),
	}
}

func (s *Simulation) StabilizationState() stability.State {
	return s.classifier.Classify(s.Reading())
}

func (s *Simulation) Sample() dynamo.Sample {
	r := s.Reading()
	return dynamo.Sample{
		Time:            s.t,
		Angle:           r.Angle,
		AngularVelocity: r.AngularVelocity,
		Torque:          s.lastTorque,
		LeftTotal:       r.LeftTotal,
		RightTotal:      r.RightTotal,
	}
}
