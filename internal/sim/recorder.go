package sim

import (
	"github.com/san-kum/balancescale/internal/dynamo"
	"github.com/san-kum/balancescale/internal/stability"
)

// Recorder keeps every tick sample for saving a run.
type Recorder struct {
	samples []dynamo.Sample
	states  []string
}

var _ Resettable = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnTick(s dynamo.Sample, state stability.State) {
	r.samples = append(r.samples, s)
	r.states = append(r.states, state.String())
}

func (r *Recorder) Len() int { return len(r.samples) }

// Result packages the recording with the metrics observed alongside it.
func (r *Recorder) Result(metrics []dynamo.Metric) *dynamo.Result {
	res := &dynamo.Result{
		Samples:    append([]dynamo.Sample(nil), r.samples...),
		States:     append([]string(nil), r.states...),
		Metrics:    make(map[string]float64, len(metrics)),
		StepsTaken: len(r.samples),
	}
	for _, m := range metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res
}

func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
	r.states = r.states[:0]
}
