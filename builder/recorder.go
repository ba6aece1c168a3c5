package builder

import "sync"

var _ Builder = (*Recorder)(nil)

// Recorder is a Builder whose product is the list of steps it received.
// It is safe for concurrent use.
//
// Reset is recorded like any other step and does not clear the log.
type Recorder struct {
	mu    sync.Mutex
	steps []Step
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Start() { r.record(StepStart) }
func (r *Recorder) Step1() { r.record(Step1) }
func (r *Recorder) Step2() { r.record(Step2) }
func (r *Recorder) Step3() { r.record(Step3) }
func (r *Recorder) Reset() { r.record(StepReset) }

// Steps returns a copy of the recorded steps in call order.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Clear drops everything recorded so far so the Recorder can be reused.
func (r *Recorder) Clear() {
	r.mu.Lock()
	r.steps = nil
	r.mu.Unlock()
}

func (r *Recorder) record(s Step) {
	r.mu.Lock()
	r.steps = append(r.steps, s)
	r.mu.Unlock()
}
