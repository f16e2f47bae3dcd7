package core

import "time"

// FixedStep converts wall-clock frame time into a whole number of fixed
// simulation ticks. Leftover time is carried to the next frame so the
// simulation rate does not depend on how often the host redraws.
type FixedStep struct {
	step     time.Duration
	acc      time.Duration
	maxSteps int
}

// NewFixedStep creates an accumulator for the given tick rate.
// maxSteps caps how many ticks a single frame may produce; anything beyond
// that is dropped so a stalled host does not fast-forward the run.
func NewFixedStep(tickRate, maxSteps int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps <= 0 {
		maxSteps = 5
	}
	return &FixedStep{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Advance adds elapsed frame time and returns how many ticks to run now.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	f.acc += elapsed

	n := int(f.acc / f.step)
	f.acc -= time.Duration(n) * f.step
	if n > f.maxSteps {
		n = f.maxSteps
		f.acc = 0
	}
	return n
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}
