package pulse

import (
	"time"

	"github.com/cjeanneret/shutterpulse/internal/debug"
)

// Button is the press/release surface of the shutter line controller.
type Button interface {
	Press()
	Release()
}

// Params defines the cadence of a pulse train.
type Params struct {
	PressDuration time.Duration // how long the line stays high per cycle
	CycleDelay    time.Duration // wait after release (camera processing + SD card save)
	TotalTriggers int           // number of press/release cycles
}

// Result holds the aggregate timing of a finished run.
type Result struct {
	Cycles   int
	Elapsed  time.Duration
	AvgRate  float64       // cycles per second
	AvgCycle time.Duration // average duration of one cycle
}

// Sequencer drives a button through a fixed number of press/release cycles
// with fixed delays. Strictly sequential: the sleeps block for their full
// duration and no cancellation is honored mid-run.
type Sequencer struct {
	button   Button
	progress func(done, total int)
}

// NewSequencer creates a sequencer over the given button. progress, if
// non-nil, is called at the start of each cycle with the 1-based cycle index.
func NewSequencer(b Button, progress func(done, total int)) *Sequencer {
	return &Sequencer{
		button:   b,
		progress: progress,
	}
}

// Run fires the configured number of cycles and returns the timing summary.
// Each cycle is press, hold for PressDuration, release, wait CycleDelay.
func (s *Sequencer) Run(p Params) Result {
	start := time.Now()

	for i := 1; i <= p.TotalTriggers; i++ {
		if s.progress != nil {
			s.progress(i, p.TotalTriggers)
		}

		s.button.Press()
		time.Sleep(p.PressDuration)
		s.button.Release()
		debug.Cycle(i, p.TotalTriggers)

		// Wait for the camera to complete capture and save the frame.
		time.Sleep(p.CycleDelay)
	}

	return Summarize(time.Since(start), p.TotalTriggers)
}

// Summarize computes the aggregate timing for a run of the given cycle count.
// Divisions are guarded: a zero-cycle or zero-length run reports zero rate
// and zero average cycle time.
func Summarize(elapsed time.Duration, cycles int) Result {
	r := Result{Cycles: cycles, Elapsed: elapsed}
	if cycles <= 0 {
		return r
	}

	seconds := float64(elapsed.Milliseconds()) / 1000.0
	if seconds > 0 {
		r.AvgRate = float64(cycles) / seconds
	}
	r.AvgCycle = elapsed / time.Duration(cycles)
	return r
}

// ElapsedSeconds returns the elapsed time in seconds, millisecond-resolution.
func (r Result) ElapsedSeconds() float64 {
	return float64(r.Elapsed.Milliseconds()) / 1000.0
}

// AvgCycleMs returns the average cycle duration rounded to the nearest
// millisecond.
func (r Result) AvgCycleMs() int64 {
	return r.AvgCycle.Round(time.Millisecond).Milliseconds()
}
