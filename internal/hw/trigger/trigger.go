package trigger

import (
	"github.com/cjeanneret/shutterpulse/internal/debug"
	"github.com/cjeanneret/shutterpulse/internal/hw/gpio"
)

// Trigger emulates a camera shutter button on a single GPIO output line:
// claim the line, drive it high to press, low to release, and always leave
// it low when letting go.
//
// The claimed line is never exposed to callers; it is either fully claimed
// (ready for Press/Release) or fully released, nothing in between.
type Trigger struct {
	driver   gpio.Driver
	chip     string
	offset   int
	consumer string

	line    gpio.Line
	claimed bool
}

// New creates a shutter trigger for the line at offset on the named
// controller. Nothing is claimed until Init.
func New(d gpio.Driver, chip string, offset int, consumer string) *Trigger {
	return &Trigger{
		driver:   d,
		chip:     chip,
		offset:   offset,
		consumer: consumer,
	}
}

// Init claims the line as an output, initially low. Idempotent: a second
// call is a successful no-op and does not touch the hardware again. On
// failure the backend has already released any partially-acquired resources,
// so the trigger stays fully released.
func (t *Trigger) Init() error {
	if t.claimed {
		debug.Info("GPIO already initialized")
		return nil
	}

	debug.Info("Initializing GPIO %s line %d (consumer %q)", t.chip, t.offset, t.consumer)

	line, err := t.driver.RequestOutput(t.chip, t.offset, t.consumer)
	if err != nil {
		return err
	}

	t.line = line
	t.claimed = true
	debug.Info("GPIO line %d initialized successfully", t.offset)
	return nil
}

// Initialized reports whether the line is currently claimed.
func (t *Trigger) Initialized() bool {
	return t.claimed
}

// Press sets the line high. No-op if not initialized.
func (t *Trigger) Press() {
	if !t.claimed {
		return
	}
	if err := t.line.Set(gpio.High); err != nil {
		debug.Error(err)
	}
}

// Release sets the line low. No-op if not initialized.
func (t *Trigger) Release() {
	if !t.claimed {
		return
	}
	if err := t.line.Set(gpio.Low); err != nil {
		debug.Error(err)
	}
}

// Cleanup forces the line low, then releases it, in that order, so the
// shutter is never left pressed after shutdown. Idempotent: no-op if the
// line was never claimed or was already released. Best-effort: release
// errors are logged, not returned.
func (t *Trigger) Cleanup() {
	if !t.claimed {
		return
	}

	debug.Info("Cleaning up GPIO line %d", t.offset)

	if err := t.line.Set(gpio.Low); err != nil {
		debug.Error(err)
	}
	if err := t.line.Release(); err != nil {
		debug.Error(err)
	}

	t.line = nil
	t.claimed = false
	debug.Info("GPIO cleanup complete")
}
