package gpio

import (
	"errors"
	"fmt"

	"github.com/cjeanneret/shutterpulse/internal/debug"
)

// Level represents the logical state of a GPIO line.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Error kinds reported by the backends. Callers match them with errors.Is;
// the wrapped message carries the chip/line context.
var (
	// ErrDeviceUnavailable: the named controller cannot be opened
	// (missing driver, wrong name, no permission).
	ErrDeviceUnavailable = errors.New("GPIO controller unavailable")
	// ErrLineUnavailable: the line offset does not exist on the controller,
	// or the output request was rejected (already claimed elsewhere).
	ErrLineUnavailable = errors.New("GPIO line unavailable")
	// ErrUnsupported: this build lacks the kernel GPIO character device.
	ErrUnsupported = errors.New("GPIO character device not supported on this platform")
)

// Line is one claimed output line. It is produced by a Driver and owned by
// whoever requested it; Release must be called exactly once when done, after
// which the line must not be used again.
type Line interface {
	Set(level Level) error
	Release() error
}

// Driver defines the abstract interface for claiming GPIO output lines.
// This allows plugging in a real backend (kernel character device or
// memory-mapped Raspberry Pi access) or a mock for development on PC.
type Driver interface {
	// RequestOutput claims the line at offset on the named controller as an
	// output, initially driven Low, under the given consumer label. On any
	// mid-sequence failure the backend releases whatever it already acquired
	// before returning.
	RequestOutput(chip string, offset int, consumer string) (Line, error)
}

// Backend names accepted by NewDriver.
const (
	BackendCdev = "gpiocdev"
	BackendRPi  = "rpio"
	BackendMock = "mock"
)

// NewDriver creates a GPIO driver for the named backend.
// "gpiocdev" uses the kernel character device (/dev/gpiochipN, Linux only),
// "rpio" maps the Raspberry Pi GPIO block directly,
// "mock" logs actions without touching hardware (for dev/test).
func NewDriver(backend string) (Driver, error) {
	switch backend {
	case BackendMock:
		debug.Info("Using MOCK GPIO driver (development mode)")
		return &MockDriver{}, nil
	case BackendRPi:
		return NewRPiDriver()
	case BackendCdev, "":
		return NewCdevDriver()
	default:
		return nil, fmt.Errorf("unknown GPIO backend: %q", backend)
	}
}

// MockDriver is a test implementation that simply logs actions.
// Used for development on PC or testing.
type MockDriver struct{}

func (m *MockDriver) RequestOutput(chip string, offset int, consumer string) (Line, error) {
	debug.GPIO("RequestOutput", offset, chip)
	return &MockLine{offset: offset}, nil
}

// MockLine tracks the logical level it was last set to.
type MockLine struct {
	offset   int
	level    Level
	released bool
}

func (l *MockLine) Set(level Level) error {
	debug.GPIO("Set", l.offset, level)
	l.level = level
	return nil
}

func (l *MockLine) Release() error {
	debug.Trace("GPIO release line %d (mock)", l.offset)
	l.released = true
	return nil
}

// Level reports the last level written to the mock line.
func (l *MockLine) Level() Level { return l.level }

// Released reports whether the mock line has been released.
func (l *MockLine) Released() bool { return l.released }
