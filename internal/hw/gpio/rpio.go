package gpio

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/cjeanneret/shutterpulse/internal/debug"
)

// RPiDriver addresses the Raspberry Pi GPIO block directly through
// /dev/gpiomem using go-rpio. The chip name is informational only with this
// backend: offsets are BCM numbers on the SoC's primary controller, so it
// suits deployments where the target line lives on gpiochip0.
// Requires running on a Raspberry Pi with access to /dev/gpiomem or as root.
type RPiDriver struct{}

// NewRPiDriver creates a memory-mapped GPIO driver for Raspberry Pi.
func NewRPiDriver() (*RPiDriver, error) {
	debug.Info("Initializing memory-mapped GPIO driver (go-rpio)")
	return &RPiDriver{}, nil
}

func (r *RPiDriver) RequestOutput(chip string, offset int, consumer string) (Line, error) {
	debug.GPIO("RequestOutput", offset, chip)

	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("%w: %v (are you running on a Raspberry Pi?)",
			ErrDeviceUnavailable, err)
	}

	debug.Verbose("GPIO memory mapped successfully")

	p := rpio.Pin(offset)
	p.Output()
	p.Low()

	return &rpioLine{pin: p, offset: offset}, nil
}

type rpioLine struct {
	pin    rpio.Pin
	offset int
}

func (l *rpioLine) Set(level Level) error {
	debug.GPIO("Set", l.offset, level)
	if level == High {
		l.pin.High()
	} else {
		l.pin.Low()
	}
	return nil
}

func (l *rpioLine) Release() error {
	debug.Trace("GPIO release line %d (rpio)", l.offset)

	// Reset the pin to input (safe state) before unmapping.
	l.pin.Input()

	return rpio.Close()
}
