//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"github.com/cjeanneret/shutterpulse/internal/debug"
)

// CdevDriver claims lines through the kernel GPIO character device
// (/dev/gpiochipN) using go-gpiocdev. This is the preferred backend: the
// kernel tracks the consumer label and rejects lines claimed by another
// process.
type CdevDriver struct{}

// NewCdevDriver creates a character-device GPIO driver.
func NewCdevDriver() (*CdevDriver, error) {
	debug.Info("Initializing GPIO character device driver (go-gpiocdev)")
	return &CdevDriver{}, nil
}

func (d *CdevDriver) RequestOutput(chip string, offset int, consumer string) (Line, error) {
	debug.GPIO("RequestOutput", offset, chip)

	c, err := gpiocdev.NewChip(chip)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v (is the gpio-cdev driver loaded?)",
			ErrDeviceUnavailable, chip, err)
	}

	l, err := c.RequestLine(offset, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(consumer))
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("%w: request line %d on %s as output: %v",
			ErrLineUnavailable, offset, chip, err)
	}

	debug.Verbose("Line %d on %s requested as output (consumer %q)", offset, chip, consumer)

	return &cdevLine{chip: c, line: l, offset: offset}, nil
}

// cdevLine holds both the requested line and the chip it came from, so that
// releasing the line also closes the chip, in that order.
type cdevLine struct {
	chip   *gpiocdev.Chip
	line   *gpiocdev.Line
	offset int
}

func (l *cdevLine) Set(level Level) error {
	debug.GPIO("Set", l.offset, level)
	v := 0
	if level == High {
		v = 1
	}
	return l.line.SetValue(v)
}

func (l *cdevLine) Release() error {
	debug.Trace("GPIO release line %d (cdev)", l.offset)
	err := l.line.Close()
	if cerr := l.chip.Close(); err == nil {
		err = cerr
	}
	return err
}
