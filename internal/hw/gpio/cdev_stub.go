//go:build !linux

package gpio

import (
	"fmt"

	"github.com/cjeanneret/shutterpulse/internal/debug"
)

// CdevDriver stub for platforms without the kernel GPIO character device.
// Construction succeeds so the capability check happens at line request time,
// where the caller already handles the error taxonomy; no request ever
// succeeds.
type CdevDriver struct{}

func NewCdevDriver() (*CdevDriver, error) {
	debug.Info("GPIO character device driver requested on unsupported platform")
	return &CdevDriver{}, nil
}

func (d *CdevDriver) RequestOutput(chip string, offset int, consumer string) (Line, error) {
	return nil, fmt.Errorf("%w: GPIO control requires Linux", ErrUnsupported)
}
