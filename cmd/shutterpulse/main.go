package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cjeanneret/shutterpulse/internal/config"
	"github.com/cjeanneret/shutterpulse/internal/debug"
	"github.com/cjeanneret/shutterpulse/internal/hw/gpio"
	"github.com/cjeanneret/shutterpulse/internal/hw/trigger"
	"github.com/cjeanneret/shutterpulse/internal/logic/pulse"
	"github.com/cjeanneret/shutterpulse/internal/report"
)

// settleDelay gives the camera time to be ready before the first trigger.
const settleDelay = 500 * time.Millisecond

func main() {
	os.Exit(run())
}

// run is split from main so the deferred cleanup fires on every exit path:
// once the line is claimed it must never stay asserted, and os.Exit in main
// would skip the defers.
func run() int {
	cfgPath := flag.String("config", "", "path to config file; built-in defaults used when empty")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: load config: %v\n", err)
		return 1
	}

	debug.Init(cfg.Defaults.DebugLevel)
	debug.Value("Config path", *cfgPath)
	debug.Value("GPIO backend", cfg.GPIO.Backend)

	drv, err := gpio.NewDriver(cfg.GPIO.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	trig := trigger.New(drv, cfg.GPIO.Chip, cfg.GPIO.Line, cfg.GPIO.Consumer)
	if err := trig.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to initialize GPIO: %v\n", err)
		return 1
	}
	defer trig.Cleanup()

	start := time.Now()
	lb, err := report.Open(cfg.Log.Dir, cfg.Log.Prefix, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	defer lb.Close()

	// Mirror any debug output into the run log alongside the console.
	debug.SetOutput(lb.Sink())

	writeHeader(lb, cfg, start)

	time.Sleep(settleDelay)

	lb.Printf("Starting GPIO trigger sequence...\n\n")

	seq := pulse.NewSequencer(trig, lb.Progress)
	res := seq.Run(pulse.Params{
		PressDuration: cfg.PressDuration(),
		CycleDelay:    cfg.CycleDelay(),
		TotalTriggers: cfg.Pulse.TotalTriggers,
	})
	lb.EndProgress()

	writeSummary(lb, res, lb.Path())
	return 0
}

const separator = "================================================================================"

// writeHeader emits the run header to both the console and the log file.
func writeHeader(lb *report.Logbook, cfg *config.Config, start time.Time) {
	lb.Printf("\n%s\n", separator)
	lb.Printf("GPIO Shutter Pulse Test\n")
	lb.Printf("GPIO Chip: %s\n", cfg.GPIO.Chip)
	lb.Printf("GPIO Line: %d\n", cfg.GPIO.Line)
	lb.Printf("Started: %s\n", start.Format("2006-01-02 15:04:05"))
	lb.Printf("%s\n\n", separator)

	lb.Printf("Configuration:\n")
	lb.Printf("  - Press duration: %dms\n", cfg.Pulse.PressMs)
	lb.Printf("  - Cycle delay: %dms (for camera processing + SD card save)\n", cfg.Pulse.CycleDelayMs)
	lb.Printf("  - Total triggers: %d\n\n", cfg.Pulse.TotalTriggers)
}

// writeSummary emits the trailing timing summary to both sinks.
func writeSummary(lb *report.Logbook, res pulse.Result, logPath string) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== Test Complete ===\n")
	fmt.Fprintf(&b, "Total triggers: %d\n", res.Cycles)
	fmt.Fprintf(&b, "Total time: %.2f seconds\n", res.ElapsedSeconds())
	fmt.Fprintf(&b, "Average speed: %.2f triggers/s\n", res.AvgRate)
	fmt.Fprintf(&b, "Average cycle time: %d ms\n", res.AvgCycleMs())
	fmt.Fprintf(&b, "\nLog saved to: %s\n", logPath)
	fmt.Fprintf(&b, "%s\n\n", separator)
	lb.Printf("%s", b.String())
}
