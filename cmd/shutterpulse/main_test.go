package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cjeanneret/shutterpulse/internal/config"
	"github.com/cjeanneret/shutterpulse/internal/logic/pulse"
	"github.com/cjeanneret/shutterpulse/internal/report"
)

func TestWriteHeader_ContentParity(t *testing.T) {
	var console, file bytes.Buffer
	lb := report.NewLogbook(&console, &file)

	start := time.Date(2026, 8, 30, 15, 30, 0, 0, time.Local)
	writeHeader(lb, config.Default(), start)

	if console.String() != file.String() {
		t.Errorf("header differs between console and log:\nconsole: %q\nfile: %q",
			console.String(), file.String())
	}

	out := file.String()
	for _, want := range []string{
		"GPIO Chip: gpiochip4",
		"GPIO Line: 12",
		"Started: 2026-08-30 15:30:00",
		"  - Press duration: 50ms",
		"  - Cycle delay: 200ms",
		"  - Total triggers: 30",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSummary_Formatting(t *testing.T) {
	var console, file bytes.Buffer
	lb := report.NewLogbook(&console, &file)

	res := pulse.Summarize(7500*time.Millisecond, 30)
	writeSummary(lb, res, "shutterpulse_20260830_153000.log")

	if console.String() != file.String() {
		t.Error("summary differs between console and log")
	}

	out := file.String()
	for _, want := range []string{
		"=== Test Complete ===",
		"Total triggers: 30",
		"Total time: 7.50 seconds",
		"Average speed: 4.00 triggers/s",
		"Average cycle time: 250 ms",
		"Log saved to: shutterpulse_20260830_153000.log",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSummary_ZeroCycles(t *testing.T) {
	var console, file bytes.Buffer
	lb := report.NewLogbook(&console, &file)

	writeSummary(lb, pulse.Summarize(0, 0), "run.log")

	out := file.String()
	for _, want := range []string{
		"Total triggers: 0",
		"Total time: 0.00 seconds",
		"Average speed: 0.00 triggers/s",
		"Average cycle time: 0 ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("zero-cycle summary missing %q:\n%s", want, out)
		}
	}
}
