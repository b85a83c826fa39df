package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.GPIO.Backend != "gpiocdev" {
		t.Errorf("default backend = %q, want gpiocdev", cfg.GPIO.Backend)
	}
	if cfg.GPIO.Chip != "gpiochip4" || cfg.GPIO.Line != 12 {
		t.Errorf("default line = %s:%d, want gpiochip4:12", cfg.GPIO.Chip, cfg.GPIO.Line)
	}
	if cfg.Pulse.PressMs != 50 || cfg.Pulse.CycleDelayMs != 200 || cfg.Pulse.TotalTriggers != 30 {
		t.Errorf("default pulse = %+v, want 50/200/30", cfg.Pulse)
	}
}

func TestLoad_FullFile(t *testing.T) {
	path := writeTempConfig(t, `
gpio:
  backend: mock
  chip: gpiochip0
  line: 17
  consumer: bench
pulse:
  press_ms: 20
  cycle_delay_ms: 300
  total_triggers: 5
log:
  dir: /tmp
  prefix: bench_
defaults:
  debug_level: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.GPIO.Backend != "mock" || cfg.GPIO.Chip != "gpiochip0" || cfg.GPIO.Line != 17 {
		t.Errorf("gpio = %+v", cfg.GPIO)
	}
	if cfg.Pulse.PressMs != 20 || cfg.Pulse.CycleDelayMs != 300 || cfg.Pulse.TotalTriggers != 5 {
		t.Errorf("pulse = %+v", cfg.Pulse)
	}
	if cfg.Log.Prefix != "bench_" || cfg.Defaults.DebugLevel != 2 {
		t.Errorf("log = %+v, defaults = %+v", cfg.Log, cfg.Defaults)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	// Only the gpio section is present; pulse timings keep their defaults.
	path := writeTempConfig(t, `
gpio:
  chip: gpiochip0
  line: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GPIO.Chip != "gpiochip0" || cfg.GPIO.Line != 4 {
		t.Errorf("gpio = %+v", cfg.GPIO)
	}
	if cfg.Pulse.PressMs != 50 || cfg.Pulse.TotalTriggers != 30 {
		t.Errorf("pulse defaults lost: %+v", cfg.Pulse)
	}
}

func TestLoad_ExplicitZeroTriggersHonored(t *testing.T) {
	path := writeTempConfig(t, `
pulse:
  total_triggers: 0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pulse.TotalTriggers != 0 {
		t.Errorf("total_triggers = %d, want 0", cfg.Pulse.TotalTriggers)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad backend", "gpio:\n  backend: sysfs\n", "gpio.backend"},
		{"negative line", "gpio:\n  line: -1\n", "gpio.line"},
		{"zero press", "pulse:\n  press_ms: 0\n", "pulse.press_ms"},
		{"negative delay", "pulse:\n  cycle_delay_ms: -5\n", "pulse.cycle_delay_ms"},
		{"negative triggers", "pulse:\n  total_triggers: -1\n", "pulse.total_triggers"},
		{"bad debug level", "defaults:\n  debug_level: 9\n", "debug_level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, tc.yaml)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := Default()
	if cfg.PressDuration() != 50*time.Millisecond {
		t.Errorf("PressDuration = %v, want 50ms", cfg.PressDuration())
	}
	if cfg.CycleDelay() != 200*time.Millisecond {
		t.Errorf("CycleDelay = %v, want 200ms", cfg.CycleDelay())
	}
}
