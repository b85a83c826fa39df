package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GPIOConfig identifies the output line driving the shutter and the backend
// used to claim it.
type GPIOConfig struct {
	Backend  string `yaml:"backend"`  // "gpiocdev" (kernel char device), "rpio" (memory-mapped Pi) or "mock"
	Chip     string `yaml:"chip"`     // controller name, e.g. "gpiochip4"
	Line     int    `yaml:"line"`     // line offset on the controller
	Consumer string `yaml:"consumer"` // consumer label reported to the kernel
}

// PulseConfig holds the press/release cadence.
type PulseConfig struct {
	PressMs       int `yaml:"press_ms"`       // shutter hold time (ms)
	CycleDelayMs  int `yaml:"cycle_delay_ms"` // wait after release, for camera processing + SD card save (ms)
	TotalTriggers int `yaml:"total_triggers"` // number of press/release cycles (0 allowed)
}

// LogConfig controls where the run log is written.
type LogConfig struct {
	Dir    string `yaml:"dir"`    // directory for the run log
	Prefix string `yaml:"prefix"` // log file name prefix; the start timestamp and ".log" are appended
}

// DefaultsConfig contains generic parameters.
type DefaultsConfig struct {
	DebugLevel int `yaml:"debug_level"` // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
}

// Config aggregates all application configuration.
type Config struct {
	GPIO     GPIOConfig     `yaml:"gpio"`
	Pulse    PulseConfig    `yaml:"pulse"`
	Log      LogConfig      `yaml:"log"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// Default returns the built-in configuration: GPIO 12 on gpiochip4
// (physical pin 32), 50ms press, 200ms cycle delay, 30 triggers.
func Default() *Config {
	return &Config{
		GPIO: GPIOConfig{
			Backend:  "gpiocdev",
			Chip:     "gpiochip4",
			Line:     12,
			Consumer: "shutterpulse",
		},
		Pulse: PulseConfig{
			PressMs:       50,
			CycleDelayMs:  200,
			TotalTriggers: 30,
		},
		Log: LogConfig{
			Dir:    ".",
			Prefix: "shutterpulse_",
		},
	}
}

// Load reads a YAML file and returns the configuration. An empty path
// returns the built-in defaults. Fields absent from the file keep their
// default values (the file is unmarshalled over Default()), so an explicit
// "total_triggers: 0" is honored while an omitted field stays at 30.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// Basic validation
	switch cfg.GPIO.Backend {
	case "gpiocdev", "rpio", "mock":
	default:
		return nil, fmt.Errorf("gpio.backend must be gpiocdev, rpio or mock, got %q", cfg.GPIO.Backend)
	}
	if cfg.GPIO.Chip == "" {
		return nil, fmt.Errorf("gpio.chip is required")
	}
	if cfg.GPIO.Line < 0 {
		return nil, fmt.Errorf("gpio.line must be >= 0, got %d", cfg.GPIO.Line)
	}
	if cfg.GPIO.Consumer == "" {
		cfg.GPIO.Consumer = "shutterpulse"
	}
	if cfg.Pulse.PressMs <= 0 {
		return nil, fmt.Errorf("pulse.press_ms must be > 0, got %d", cfg.Pulse.PressMs)
	}
	if cfg.Pulse.CycleDelayMs < 0 {
		return nil, fmt.Errorf("pulse.cycle_delay_ms must be >= 0, got %d", cfg.Pulse.CycleDelayMs)
	}
	if cfg.Pulse.TotalTriggers < 0 {
		return nil, fmt.Errorf("pulse.total_triggers must be >= 0, got %d", cfg.Pulse.TotalTriggers)
	}
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = "."
	}
	if cfg.Log.Prefix == "" {
		cfg.Log.Prefix = "shutterpulse_"
	}
	if cfg.Defaults.DebugLevel < 0 || cfg.Defaults.DebugLevel > 4 {
		return nil, fmt.Errorf("debug_level must be between 0 and 4, got %d", cfg.Defaults.DebugLevel)
	}

	return cfg, nil
}

// PressDuration returns the shutter hold duration.
func (c *Config) PressDuration() time.Duration {
	return time.Duration(c.Pulse.PressMs) * time.Millisecond
}

// CycleDelay returns the wait after each release.
func (c *Config) CycleDelay() time.Duration {
	return time.Duration(c.Pulse.CycleDelayMs) * time.Millisecond
}
