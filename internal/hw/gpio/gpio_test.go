package gpio

import (
	"testing"
)

func TestNewDriver_Mock(t *testing.T) {
	d, err := NewDriver(BackendMock)
	if err != nil {
		t.Fatalf("NewDriver(mock): %v", err)
	}
	if _, ok := d.(*MockDriver); !ok {
		t.Errorf("expected *MockDriver, got %T", d)
	}
}

func TestNewDriver_UnknownBackend(t *testing.T) {
	_, err := NewDriver("sysfs")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestMockLine_TracksLevel(t *testing.T) {
	d := &MockDriver{}
	l, err := d.RequestOutput("gpiochip4", 12, "test")
	if err != nil {
		t.Fatalf("RequestOutput: %v", err)
	}

	ml := l.(*MockLine)
	if ml.Level() != Low {
		t.Error("mock line should start Low")
	}

	if err := l.Set(High); err != nil {
		t.Fatalf("Set(High): %v", err)
	}
	if ml.Level() != High {
		t.Error("mock line should be High after Set(High)")
	}

	if err := l.Set(Low); err != nil {
		t.Fatalf("Set(Low): %v", err)
	}
	if ml.Level() != Low {
		t.Error("mock line should be Low after Set(Low)")
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if !ml.Released() {
		t.Error("mock line should report released")
	}
}
