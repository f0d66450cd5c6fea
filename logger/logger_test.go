package logger

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output stdout, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	cfg := Config{Level: "debug", Format: "json", Output: "stderr"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestConfig_Validate_BadLevel(t *testing.T) {
	cfg := Config{Level: "loud", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestConfig_Validate_BadFormat(t *testing.T) {
	cfg := Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	log := New(&Config{Level: "nonsense", Format: "json", Output: "stdout"}, "test")
	if log == nil {
		t.Fatal("expected logger")
	}
}

func TestNop_DiscardsWithoutPanic(t *testing.T) {
	log := Nop()
	log.Info("dropped")
	log.Error("dropped", Fields("k", "v"))
}

func TestWithComponent(t *testing.T) {
	log := NewDefault("a").WithComponent("b")
	if log.component != "b" {
		t.Errorf("expected component b, got %s", log.component)
	}
}

func TestFields_PairsAndOddInput(t *testing.T) {
	m := Fields("a", 1, "b", 2)
	if m["a"] != 1 || m["b"] != 2 {
		t.Errorf("got %v", m)
	}
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key dropped, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("collect", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("got %v", m[FieldDuration])
	}
	if m[FieldOperation] != "collect" {
		t.Errorf("got %v", m[FieldOperation])
	}
}

func TestGetGlobalLogger_LazyDefault(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected lazily created global logger")
	}
}
