package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TurnDurationMs <= 0 {
		t.Error("turn duration should be positive")
	}
	if cfg.QueuePolicy != "drop" {
		t.Errorf("expected drop policy, got %s", cfg.QueuePolicy)
	}
	if cfg.TickRateHz <= 0 {
		t.Error("tick rate should be positive")
	}
	if len(cfg.EngineOptions()) == 0 {
		t.Error("expected engine options")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubesim.yaml")
	data := []byte("turn_duration_ms: 100\nqueue_policy: queue\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TurnDurationMs != 100 {
		t.Errorf("expected turn duration 100, got %d", cfg.TurnDurationMs)
	}
	if cfg.QueuePolicy != "queue" {
		t.Errorf("expected queue policy, got %s", cfg.QueuePolicy)
	}
	// Untouched fields keep their defaults.
	if cfg.ScrambleLen != DefaultScrambleLen {
		t.Errorf("expected default scramble length, got %d", cfg.ScrambleLen)
	}
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubesim.yaml")
	if err := os.WriteFile(path, []byte("queue_policy: maybe\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown queue policy")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubesim.yaml")
	cfg := Default()
	cfg.ScrambleLen = 30

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.ScrambleLen != 30 {
		t.Errorf("expected scramble length 30, got %d", loaded.ScrambleLen)
	}
}
