// Package config loads cubesim application settings from a YAML file.
// The library itself is configured through functional options; this package
// maps a user-editable file onto those options for the CLI and server.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesim"
)

const (
	DefaultTurnMs      = 250
	DefaultPauseMs     = 0
	DefaultScrambleLen = 25
	DefaultListenAddr  = "localhost:8473"
	DefaultTickRateHz  = 60
	DefaultQueuePolicy = "drop"
)

// Config holds every tunable the cubesim applications expose.
type Config struct {
	// Engine
	TurnDurationMs int    `yaml:"turn_duration_ms"`
	MovePauseMs    int    `yaml:"move_pause_ms"`
	QueuePolicy    string `yaml:"queue_policy"` // "drop" or "queue"
	ScrambleLen    int    `yaml:"scramble_len"`
	Seed           int64  `yaml:"seed"` // 0 means time-seeded

	// Pose server
	ListenAddr string `yaml:"listen_addr"`
	TickRateHz int    `yaml:"tick_rate_hz"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TurnDurationMs: DefaultTurnMs,
		MovePauseMs:    DefaultPauseMs,
		QueuePolicy:    DefaultQueuePolicy,
		ScrambleLen:    DefaultScrambleLen,
		ListenAddr:     DefaultListenAddr,
		TickRateHz:     DefaultTickRateHz,
	}
}

// Load reads a YAML config file, filling unset fields from defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) validate() error {
	switch c.QueuePolicy {
	case "drop", "queue":
	default:
		return fmt.Errorf("config: queue_policy must be \"drop\" or \"queue\", got %q", c.QueuePolicy)
	}
	if c.TickRateHz <= 0 {
		return fmt.Errorf("config: tick_rate_hz must be positive, got %d", c.TickRateHz)
	}
	return nil
}

// EngineOptions converts the configuration into cubesim engine options.
func (c *Config) EngineOptions() []cubesim.Option {
	opts := []cubesim.Option{
		cubesim.WithTurnDuration(time.Duration(c.TurnDurationMs) * time.Millisecond),
		cubesim.WithMovePause(time.Duration(c.MovePauseMs) * time.Millisecond),
	}
	if c.QueuePolicy == "queue" {
		opts = append(opts, cubesim.WithQueuePolicy(cubesim.QueueMoves))
	}
	return opts
}
