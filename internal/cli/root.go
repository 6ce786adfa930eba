// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "Interactive Rubik's Cube simulator",
	Long: `cubesim - an interactive 3D Rubik's Cube simulator.

Play in the terminal with animated face turns, apply move sequences from
standard notation, record and replay sessions, or serve live cubie poses
to an external 3D renderer over websockets.

Face turns use a fixed right-hand-rule convention about each face's
outward normal, independent of how the cube is being viewed.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.cubesim/cubesim.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesim/cubesim.db)")
}

// loadConfig reads the config file from the flag or default location,
// falling back to defaults when no file exists.
func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.Default(), nil
		}
		path = home + "/.cubesim/cubesim.yaml"
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}
