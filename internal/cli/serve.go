package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve live cubie poses to an external renderer",
	Long: `Run the pose-stream server. A renderer fetches the static cube
description from /bootstrap, then connects to /ws to receive a pose frame
every tick and to send move commands:

  {"type":"move","axis":"z","sign":1,"direction":-1}

The engine runs at the configured tick rate; moves animate over the
configured turn duration and surplus requests follow the queue policy.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}

	eng := cubesim.NewEngine(cfg.EngineOptions()...)
	logger := log.New(os.Stderr, "cubesim: ", log.LstdFlags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(eng, cfg.TickRateHz, logger).Run(ctx, addr)
}
