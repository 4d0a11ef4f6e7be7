package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/ledgerlens/internal/daemon"
)

var (
	flagServeAddr         string
	flagServeInterval     time.Duration
	flagServeEventsBuffer int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Watch the data path and serve reports over HTTP/SSE",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.Flags().DurationVar(&flagServeInterval, "interval", 0, "Polling interval (default from config)")
	serveCmd.Flags().IntVar(&flagServeEventsBuffer, "events-buffer", 200, "Max in-memory events retained")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	path := appCfg.General.DataPath
	if path == "" {
		return errors.New("no data path: pass --data or set it with `ledgerlens setup`")
	}
	opts, err := analysisOptions()
	if err != nil {
		return err
	}

	addr := appCfg.Server.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}
	interval := time.Duration(appCfg.Server.IntervalSec) * time.Second
	if flagServeInterval > 0 {
		interval = flagServeInterval
	}

	svc := daemon.New(daemon.Config{
		DataPath:     path,
		Options:      opts,
		Interval:     interval,
		Addr:         addr,
		EventsBuffer: flagServeEventsBuffer,
	})

	fmt.Printf("  ledgerlens listening on http://%s\n", addr)
	fmt.Printf("  Polling every %s from %s\n", interval, path)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
