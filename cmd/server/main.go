package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"galeria/backend/internal/config"
	"galeria/backend/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "galeria",
	Short: "Artwork aggregation backend",
	Long: `Galeria merges the Art Institute of Chicago and Metropolitan Museum of Art
collections into one translated catalog served over a JSON API.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Version = config.AppVersion
	rootCmd.AddCommand(serveCmd, searchCmd, browseCmd, translateCmd)
}

// setup loads config, initializes logging to w and wires the services.
func setup(ctx context.Context, w io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.InitWithWriter(w, logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	return newApp(ctx, cfg)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
