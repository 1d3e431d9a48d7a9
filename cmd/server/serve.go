package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"galeria/backend/internal/handler"
	transport "galeria/backend/internal/http"
	"galeria/backend/internal/logger"
	"galeria/backend/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides GALERIA_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := a.cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	router := transport.NewRouter(
		handler.NewArtworkHandler(a.artworks),
		handler.NewTranslateHandler(a.translations),
		handler.NewSystemHandler(a.translations, a.engine),
		transport.RouterOptions{
			StaticDir: a.cfg.StaticDir,
			RateLimit: a.cfg.RateLimit,
			RateBurst: a.cfg.RateBurst,
		},
	)

	sched := scheduler.New(a.artworks, a.cfg.WarmLanguages, a.cfg.WarmInterval)
	sched.Start()
	defer sched.Stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "main", "action", "serve", "resource", "http", "result", "ok", "addr", addr)
		errCh <- router.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "module", "main", "action", "shutdown", "resource", "http", "result", "ok")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}
