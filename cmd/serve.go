package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"quotewiz/internal/llm"
	"quotewiz/internal/server"
	"quotewiz/internal/store"
)

var serveAddr string

// ServeCmd represents the serve command.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the wizard backend as an HTTP API",
	Long: `Expose the quote pipeline over HTTP for a web client.

Endpoints:
  POST /api/quote   run the budget gate and generate a spec
  POST /api/assist  fetch advisory hints for one wizard step
  GET  /api/recent  list cached results
  GET  /health      liveness check

Set QUOTEWIZ_DISABLED to any value to reject generation with 503
without restarting the server.`,
	RunE: runServe,
}

func init() {
	addProviderFlags(ServeCmd)
	ServeCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}

func runServe(c *cobra.Command, args []string) error {
	st := store.DefaultStore()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	cfg, err := loadConfig(c, st)
	if err != nil {
		return err
	}

	// A missing credential does not stop the server; the provider
	// endpoints answer 500 until one is configured.
	var s *server.Server
	generator, assistant, err := buildServerGateways(cfg, logger)
	switch {
	case err == nil:
		s = server.New(generator, assistant, st, logger)
	case errors.Is(err, llm.ErrNoCredential):
		logger.Warn().Msg("no provider credential configured, generation endpoints will answer 500")
		s = server.New(nil, nil, st, logger)
	default:
		return err
	}

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", serveAddr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	return nil
}
