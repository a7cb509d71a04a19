// Command stmock serves an in-memory imitation of the SpaceTraders v2 API
// for local development and integration tests.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmerrifield20/spacetraders/internal/config"
	"github.com/jmerrifield20/spacetraders/internal/metrics"
	"github.com/jmerrifield20/spacetraders/internal/mockapi"
)

var cfgFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stmock",
	Short: "Serve an in-memory SpaceTraders v2 API",
	Long: `stmock serves a stateful imitation of the SpaceTraders v2 API for local
development. Point st at it with:

  ST_API_BASE_URL=http://localhost:8089/v2 st register BADGER`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck

		if err := run(logger, cfgFile); err != nil {
			logger.Error("stmock exited with error", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.spacetraders/config.yaml)")
}

func run(logger *zap.Logger, cfgFile string) error {
	// ── Configuration ────────────────────────────────────────────────────────
	v := config.New(cfgFile)
	found, err := config.Read(v)
	if err != nil {
		return err
	}
	if !found {
		logger.Warn("no config file found, using defaults and env vars")
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	if cfg.Mock.SigningKey == "" {
		logger.Warn("mock.signing_key not set; tokens will not survive a restart")
	}

	// ── Server ───────────────────────────────────────────────────────────────
	m := metrics.New()
	srv, err := mockapi.New(mockapi.Config{
		SigningKey:   []byte(cfg.Mock.SigningKey),
		CORSOrigins:  cfg.Mock.CORSOrigins,
		RateLimitRPS: cfg.Mock.RateLimitRPS,
		RateBurst:    cfg.Mock.RateBurst,
		Metrics:      m,
	}, logger)
	if err != nil {
		return fmt.Errorf("build mock server: %w", err)
	}
	defer srv.Close()

	httpSrv := &http.Server{
		Addr:              cfg.Mock.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("stmock listening",
			zap.String("addr", cfg.Mock.Addr),
			zap.String("version", mockapi.Version),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("shutting down stmock...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("stmock stopped")
	return nil
}
