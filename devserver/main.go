package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Serve the auth modal wasm bundle for local development",
	Long: `devserver serves the compiled client (index.html, main.wasm, wasm_exec.js)
and routes /api either to a real auth API or to an in-memory stub.

Settings come from DEVSERVER_* environment variables; flags override them.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().String("addr", "", "listen address (DEVSERVER_ADDR)")
	rootCmd.Flags().String("static", "", "static directory (DEVSERVER_STATIC_DIR)")
	rootCmd.Flags().String("upstream", "", "auth API base URL to proxy /api to (DEVSERVER_API_UPSTREAM)")
	rootCmd.Flags().Bool("stub-auth", false, "answer /api/auth with an in-memory stub (DEVSERVER_STUB_AUTH)")
	rootCmd.Flags().String("log-level", "", "log level (DEVSERVER_LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func applyFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("static") {
		cfg.StaticDir, _ = flags.GetString("static")
	}
	if flags.Changed("upstream") {
		cfg.APIUpstream, _ = flags.GetString("upstream")
	}
	if flags.Changed("stub-auth") {
		cfg.StubAuth, _ = flags.GetBool("stub-auth")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	level, _ := cfg.Level()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	handler, err := NewRouter(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("devserver listening", "addr", cfg.Addr, "static", cfg.StaticDir, "upstream", cfg.APIUpstream, "stub_auth", cfg.StubAuth)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("devserver stopped")
	return nil
}
