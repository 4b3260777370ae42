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

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Segment Editor API server with the configured settings.

The server will listen for HTTP requests and WebSocket connections,
serving segment timelines, gesture replay, live editing and drafts.

Example:
  segment-editor serve
  segment-editor serve --port 9090
  segment-editor serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load config (lazy loading - only when serve command is run)
	if err := loadConfig(cmd); err != nil {
		return err
	}

	// Flags override config values
	if serverHost != "" {
		appConfig.Server.Host = serverHost
	}
	if serverPort != 0 {
		appConfig.Server.Port = serverPort
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := openApplication(ctx, appConfig)
	if err != nil {
		return err
	}
	defer app.Close()

	srv, err := app.server()
	if err != nil {
		return err
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	app.log.Info("server is ready to handle requests", zap.String("addr", srv.Addr()))

	// Wait for interrupt signal, server error or cancellation
	var runErr error
	select {
	case <-stop:
		app.log.Info("shutting down server")
	case <-ctx.Done():
		app.log.Info("context cancelled, shutting down server")
	case runErr = <-serverErr:
		app.log.Error("server failed", zap.Error(runErr))
	}

	shutdownTimeout := appConfig.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.log.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	app.log.Info("server gracefully stopped")
	return runErr
}
