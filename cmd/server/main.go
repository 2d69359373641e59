/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the leave dashboard server. Handles configuration,
  dependency wiring, and graceful shutdown. All state is process-local and
  seeded from fixed sample data at startup; there is no persistence.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Build the notification log, mock calendar client, and seeded store
  3. Create API handler and router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port          HTTP server port (default: 8080)
  -submit-delay  Artificial submission latency (default: 500ms)
  -gcal-latency  Simulated calendar round trip (default: 1s)
  -dev-log       Human-readable log output instead of JSON

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - leave/seed.go: Startup data
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/warp/leave-engine/api"
	"github.com/warp/leave-engine/gcal"
	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/notify"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	submitDelay := flag.Duration("submit-delay", 500*time.Millisecond, "artificial submission latency")
	gcalLatency := flag.Duration("gcal-latency", time.Second, "simulated calendar round trip")
	devLog := flag.Bool("dev-log", false, "human-readable log output")
	flag.Parse()

	// Logger
	logger, err := newLogger(*devLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Collaborators
	activity := notify.NewLog()
	calendar := gcal.NewMock(logger)
	calendar.Latency = *gcalLatency

	// Seeded store
	store := leave.NewSeededStore(leave.Config{
		Sink:        activity,
		Calendar:    calendar,
		SubmitDelay: *submitDelay,
		Logger:      logger,
	})

	// Handler and router
	handler := api.NewHandler(store, calendar, activity, logger)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting",
			zap.String("addr", fmt.Sprintf("http://localhost:%d", *port)),
			zap.Int("employees", len(store.Employees())))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
