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

	"courier/cmd"
	httpadapter "courier/internal/adapters/in/http"
	"courier/internal/generated/servers"
	"courier/internal/platform/otel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const (
	serviceName     = "courier"
	shutdownTimeout = 10 * time.Second
)

func main() {
	os.Exit(runMain())
}

// runMain returns the process exit code. Deferred cleanup, the log file
// included, has finished by the time it returns.
func runMain() int {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Errorf("Error loading config: %v", err)
		return 1
	}

	logger, logCloser := cmd.NewLogger(configs)
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logger); err != nil {
		logger.Error("Courier service stopped with error", "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	shutdownTracing, err := otel.Setup(ctx, serviceName, configs.OtelEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	store, closeStore, err := cmd.OpenRecordStore(ctx, configs)
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}
	defer closeStore()

	app := cmd.NewCompositionRoot(configs, store, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e, err := startWebServer(app, configs.HTTPPort, logger)
	if err != nil {
		return fmt.Errorf("start web server: %w", err)
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	servers.RegisterHandlers(e, app.CreateHTTPServer())
	if err := httpadapter.RegisterSwagger(e); err != nil {
		return nil, err
	}

	go func() {
		logger.Info("HTTP server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	return e, nil
}
