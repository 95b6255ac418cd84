// Package server initializes and runs the Retro Notes API server. It wires
// the storage handle, the auth and notes services and the HTTP endpoints,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/retronotes/retronotes/internal/logging"
	"github.com/retronotes/retronotes/internal/metrics"
	"github.com/retronotes/retronotes/internal/server/config"
	"github.com/retronotes/retronotes/internal/server/httpapi"
	"github.com/retronotes/retronotes/internal/server/notes"
	"github.com/retronotes/retronotes/internal/server/storage"
	"github.com/retronotes/retronotes/internal/server/users"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      *storage.Mongo
	httpServer *httpapi.Server
	metrics    *metrics.Metrics
}

// NewApp connects to the document store, bootstraps indexes and builds the
// service graph. The storage handle lives here and is passed down
// explicitly; nothing keeps global connection state.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := storage.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("index init error: %w", err)
	}

	us := users.NewService(users.NewMongoRepository(store), cfg)
	ns := notes.NewService(notes.NewMongoRepository(store))

	m := metrics.New()
	httpServer := httpapi.NewServer(cfg, logger, us, ns, m)

	return &App{
		config:     cfg,
		logger:     logger,
		store:      store,
		httpServer: httpServer,
		metrics:    m,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.metrics.Handler())

	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, "metrics server error", "error", err.Error())
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx)
	}()

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.store.Close(closeCtx); err != nil {
		app.logger.Error(ctx, "error closing storage", "error", err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
