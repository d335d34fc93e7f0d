// Package server initializes and runs the application server. It opens the
// database, applies migrations, wires services and starts the HTTP API with
// graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"fitprogress/internal/logging"
	"fitprogress/internal/server/blob"
	"fitprogress/internal/server/config"
	"fitprogress/internal/server/httpapi"
	"fitprogress/internal/server/repositories/repomanager"
	"fitprogress/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	handlers *httpapi.Handlers
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return nil, fmt.Errorf("repository init error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store := blob.NewStore(cfg)

	us := services.NewUserService(db, rm, cfg)
	ms := services.NewMeasurementService(db, rm)
	ps := services.NewPhotoService(db, rm, store)

	handlers := httpapi.NewHandlers(us, ms, ps, cfg.MaxUploadBytes)

	return &App{config: cfg, logger: logger, db: db, handlers: handlers}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := httpapi.NewRouter(app.handlers, app.config, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, router)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
