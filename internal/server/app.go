// Package server initializes and runs the application server: configuration
// validation, database and object storage clients, and the HTTP endpoint
// with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/r2vault/internal/logging"
	"github.com/dmitrijs2005/r2vault/internal/server/config"
	"github.com/dmitrijs2005/r2vault/internal/server/httpapi"
	"github.com/dmitrijs2005/r2vault/internal/server/migrations"
	"github.com/dmitrijs2005/r2vault/internal/server/storage"
	"github.com/dmitrijs2005/r2vault/internal/server/users"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	// A server without a signing secret must not come up at all.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewDefault()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := migrations.Run(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := storage.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	userService := users.NewService(users.NewPostgresRepository(db), cfg)

	httpServer := httpapi.NewServer(cfg.EndpointAddr, logger, userService, store, cfg.SecretKey)

	return &App{config: cfg, logger: logger, db: db, httpServer: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
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
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
