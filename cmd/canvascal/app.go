package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ericfisherdev/canvascal/internal/adapter/driven/backend"
	"github.com/ericfisherdev/canvascal/internal/adapter/driven/browser"
	sqliteadapter "github.com/ericfisherdev/canvascal/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/canvascal/internal/adapter/driving/http"
	"github.com/ericfisherdev/canvascal/internal/adapter/driving/terminal"
	webhandler "github.com/ericfisherdev/canvascal/internal/adapter/driving/web"
	"github.com/ericfisherdev/canvascal/internal/application"
	"github.com/ericfisherdev/canvascal/internal/config"
	"github.com/ericfisherdev/canvascal/internal/domain/port/driven"
)

// app is the composition root shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *sqliteadapter.DB
	backend *backend.Client

	calendar *application.CalendarService
	grades   *application.GradeService
	shim     *application.EventShim
	surface  *terminal.Surface
}

func newApp(ctx context.Context, in io.Reader, out io.Writer) (*app, error) {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Debug("config loaded",
		"server_url", cfg.ServerURL,
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"open_browser", cfg.OpenBrowser,
	)

	// 2. Open the assignment cache and run migrations on the writer connection.
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug("database ready", "path", db.Path())

	// 3. Wire driven adapters.
	client, err := backend.NewClient(cfg.ServerURL)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	store := sqliteadapter.NewAssignmentRepo(db)

	var opener driven.PageOpener
	if cfg.OpenBrowser {
		opener = browser.NewOpener(io.Discard)
	}

	// 4. Services and the event shim.
	loginSvc := application.NewLoginService(client, logger)
	refreshSvc := application.NewRefreshService(client, store, logger)
	calendarSvc := application.NewCalendarService(store, time.Local, cfg.PageURL())
	gradeSvc := application.NewGradeService(store)
	shim := application.NewEventShim(loginSvc, refreshSvc, calendarSvc, opener, logger)

	if n, err := calendarSvc.CachedCount(ctx); err != nil {
		logger.Warn("failed to count cached assignments", "error", err)
	} else {
		logger.Debug("assignment cache loaded", "assignments", n)
	}

	// 5. The surface must exist before the shim binds to it.
	surface := terminal.New(in, out, logger, terminal.DefaultElements()...)
	if err := shim.Start(surface); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		backend:  client,
		calendar: calendarSvc,
		grades:   gradeSvc,
		shim:     shim,
		surface:  surface,
	}, nil
}

// newServer builds the HTTP server for the web calendar and JSON API.
func (a *app) newServer() *http.Server {
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(a.calendar, a.grades, a.logger))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(a.calendar, a.logger))

	return &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           httphandler.ApplyMiddleware(mux, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// close waits for in-flight submissions, stops the surface reader and closes
// the database.
func (a *app) close() {
	a.shim.Wait()
	a.surface.Close()
	if err := a.db.Close(); err != nil {
		a.logger.Error("error closing database", "error", err)
	}
}
