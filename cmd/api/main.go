package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-shelter/internal/adapters/notify"
	pg "pet-shelter/internal/adapters/storage/postgres"
	"pet-shelter/internal/platform/config"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/telemetry"
	"pet-shelter/internal/router"
)

// @title pet-shelter API
// @version 1.0
// @description Refugios, animales, adoptantes (con período de prueba) y voluntarios.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: cfg.AppName,
		Exporter:    cfg.TracingExporter,
		Endpoint:    cfg.TracingEndpoint,
	})
	if err != nil {
		return err
	}

	// Storage: Postgres si hay DSN, si no in-memory (modo dev)
	var repos router.Repos
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.DBMigrate {
			if err := pg.Migrate(db); err != nil {
				return err
			}
			log.Info("migrations applied", nil)
		}
		repos = router.NewRepos(db)
		log.Info("storage: postgres", nil)
	} else {
		repos = router.NewRepos(nil)
		log.Warn("storage: in-memory (DB_DSN not set)", nil)
	}

	gw, err := router.NewGateway(cfg, log, repos.Parents)
	if err != nil {
		return err
	}
	dispatcher := notify.NewDispatcher(gw, log, notify.Options{
		Workers:   cfg.NotifyWorkers,
		QueueSize: cfg.NotifyQueueSize,
		Timeout:   cfg.NotifyTimeout,
	})

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Repos:       &repos,
			Logger:      log,
			Notifier:    dispatcher,
			ServiceName: cfg.AppName,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", map[string]any{"error": err.Error()})
	}
	// después del server: ya no entran mensajes nuevos
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Warn("notification queue not drained", map[string]any{"error": err.Error()})
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown", map[string]any{"error": err.Error()})
	}
	return nil
}
