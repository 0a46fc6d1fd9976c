package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-preventive-care/internal/adapters/catalog/filesource"
	pg "pet-preventive-care/internal/adapters/storage/postgres"
	"pet-preventive-care/internal/platform/config"
	"pet-preventive-care/internal/platform/logger"
	"pet-preventive-care/internal/router"
)

// @title Pet Preventive Care API
// @version 1.0
// @description Calendario de vacunas y medicaciones preventivas por animal.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	// Sin catálogo no se aceptan requests: error fatal de arranque.
	catalog, err := filesource.Load(cfg.CatalogPath)
	if err != nil {
		log.Error("catalog load failed", map[string]any{"err": err, "path": cfg.CatalogPath})
		os.Exit(1)
	}

	opts := router.Options{Catalog: catalog, Logger: log, Config: cfg}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err})
			os.Exit(1)
		}
		defer db.Close()

		if err := pg.EnsureSchema(context.Background(), db); err != nil {
			log.Error("postgres schema failed", map[string]any{"err": err})
			os.Exit(1)
		}
		opts.DB = db
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		log.Error("router init failed", map[string]any{"err": err})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{
		"addr":     cfg.Addr(),
		"postgres": opts.DB != nil,
		"species":  len(catalog),
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
