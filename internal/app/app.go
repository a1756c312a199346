// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the composition root shared by the server binary and the
// favctl admin tool. It opens the database, applies migrations and builds
// the favorites source, the sync lock, the metrics and the services.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fave-tweets/internal/adapter"
	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/lock"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/metrics"
	"github.com/MKhiriev/fave-tweets/internal/service"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/internal/workers"
	"github.com/MKhiriev/fave-tweets/models"
)

type App struct {
	Config   *config.StructuredConfig
	DB       *store.DB
	Metrics  *metrics.Metrics
	Services *service.Services

	closers []func() error
	logger  *logger.Logger
}

// Options tune what NewApp builds.
type Options struct {
	// BuildInfo is reported by the version endpoint and command.
	BuildInfo models.AppBuildInfo

	// SkipMigrations leaves the schema untouched.
	SkipMigrations bool

	// Source replaces the HTTP favorites client, mainly for tests.
	Source adapter.FavoritesSource
}

// NewApp wires every dependency of the services. On error everything opened
// so far is closed again.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, opts Options, log *logger.Logger) (_ *App, err error) {
	a := &App{Config: cfg, Metrics: metrics.New(), logger: log}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.DB, err = store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.closers = append(a.closers, a.DB.Close)

	if !opts.SkipMigrations {
		if err = a.DB.Migrate(); err != nil {
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
	}

	source := opts.Source
	if source == nil {
		source, err = adapter.NewHTTPFavoritesSource(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create favorites source: %w", err)
		}
	}

	locker, closeLocker, err := lock.New(ctx, cfg.Lock, log)
	if err != nil {
		return nil, fmt.Errorf("create sync lock: %w", err)
	}
	a.closers = append(a.closers, closeLocker)

	a.Services, err = service.NewServices(service.Dependencies{
		Storages:  store.NewStorages(a.DB, log),
		Source:    source,
		Locker:    locker,
		Observer:  a.Metrics,
		BuildInfo: opts.BuildInfo,
	}, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	return a, nil
}

// Workers returns the background workers enabled by the configuration.
func (a *App) Workers() *workers.Workers {
	return workers.NewWorkers(
		workers.NewResyncWorker(a.Services.UserService, a.Services.SyncService, a.Config.Workers.ResyncInterval, a.logger),
	)
}

// Close releases the lock client and the database in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	if err := errors.Join(errs...); err != nil {
		a.logger.Err(err).Msg("closing application resources")
		return err
	}
	return nil
}
