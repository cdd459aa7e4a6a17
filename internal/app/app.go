// Package app wires configuration, logging, the chosen store substrate, the
// catalog client, and the collection service together.
package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/anikeep/anikeep/internal/catalog"
	"github.com/anikeep/anikeep/internal/collection"
	"github.com/anikeep/anikeep/internal/config"
	"github.com/anikeep/anikeep/internal/database"
	"github.com/anikeep/anikeep/internal/domain"
	"github.com/anikeep/anikeep/internal/logger"
	"github.com/anikeep/anikeep/internal/store"
)

// App holds all initialized dependencies for one command invocation.
type App struct {
	Log     zerolog.Logger
	Config  *domain.Config
	Store   domain.EntryStore
	Catalog catalog.Service
	Service collection.Service

	closers []func() error
}

// NewApp builds the dependency graph from the loaded configuration. Exactly
// one substrate is constructed per instance.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	a := &App{
		Log:    log,
		Config: cfg,
	}

	switch cfg.Substrate {
	case domain.SubstrateLocal:
		boltStore, err := store.NewBoltStore(log, cfg.DBPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open local store")
		}
		a.Store = boltStore
		a.closers = append(a.closers, boltStore.Close)

	case domain.SubstrateRemote:
		a.Store = store.NewRemoteStore(log, cfg.RemoteURL)

	default:
		return nil, errors.Errorf("unknown substrate: %s", cfg.Substrate)
	}

	var cache catalog.Cache
	if cfg.CachePath != "" {
		db, err := database.NewDB(cfg.CachePath, log)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open catalog cache")
		}
		a.closers = append(a.closers, db.Close)
		cache = database.NewCatalogCacheRepo(log, db, time.Duration(cfg.CacheTTLHours)*time.Hour)
	}

	a.Catalog = catalog.NewService(log, cfg.CatalogURL, cache)
	a.Service = collection.NewService(log, a.Catalog, a.Store, cfg.TruncateImport)

	return a, nil
}

// Close releases the substrate and cache handles.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
