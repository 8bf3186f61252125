package cmd

import (
	"fmt"

	"schema-engine/core/auth"
	"schema-engine/core/config"
	"schema-engine/core/database"
	"schema-engine/core/graph"
	"schema-engine/core/keylock"
	"schema-engine/core/logger"
	"schema-engine/core/metrics"
	"schema-engine/core/reconcile"
	"schema-engine/core/registry"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services holds the collaborators shared by every command.
type services struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	store    *graph.GormStore
	registry *registry.Registry
	engine   *reconcile.Engine
	metrics  *metrics.Metrics
	locks    *keylock.Locker
}

// bootstrap loads the configuration, connects and migrates the store and builds the engine.
func bootstrap() (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l = l.With(zap.String("driver", cfg.Database.Driver))

	store := graph.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	reg := registry.New(db)
	if err := reg.Migrate(); err != nil {
		return nil, err
	}

	m := metrics.New()
	engine, err := reconcile.New(reconcile.Deps{
		Store:      store,
		Sources:    reg,
		Authorizer: auth.NewAllowList(cfg.Auth),
		Logger:     l.Named("reconcile"),
		Recorder:   m,
	}, cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &services{
		cfg:      cfg,
		logger:   l,
		db:       db,
		store:    store,
		registry: reg,
		engine:   engine,
		metrics:  m,
		locks:    keylock.New(),
	}, nil
}

// source returns name, or the configured default source when name is empty.
func (r *services) source(name string) string {
	return r.cfg.Server.SourceOrDefault(name)
}
