package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/fintrail/fintrail/internal/classify"
	"github.com/fintrail/fintrail/internal/config"
	"github.com/fintrail/fintrail/internal/engine"
	"github.com/fintrail/fintrail/internal/extract"
	"github.com/fintrail/fintrail/internal/normalize"
	"github.com/fintrail/fintrail/internal/signature"
	"github.com/fintrail/fintrail/internal/storage"
)

// initStorage opens the configured database, runs migrations, and seeds the
// category catalog on first use.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := store.SeedDefaults(ctx, classify.DefaultCategories(), classify.DefaultRules()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to seed category catalog: %w", err)
	}

	return store, nil
}

// buildEngine wires the pipeline components. The storage layer serves as
// both fingerprint registry and category catalog.
func buildEngine(ctx context.Context, store *storage.SQLiteStorage) (*engine.Engine, error) {
	rules, err := store.GetCategoryRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}

	cfg := engine.DefaultConfig()
	if currency := viper.GetString("engine.currency"); currency != "" {
		cfg.Currency = currency
	}
	if threshold := viper.GetFloat64("engine.confidence_threshold"); threshold > 0 {
		cfg.ConfidenceThreshold = threshold
	}

	return engine.NewWithConfig(
		normalize.New(normalize.DefaultConfig()),
		signature.NewMatcher(signature.DefaultRules()),
		extract.New(),
		classify.New(rules),
		store,
		cfg,
	), nil
}
