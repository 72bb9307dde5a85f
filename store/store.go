// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/taskmint/taskmint/cliparse"
	"github.com/taskmint/taskmint/models"
)

// MaxCachedTasks caps the task list on the degraded retry after a
// capacity failure.
const MaxCachedTasks = 20

// ErrCapacity indicates a payload the storage medium cannot hold.
var ErrCapacity = errors.New("payload exceeds storage capacity")

// Store is the durable key-value persistence behind the task cache,
// completion markers and quality metrics. Any medium with atomic per-key
// replace semantics satisfies it.
type Store interface {
	// SaveTasks fully replaces the cached task list for a project type.
	// On a capacity failure it retries once with the list truncated to
	// MaxCachedTasks entries before surfacing the error.
	SaveTasks(ctx context.Context, pt models.ProjectType, tasks []models.Task) error

	// LoadTasks returns the cached list, or (nil, nil) when no entry
	// exists yet. First run is not a fault.
	LoadTasks(ctx context.Context, pt models.ProjectType) ([]models.Task, error)

	// ClearTasks removes the cached list for a project type.
	ClearTasks(ctx context.Context, pt models.ProjectType) error

	// MarkCompleted records an opaque completion marker for a task id.
	MarkCompleted(ctx context.Context, taskID int64, marker string) error

	// CompletedTasks returns all completion markers keyed by task id string.
	CompletedTasks(ctx context.Context) (map[string]string, error)

	// SaveMetrics replaces the quality-metrics record for a task.
	SaveMetrics(ctx context.Context, taskID int64, m models.QualityMetrics) error

	// Metrics returns all quality-metrics records keyed by task id string.
	Metrics(ctx context.Context) (map[string]models.QualityMetrics, error)

	Close() error
}

// Open builds the Store selected by the configuration.
func Open(cfg cliparse.Config) (Store, error) {
	switch cfg.DatabaseType {
	case "sqlite":
		db, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite cache: %w", err)
		}
		return newSQLStore(db)
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres cache: %w", err)
		}
		return newSQLStore(db)
	case "redis":
		return NewRedisStore(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

func newSQLStore(db *sql.DB) (*SQLStore, error) {
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache database ping failed: %w", err)
	}
	s := NewSQLStore(db)
	if err := s.CreateSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
