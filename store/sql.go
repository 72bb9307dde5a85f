// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/taskmint/taskmint/models"
)

// SQLStore persists cache entries in sqlite or postgres through database/sql.
// The schema and queries are portable across both drivers.
type SQLStore struct {
	db *sql.DB

	// MaxPayloadBytes, when positive, caps the serialized size of a task
	// list. Saves beyond it fail with ErrCapacity, which triggers the
	// truncated retry.
	MaxPayloadBytes int
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// CreateSchema creates all tables needed for the cache.
// Safe to call multiple times - uses IF NOT EXISTS.
func (s *SQLStore) CreateSchema() error {
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}

	return nil
}

const schema = `
-- Cached task lists, one row per project type
CREATE TABLE IF NOT EXISTS task_cache (
    cache_key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    saved_at TIMESTAMP NOT NULL
);

-- Completion markers, one row per finished task
CREATE TABLE IF NOT EXISTS completed_task (
    task_id TEXT PRIMARY KEY,
    marker TEXT NOT NULL,
    completed_at TIMESTAMP NOT NULL
);

-- Per-task quality metrics for diagnostic views
CREATE TABLE IF NOT EXISTS task_metrics (
    task_id TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

func (s *SQLStore) SaveTasks(ctx context.Context, pt models.ProjectType, tasks []models.Task) error {
	err := s.putTasks(ctx, pt, tasks)
	if err == nil {
		return nil
	}
	if len(tasks) <= MaxCachedTasks {
		return err
	}

	slog.Warn("cache write failed, retrying truncated",
		"project_type", pt,
		"tasks", len(tasks),
		"error", err,
	)
	return s.putTasks(ctx, pt, tasks[:MaxCachedTasks])
}

func (s *SQLStore) putTasks(ctx context.Context, pt models.ProjectType, tasks []models.Task) error {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode task list: %w", err)
	}
	if s.MaxPayloadBytes > 0 && len(payload) > s.MaxPayloadBytes {
		return fmt.Errorf("%w: %d bytes", ErrCapacity, len(payload))
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO task_cache (cache_key, payload, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cache_key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`, pt.CacheKey(), string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write task cache: %w", err)
	}
	return nil
}

func (s *SQLStore) LoadTasks(ctx context.Context, pt models.ProjectType) ([]models.Task, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM task_cache WHERE cache_key = $1", pt.CacheKey(),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task cache: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(payload), &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode cached tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLStore) ClearTasks(ctx context.Context, pt models.ProjectType) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM task_cache WHERE cache_key = $1", pt.CacheKey())
	if err != nil {
		return fmt.Errorf("failed to clear task cache: %w", err)
	}
	return nil
}

func (s *SQLStore) MarkCompleted(ctx context.Context, taskID int64, marker string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO completed_task (task_id, marker, completed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (task_id) DO UPDATE SET marker = excluded.marker, completed_at = excluded.completed_at
	`, strconv.FormatInt(taskID, 10), marker, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record completion: %w", err)
	}
	return nil
}

func (s *SQLStore) CompletedTasks(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT task_id, marker FROM completed_task")
	if err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}
	defer rows.Close()

	completed := map[string]string{}
	for rows.Next() {
		var id, marker string
		if err := rows.Scan(&id, &marker); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completed[id] = marker
	}
	return completed, rows.Err()
}

func (s *SQLStore) SaveMetrics(ctx context.Context, taskID int64, m models.QualityMetrics) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO task_metrics (task_id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (task_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, strconv.FormatInt(taskID, 10), string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

func (s *SQLStore) Metrics(ctx context.Context) (map[string]models.QualityMetrics, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT task_id, payload FROM task_metrics")
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics: %w", err)
	}
	defer rows.Close()

	metrics := map[string]models.QualityMetrics{}
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan metrics: %w", err)
		}
		var m models.QualityMetrics
		if err := json.Unmarshal([]byte(payload), &m); err != nil {
			return nil, fmt.Errorf("failed to decode metrics for task %s: %w", id, err)
		}
		metrics[id] = m
	}
	return metrics, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
