// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/taskmint/taskmint/models"
)

const (
	redisKeyPrefix   = "taskmint:"
	redisCompleted   = redisKeyPrefix + "completed_tasks"
	redisTaskMetrics = redisKeyPrefix + "task_metrics"
)

// RedisStore persists cache entries in redis. Task lists are JSON values
// under per-project-type keys; completions and metrics are hashes keyed by
// task id.
type RedisStore struct {
	rdb *redis.Client

	// MaxPayloadBytes, when positive, caps the serialized size of a task
	// list. Saves beyond it fail with ErrCapacity, which triggers the
	// truncated retry.
	MaxPayloadBytes int
}

// NewRedisStore connects to redis at addr ("host:port" or a redis:// URL)
// and verifies the connection.
func NewRedisStore(addr string) (*RedisStore, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		var err error
		opts, err = redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
	} else {
		opts = &redis.Options{Addr: addr}
	}

	rdb := redis.NewClient(opts)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) SaveTasks(ctx context.Context, pt models.ProjectType, tasks []models.Task) error {
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

func (s *RedisStore) putTasks(ctx context.Context, pt models.ProjectType, tasks []models.Task) error {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode task list: %w", err)
	}
	if s.MaxPayloadBytes > 0 && len(payload) > s.MaxPayloadBytes {
		return fmt.Errorf("%w: %d bytes", ErrCapacity, len(payload))
	}

	if err := s.rdb.Set(ctx, redisKeyPrefix+pt.CacheKey(), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write task cache: %w", err)
	}
	return nil
}

func (s *RedisStore) LoadTasks(ctx context.Context, pt models.ProjectType) ([]models.Task, error) {
	payload, err := s.rdb.Get(ctx, redisKeyPrefix+pt.CacheKey()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read task cache: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(payload, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode cached tasks: %w", err)
	}
	return tasks, nil
}

func (s *RedisStore) ClearTasks(ctx context.Context, pt models.ProjectType) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+pt.CacheKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear task cache: %w", err)
	}
	return nil
}

func (s *RedisStore) MarkCompleted(ctx context.Context, taskID int64, marker string) error {
	if err := s.rdb.HSet(ctx, redisCompleted, strconv.FormatInt(taskID, 10), marker).Err(); err != nil {
		return fmt.Errorf("failed to record completion: %w", err)
	}
	return nil
}

func (s *RedisStore) CompletedTasks(ctx context.Context) (map[string]string, error) {
	completed, err := s.rdb.HGetAll(ctx, redisCompleted).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}
	return completed, nil
}

func (s *RedisStore) SaveMetrics(ctx context.Context, taskID int64, m models.QualityMetrics) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}
	if err := s.rdb.HSet(ctx, redisTaskMetrics, strconv.FormatInt(taskID, 10), payload).Err(); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

func (s *RedisStore) Metrics(ctx context.Context) (map[string]models.QualityMetrics, error) {
	raw, err := s.rdb.HGetAll(ctx, redisTaskMetrics).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics: %w", err)
	}

	metrics := make(map[string]models.QualityMetrics, len(raw))
	for id, payload := range raw {
		var m models.QualityMetrics
		if err := json.Unmarshal([]byte(payload), &m); err != nil {
			return nil, fmt.Errorf("failed to decode metrics for task %s: %w", id, err)
		}
		metrics[id] = m
	}
	return metrics, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
