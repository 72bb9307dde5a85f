// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fallback

import (
	"context"
	"log/slog"

	"github.com/taskmint/taskmint/models"
	"github.com/taskmint/taskmint/store"
)

// Resolution states, logged per transition
const (
	StateFetching       = "fetching"
	StateFallingBack    = "falling_back"
	StateStaticFallback = "static_fallback"
	StateDone           = "done"
)

// Resolver decides what a caller gets once remote fetching has exhausted
// its retries: the cached last-known-good list first, the bundled fixture
// set second. Resolution never fails; a caller always receives a task list.
type Resolver struct {
	store store.Store
}

func NewResolver(st store.Store) *Resolver {
	return &Resolver{store: st}
}

// Resolve serves the best available task list for a project type after a
// failed fetch. lastErr is the fetch error being recovered from.
func (r *Resolver) Resolve(ctx context.Context, pt models.ProjectType, lastErr error) []models.Task {
	slog.Warn("task fetch exhausted, falling back",
		"project_type", pt,
		"state", StateFallingBack,
		"error", lastErr,
	)

	if r.store != nil {
		cached, err := r.store.LoadTasks(ctx, pt)
		if err != nil {
			slog.Warn("cache read failed during fallback",
				"project_type", pt,
				"error", err,
			)
		}
		if len(cached) > 0 {
			slog.Info("serving cached tasks",
				"project_type", pt,
				"state", StateDone,
				"count", len(cached),
			)
			return cached
		}
	}

	tasks := StaticTasks(pt)
	slog.Info("serving bundled tasks",
		"project_type", pt,
		"state", StateStaticFallback,
		"count", len(tasks),
	)
	return tasks
}
