// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the local cache behind the task client: last-known-good
task lists per project type, completion markers, and per-task quality
metrics.

# Contract

Store is a durable key-value abstraction with atomic per-key replace
semantics. Saves fully replace the prior value (no merge, no partial
update); loads return (nil, nil) when no entry exists, which is the normal
first-run state.

# Backends

Selected via DATABASE_TYPE:

  - sqlite (modernc.org/sqlite): default, a local file, no server needed
  - postgres (lib/pq): shares the SQLStore schema and queries
  - redis (go-redis): JSON values and hashes under "taskmint:" keys

# Capacity

A save that fails (or exceeds the configured payload byte limit) is retried
exactly once with the list truncated to MaxCachedTasks entries. Only a
failing retry surfaces the error.
*/
package store
