// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package normalize maps heterogeneous upstream task payloads into the
// single slim shape the cache holds. Projection is idempotent: normalizing
// an already-slim task yields the same record.
package normalize
