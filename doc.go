// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Taskmint client core.

Taskmint is a "complete tasks, earn crypto" app; this module is its
task-retrieval-and-submission core: a client for the third-party labeling
backend plus the local cache and fallback layers that keep the task list
available offline. The CLI exercises the same paths the mobile UI calls.

# Running

The client requires environment variables or CLI flags for configuration:

	BACKEND_URL=https://label.example.com API_TOKEN=... taskmint fetch TEXT_SENTIMENT

Or with flags:

	taskmint fetch TEXT_SENTIMENT -b https://label.example.com -k <token>

# Configuration

Required settings:

  - BACKEND_URL (-b): labeling backend base URL
  - API_TOKEN (-k): backend auth token

Optional settings:

  - DATABASE_URL (-d): cache database URL or path (default: taskmint.db)
  - DATABASE_TYPE (-t): sqlite, postgres or redis (default: sqlite)

# Architecture

The core uses small packages with dependency injection:

  - backend: HTTP client for the labeling backend (list, submit, patch)
  - store: durable cache (sqlite, postgres or redis backends)
  - normalize: raw payload → slim cached task
  - annotate: project-type-specific submission payloads
  - validate: pre-render and pre-submission checks
  - fallback: cache-then-fixtures resolution when the backend is down
  - service: the coordinator the UI and CLI call
  - models: shared domain types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
