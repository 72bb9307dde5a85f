// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service coordinates the client core for callers (the mobile UI and
the CLI).

# Read path

	caller → backend fetch (bounded retries) → normalized tasks, cached
	       → on exhaustion: resolver (cache, then bundled fixtures)

GetTasks fails only for an unknown project type. SURVEY is served from the
bundled static set and never fetches.

# Write path

	caller → validate task/selection → build result → validate submission
	       → POST annotation → record completion marker

Validation failures come back as *ValidationError carrying the full
report; soft warnings are logged and do not block. Completion markers and
quality metrics feed diagnostic views only.
*/
package service
