// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package backend is the HTTP client for the third-party labeling backend.

# Surface

	GET  /api/projects/{id}/tasks/      → ListTasks
	POST /api/tasks/{id}/annotations/   → SubmitAnnotation
	PATCH /api/tasks/{id}/              → UpdateTaskData (maintenance only)

Every request authenticates with "Authorization: Token {token}", where the
token comes from the injected TokenProvider on each call.

# Reads

ListTasks accepts both response shapes the backend has shipped (raw array
or {results: []}), bounds each attempt to five seconds, and retries twice
more with a one-second delay before surfacing the wrapped last error.
Retries are strictly sequential. A successful read normalizes the payload
and replaces the cache entry as a side channel; cache write failures are
logged, never returned.

# Writes

SubmitAnnotation is not retried - retry policy for writes belongs to the
caller. A non-2xx answer comes back as *SubmissionError with the HTTP
status and the backend's error text.
*/
package backend
