// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import "fmt"

// SubmissionError is a non-2xx answer to an annotation write, carrying the
// HTTP status and whatever error text the backend sent.
type SubmissionError struct {
	StatusCode int
	Body       string
}

func (e *SubmissionError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("annotation rejected: status %d", e.StatusCode)
	}
	return fmt.Sprintf("annotation rejected: status %d: %s", e.StatusCode, e.Body)
}
