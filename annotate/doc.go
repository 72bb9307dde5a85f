// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package annotate builds the project-type-specific result payload the
// backend expects for an annotation submission.
package annotate
