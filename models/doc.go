// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared across the client core.

# Project Types

The fixed set of labeling categories, each bound to one backend project
identifier and one cache-storage key:

	TextSentiment       = "TEXT_SENTIMENT"
	ImageClassification = "IMAGE_CLASSIFICATION"
	AudioClassification = "AUDIO_CLASSIFICATION"
	Survey              = "SURVEY"
	GeospatialLabeling  = "GEOSPATIAL_LABELING"

Both mappings are process-wide static configuration. Looking up an unknown
type yields ErrUnknownProjectType, which callers treat as a programming
error rather than a recoverable condition.

# Task Types

  - RawTask: a task as fetched, data kept as json.RawMessage
  - Task: the slim, normalized form that gets cached (id, created_at, data)
  - TaskData: the optional payload fields (text, image, audio, question,
    title, description, link, str, options, location_name, map_image)
  - Option: a selectable answer (id, text, value)

# Annotation Types

  - AnnotationResult: one result entry (from_name, to_name, type, value)
  - Annotation: submission body {task, result}
  - SubmitResponse: backend acknowledgement

# Metrics

QualityMetrics holds the per-task completionTime/accuracy/consistency
record persisted for diagnostic views.
*/
package models
