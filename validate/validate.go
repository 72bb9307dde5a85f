// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"fmt"
	"strings"

	"github.com/taskmint/taskmint/models"
)

// MinTextLength is the threshold below which text content draws a warning.
const MinTextLength = 10

// Report is the outcome of a validation pass. Errors block submission;
// warnings are informational and never block.
type Report struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// Task checks a task and the user's selection before they reach the UI or
// the network. Pure and synchronous: no I/O, no side effects.
func Task(task *models.Task, selected string) Report {
	var r Report

	if task == nil {
		r.Errors = append(r.Errors, "task is missing")
		return r
	}
	if task.ID == 0 {
		r.Errors = append(r.Errors, "task id is missing")
	}
	if task.Data.Empty() {
		r.Errors = append(r.Errors, "task data is missing")
	}
	if selected == "" {
		r.Errors = append(r.Errors, "no option selected")
	}

	r.Warnings = dataWarnings(task.Data)
	r.IsValid = len(r.Errors) == 0
	return r
}

// Submission checks a built annotation against its task before the network
// write. The selected choices must come from the task's declared options.
func Submission(task *models.Task, result []models.AnnotationResult) Report {
	var r Report

	if task == nil {
		r.Errors = append(r.Errors, "task is missing")
		return r
	}
	if len(result) == 0 {
		r.Errors = append(r.Errors, "result is missing")
	}

	declared := task.Data.OptionValues()
	for i, entry := range result {
		if entry.FromName == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("result[%d] is missing from_name", i))
		}
		if entry.ToName == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("result[%d] is missing to_name", i))
		}
		if len(entry.Value.Choices) == 0 {
			r.Errors = append(r.Errors, fmt.Sprintf("result[%d] has no choices", i))
			continue
		}
		if len(declared) == 0 {
			continue
		}
		for _, choice := range entry.Value.Choices {
			if !contains(declared, choice) {
				r.Errors = append(r.Errors,
					fmt.Sprintf("choice %q is not among the task's options", choice))
			}
		}
	}

	r.Warnings = dataWarnings(task.Data)
	r.IsValid = len(r.Errors) == 0
	return r
}

// dataWarnings flags content that looks off but should not block anyone.
func dataWarnings(d models.TaskData) []string {
	var warnings []string
	if d.Audio != "" && !strings.Contains(d.Audio, "://") {
		warnings = append(warnings, "audio reference has no URL scheme")
	}
	if d.Image != "" && !strings.Contains(d.Image, "://") {
		warnings = append(warnings, "image reference has no URL scheme")
	}
	if d.Text != "" && len(d.Text) < MinTextLength {
		warnings = append(warnings, fmt.Sprintf("text content is shorter than %d characters", MinTextLength))
	}
	return warnings
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
