// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/taskmint/taskmint/annotate"
	"github.com/taskmint/taskmint/backend"
	"github.com/taskmint/taskmint/fallback"
	"github.com/taskmint/taskmint/models"
	"github.com/taskmint/taskmint/store"
	"github.com/taskmint/taskmint/validate"
)

// Service wires the client core together: fetch with fallback on the read
// side, validate-build-submit on the write side.
type Service struct {
	backend  *backend.Client
	store    store.Store
	resolver *fallback.Resolver
}

func New(client *backend.Client, st store.Store) *Service {
	return &Service{
		backend:  client,
		store:    st,
		resolver: fallback.NewResolver(st),
	}
}

// ValidationError is a submission blocked by the validation gate. The full
// report rides along so the UI can show every problem at once.
type ValidationError struct {
	Report validate.Report
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Report.Errors, "; ")
}

// GetTasks returns the task list for a project type. Transient backend
// faults never surface here: the resolver serves cache or bundled fixtures
// instead, so callers always receive a list (possibly empty). Only an
// unknown project type is an error.
func (s *Service) GetTasks(ctx context.Context, pt models.ProjectType) ([]models.Task, error) {
	if _, err := pt.ProjectID(); err != nil {
		return nil, err
	}

	// Surveys never touch the network
	if pt == models.Survey {
		return fallback.SurveyTasks(), nil
	}

	tasks, err := s.backend.ListTasks(ctx, pt)
	if err != nil {
		return s.resolver.Resolve(ctx, pt, err), nil
	}
	return tasks, nil
}

// SubmitChoice validates the task and selection, builds the project-type
// payload, and posts it. On success the task id is recorded as completed
// with an opaque marker.
func (s *Service) SubmitChoice(ctx context.Context, task models.Task, pt models.ProjectType, selected string) (*models.SubmitResponse, error) {
	report := validate.Task(&task, selected)
	s.logWarnings(task.ID, report)
	if !report.IsValid {
		return nil, &ValidationError{Report: report}
	}

	result := annotate.Build(pt, selected)

	report = validate.Submission(&task, result)
	if !report.IsValid {
		return nil, &ValidationError{Report: report}
	}

	ack, err := s.backend.SubmitAnnotation(ctx, task.ID, result)
	if err != nil {
		return nil, err
	}

	s.markCompleted(ctx, task.ID)
	return ack, nil
}

// SubmitSurvey posts a survey response. value is either a fully-formed
// result array (multi-question surveys) or anything else, which collapses
// to the synthetic completion entry.
func (s *Service) SubmitSurvey(ctx context.Context, taskID int64, value any) (*models.SubmitResponse, error) {
	result := annotate.Build(models.Survey, value)

	ack, err := s.backend.SubmitAnnotation(ctx, taskID, result)
	if err != nil {
		return nil, err
	}

	s.markCompleted(ctx, taskID)
	return ack, nil
}

// RecordMetrics persists a task's quality numbers for diagnostic views.
func (s *Service) RecordMetrics(ctx context.Context, taskID int64, m models.QualityMetrics) error {
	if s.store == nil {
		return nil
	}
	return s.store.SaveMetrics(ctx, taskID, m)
}

// CompletedTasks returns the completion markers recorded so far.
func (s *Service) CompletedTasks(ctx context.Context) (map[string]string, error) {
	if s.store == nil {
		return map[string]string{}, nil
	}
	return s.store.CompletedTasks(ctx)
}

func (s *Service) markCompleted(ctx context.Context, taskID int64) {
	if s.store == nil {
		return
	}
	// Marker content is opaque; a uuid keeps entries distinguishable in dumps
	if err := s.store.MarkCompleted(ctx, taskID, uuid.NewString()); err != nil {
		slog.Warn("failed to record completion marker", "task_id", taskID, "error", err)
	}
}

func (s *Service) logWarnings(taskID int64, report validate.Report) {
	for _, w := range report.Warnings {
		slog.Warn("task validation warning", "task_id", taskID, "warning", w)
	}
}
