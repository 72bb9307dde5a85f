// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/taskmint/taskmint/models"
	"github.com/taskmint/taskmint/normalize"
	"github.com/taskmint/taskmint/store"
)

// Reference retry behavior: three sequential attempts, five seconds each,
// one second between them.
const (
	DefaultMaxAttempts    = 3
	DefaultAttemptTimeout = 5 * time.Second
	DefaultRetryDelay     = 1 * time.Second
)

// TokenProvider supplies a fresh auth token per request. Injected so token
// rotation stays the credential owner's concern, not the client's.
type TokenProvider func() string

// StaticToken wraps a fixed token as a TokenProvider.
func StaticToken(token string) TokenProvider {
	return func() string { return token }
}

// Client talks to the labeling backend: list tasks for a project, post an
// annotation for a task. Successful reads write through to the cache as a
// side channel.
type Client struct {
	baseURL string
	token   TokenProvider
	http    *http.Client
	cache   store.Store

	// Retry knobs, preset to the defaults above. Tests shrink them.
	MaxAttempts    int
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
}

// NewClient builds a backend client. cache may be nil, in which case reads
// skip the write-through.
func NewClient(baseURL string, token TokenProvider, cache store.Store) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		token:          token,
		http:           &http.Client{},
		cache:          cache,
		MaxAttempts:    DefaultMaxAttempts,
		AttemptTimeout: DefaultAttemptTimeout,
		RetryDelay:     DefaultRetryDelay,
	}
}

// ListTasks fetches, normalizes and caches the task list for a project
// type. Transient faults are retried sequentially; the final error wraps
// the last attempt's failure so the resolver can take over.
func (c *Client) ListTasks(ctx context.Context, pt models.ProjectType) ([]models.Task, error) {
	projectID, err := pt.ProjectID()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/api/projects/%d/tasks/", c.baseURL, projectID)

	var lastErr error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		raw, err := c.fetchOnce(ctx, url)
		if err == nil {
			tasks := normalize.Tasks(raw, pt)
			if c.cache != nil {
				// Side channel: a failed cache write never fails the read
				if err := c.cache.SaveTasks(ctx, pt, tasks); err != nil {
					slog.Warn("task cache write failed",
						"project_type", pt,
						"error", err,
					)
				}
			}
			slog.Info("tasks fetched",
				"project_type", pt,
				"count", len(tasks),
				"attempt", attempt,
			)
			return tasks, nil
		}

		lastErr = err
		slog.Warn("task fetch attempt failed",
			"project_type", pt,
			"attempt", attempt,
			"error", err,
		)

		if attempt < c.MaxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.RetryDelay):
			}
		}
	}

	return nil, fmt.Errorf("task fetch failed after %d attempts: %w", c.MaxAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]models.RawTask, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build task list request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("task list request returned %d: %s",
			resp.StatusCode, readErrorBody(resp.Body))
	}
	return decodeTaskList(resp.Body)
}

// decodeTaskList accepts both response shapes the backend has shipped: a
// raw JSON array, or an envelope object with a results array.
func decodeTaskList(r io.Reader) ([]models.RawTask, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read task list response: %w", err)
	}
	payload = bytes.TrimSpace(payload)

	if len(payload) > 0 && payload[0] == '[' {
		var tasks []models.RawTask
		if err := json.Unmarshal(payload, &tasks); err != nil {
			return nil, fmt.Errorf("failed to decode task list: %w", err)
		}
		return tasks, nil
	}

	var envelope struct {
		Results []models.RawTask `json:"results"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode task list envelope: %w", err)
	}
	return envelope.Results, nil
}

// SubmitAnnotation posts an annotation for a task. Not retried: submission
// retries are the caller's policy decision.
func (c *Client) SubmitAnnotation(ctx context.Context, taskID int64, result []models.AnnotationResult) (*models.SubmitResponse, error) {
	body, err := json.Marshal(models.Annotation{Task: taskID, Result: result})
	if err != nil {
		return nil, fmt.Errorf("failed to encode annotation: %w", err)
	}

	url := fmt.Sprintf("%s/api/tasks/%d/annotations/", c.baseURL, taskID)
	status, respBody, err := c.write(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, &SubmissionError{
			StatusCode: status,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	var ack models.SubmitResponse
	if err := json.Unmarshal(respBody, &ack); err != nil {
		return nil, fmt.Errorf("failed to decode submission response: %w", err)
	}

	slog.Info("annotation submitted", "task_id", taskID, "annotation_id", ack.ID)
	return &ack, nil
}

// UpdateTaskData overwrites a task's data object. Maintenance surface only;
// nothing on the runtime path calls it.
func (c *Client) UpdateTaskData(ctx context.Context, taskID int64, data models.TaskData) error {
	body, err := json.Marshal(struct {
		Data models.TaskData `json:"data"`
	}{Data: data})
	if err != nil {
		return fmt.Errorf("failed to encode task data: %w", err)
	}

	url := fmt.Sprintf("%s/api/tasks/%d/", c.baseURL, taskID)
	status, respBody, err := c.write(ctx, http.MethodPatch, url, body)
	if err != nil {
		return err
	}

	if status < 200 || status >= 300 {
		return &SubmissionError{
			StatusCode: status,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}
	return nil
}

// write runs one bounded authenticated request and drains the response
// inside the timeout window.
func (c *Client) write(ctx context.Context, method, url string, body []byte) (int, []byte, error) {
	writeCtx, cancel := context.WithTimeout(ctx, c.AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(writeCtx, method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Authorization", "Token "+c.token())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read %s response: %w", method, err)
	}
	return resp.StatusCode, respBody, nil
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, 4<<10))
	return strings.TrimSpace(string(body))
}
