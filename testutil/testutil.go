// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/taskmint/taskmint/models"
	"github.com/taskmint/taskmint/store"
)

// OpenTestStore creates a fresh sqlite-backed store in a temp directory.
func OpenTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	s := store.NewSQLStore(db)
	if err := s.CreateSchema(); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	t.Cleanup(func() { s.Close() })
	return s
}

// NewBackend starts a fake labeling backend. Task list reads return
// listPayload as-is (array or envelope); annotation writes are
// acknowledged with the task id echoed back.
func NewBackend(t *testing.T, listPayload any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects/{id}/tasks/", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, listPayload)
	})
	mux.HandleFunc("POST /api/tasks/{id}/annotations/", func(w http.ResponseWriter, r *http.Request) {
		taskID, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		WriteJSON(w, http.StatusCreated, models.SubmitResponse{ID: 1, Task: taskID})
	})
	mux.HandleFunc("PATCH /api/tasks/{id}/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// NewFailingBackend starts a fake backend that answers every request with
// the given status and body.
func NewFailingBackend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// WriteJSON encodes v as a JSON response
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RawTask builds a RawTask whose data object is the given JSON text.
func RawTask(t *testing.T, id int64, data string) models.RawTask {
	t.Helper()
	return models.RawTask{ID: id, Data: json.RawMessage(data)}
}

// AssertTaskIDs checks that tasks carry exactly the expected ids, in order.
func AssertTaskIDs(t *testing.T, tasks []models.Task, want ...int64) {
	t.Helper()
	if len(tasks) != len(want) {
		t.Fatalf("Expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Errorf("Task %d: expected id %d, got %d", i, id, tasks[i].ID)
		}
	}
}
