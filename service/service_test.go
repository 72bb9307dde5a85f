package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/taskmint/taskmint/backend"
	"github.com/taskmint/taskmint/models"
	"github.com/taskmint/taskmint/store"
	"github.com/taskmint/taskmint/testutil"
)

func newService(t *testing.T, backendURL string, st store.Store) *Service {
	t.Helper()
	c := backend.NewClient(backendURL, backend.StaticToken("test-token"), st)
	c.MaxAttempts = 3
	c.AttemptTimeout = 100 * time.Millisecond
	c.RetryDelay = 5 * time.Millisecond
	return New(c, st)
}

func TestGetTasks_SuccessPopulatesCache(t *testing.T) {
	st := testutil.OpenTestStore(t)
	srv := testutil.NewBackend(t, []models.RawTask{testutil.RawTask(t, 1, `{"text": "ok"}`)})
	svc := newService(t, srv.URL, st)
	ctx := context.Background()

	tasks, err := svc.GetTasks(ctx, models.TextSentiment)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	testutil.AssertTaskIDs(t, tasks, 1)

	cached, err := st.LoadTasks(ctx, models.TextSentiment)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertTaskIDs(t, cached, 1)
	if cached[0].Data.Text != "ok" {
		t.Errorf("cache holds %+v", cached[0].Data)
	}
	if cached[0].Data.Image != "" || cached[0].Data.MapImage != "" {
		t.Errorf("unexpected synthesized fields: %+v", cached[0].Data)
	}
}

func TestGetTasks_AllAttemptsFailNoCache(t *testing.T) {
	st := testutil.OpenTestStore(t)

	// Simulated timeouts: every attempt hangs past the client deadline
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	svc := newService(t, srv.URL, st)
	tasks, err := svc.GetTasks(context.Background(), models.AudioClassification)
	if err != nil {
		t.Fatalf("transient failure must not surface on the read path: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts before fallback, got %d", calls.Load())
	}
	if len(tasks) == 0 {
		t.Fatal("expected the bundled static fallback set, got nothing")
	}
}

func TestGetTasks_FallsBackToCache(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	cached := []models.Task{{ID: 33, Data: models.TaskData{Text: "cached from the last good fetch"}}}
	if err := st.SaveTasks(ctx, models.TextSentiment, cached); err != nil {
		t.Fatal(err)
	}

	srv := testutil.NewFailingBackend(t, http.StatusServiceUnavailable, "maintenance")
	svc := newService(t, srv.URL, st)

	tasks, err := svc.GetTasks(ctx, models.TextSentiment)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertTaskIDs(t, tasks, 33)
}

func TestGetTasks_SurveyBypassesNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "should never be reached", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	svc := newService(t, srv.URL, testutil.OpenTestStore(t))
	tasks, err := svc.GetTasks(context.Background(), models.Survey)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) == 0 {
		t.Fatal("expected bundled surveys")
	}
	for _, task := range tasks {
		if task.ID < 100 || task.ID >= 200 {
			t.Errorf("survey task %d outside the reserved id range", task.ID)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("survey fetch touched the network %d times", calls.Load())
	}
}

func TestGetTasks_UnknownProjectType(t *testing.T) {
	svc := newService(t, "http://127.0.0.1:0", testutil.OpenTestStore(t))

	_, err := svc.GetTasks(context.Background(), models.ProjectType("VIDEO_TAGGING"))
	if !errors.Is(err, models.ErrUnknownProjectType) {
		t.Errorf("expected ErrUnknownProjectType, got %v", err)
	}
}

func imageTask() models.Task {
	return models.Task{
		ID: 42,
		Data: models.TaskData{
			Image:    "https://cdn.example.com/photos/42.jpg",
			Question: "What animal is shown?",
			Options: []models.Option{
				{ID: 1, Text: "Dog", Value: "Dog"},
				{ID: 2, Text: "Cat", Value: "Cat"},
			},
		},
	}
}

func TestSubmitChoice(t *testing.T) {
	st := testutil.OpenTestStore(t)
	srv := testutil.NewBackend(t, []models.RawTask{})
	svc := newService(t, srv.URL, st)
	ctx := context.Background()

	ack, err := svc.SubmitChoice(ctx, imageTask(), models.ImageClassification, "Dog")
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if ack.Task != 42 {
		t.Errorf("expected ack for task 42, got %d", ack.Task)
	}

	// Completion marker recorded as a side effect
	completed, err := st.CompletedTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if marker, ok := completed["42"]; !ok || marker == "" {
		t.Errorf("expected opaque completion marker for task 42, got %v", completed)
	}
}

func TestSubmitChoice_NoSelection(t *testing.T) {
	svc := newService(t, "http://127.0.0.1:0", testutil.OpenTestStore(t))

	_, err := svc.SubmitChoice(context.Background(), imageTask(), models.ImageClassification, "")

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if vErr.Report.IsValid || len(vErr.Report.Errors) == 0 {
		t.Errorf("expected a failing report, got %+v", vErr.Report)
	}
}

func TestSubmitChoice_ChoiceOutOfRange(t *testing.T) {
	// Never reaches the network: the gate rejects first
	svc := newService(t, "http://127.0.0.1:0", testutil.OpenTestStore(t))

	_, err := svc.SubmitChoice(context.Background(), imageTask(), models.ImageClassification, "Horse")

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestSubmitChoice_BackendRejection(t *testing.T) {
	srv := testutil.NewFailingBackend(t, http.StatusConflict, "already labeled")
	st := testutil.OpenTestStore(t)
	svc := newService(t, srv.URL, st)
	ctx := context.Background()

	_, err := svc.SubmitChoice(ctx, imageTask(), models.ImageClassification, "Dog")

	var subErr *backend.SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("expected *backend.SubmissionError, got %v", err)
	}

	// Rejected submissions must not mark the task completed
	completed, err := st.CompletedTasks(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(completed) != 0 {
		t.Errorf("rejected submission recorded completion: %v", completed)
	}
}

func TestSubmitSurvey(t *testing.T) {
	st := testutil.OpenTestStore(t)
	srv := testutil.NewBackend(t, []models.RawTask{})
	svc := newService(t, srv.URL, st)

	ack, err := svc.SubmitSurvey(context.Background(), 101, []models.AnnotationResult{
		{FromName: "q1", ToName: "survey", Type: models.ResultTypeChoices, Value: models.ChoicesValue{Choices: []string{"weekly"}}},
	})
	if err != nil {
		t.Fatalf("SubmitSurvey: %v", err)
	}
	if ack.Task != 101 {
		t.Errorf("expected ack for task 101, got %d", ack.Task)
	}
}

func TestRecordMetrics(t *testing.T) {
	st := testutil.OpenTestStore(t)
	svc := newService(t, "http://127.0.0.1:0", st)
	ctx := context.Background()

	m := models.QualityMetrics{CompletionTime: 20.5, Accuracy: 0.9, Consistency: 0.95}
	if err := svc.RecordMetrics(ctx, 7, m); err != nil {
		t.Fatal(err)
	}

	metrics, err := st.Metrics(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if metrics["7"] != m {
		t.Errorf("got %+v, want %+v", metrics["7"], m)
	}
}
