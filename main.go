package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/taskmint/taskmint/backend"
	"github.com/taskmint/taskmint/cliparse"
	"github.com/taskmint/taskmint/models"
	"github.com/taskmint/taskmint/service"
	"github.com/taskmint/taskmint/store"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	command := args[0]

	// Positional args come before flags: taskmint fetch TEXT_SENTIMENT -t redis
	rest := args[1:]
	var positional []string
	i := 0
	for i < len(rest) && !strings.HasPrefix(rest[i], "-") {
		positional = append(positional, rest[i])
		i++
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(rest[i:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the cache store
	st, err := store.Open(cfg)
	if err != nil {
		slog.Error("cache store open failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	client := backend.NewClient(cfg.BackendURL, backend.StaticToken(cfg.APIToken), st)
	svc := service.New(client, st)
	ctx := context.Background()

	switch command {
	case "fetch":
		err = runFetch(ctx, svc, positional)
	case "submit":
		err = runSubmit(ctx, svc, st, positional)
	case "completed":
		err = runCompleted(ctx, st)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		slog.Error("command failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func runFetch(ctx context.Context, svc *service.Service, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: taskmint fetch <project-type>")
	}
	pt, err := models.ParseProjectType(args[0])
	if err != nil {
		return err
	}

	tasks, err := svc.GetTasks(ctx, pt)
	if err != nil {
		return err
	}

	fmt.Printf("%s tasks for %s\n", humanize.Comma(int64(len(tasks))), pt)
	for _, task := range tasks {
		fmt.Printf("  #%d  %s  %s\n", task.ID, relativeAge(task.CreatedAt), taskSummary(task))
	}
	return nil
}

func runSubmit(ctx context.Context, svc *service.Service, st store.Store, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: taskmint submit <project-type> <task-id> <choice>")
	}
	pt, err := models.ParseProjectType(args[0])
	if err != nil {
		return err
	}
	taskID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[1])
	}
	choice := args[2]

	if pt == models.Survey {
		ack, err := svc.SubmitSurvey(ctx, taskID, choice)
		if err != nil {
			return err
		}
		fmt.Printf("survey response recorded for task #%d (annotation %d)\n", ack.Task, ack.ID)
		return nil
	}

	task, err := findTask(ctx, svc, st, pt, taskID)
	if err != nil {
		return err
	}

	ack, err := svc.SubmitChoice(ctx, task, pt, choice)
	if err != nil {
		return err
	}
	fmt.Printf("annotation %d recorded for task #%d\n", ack.ID, ack.Task)
	return nil
}

func runCompleted(ctx context.Context, st store.Store) error {
	completed, err := st.CompletedTasks(ctx)
	if err != nil {
		return err
	}
	metrics, err := st.Metrics(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s completed tasks\n", humanize.Comma(int64(len(completed))))
	for id := range completed {
		line := "  task " + id
		if m, ok := metrics[id]; ok {
			line += fmt.Sprintf("  %.1fs  accuracy %.2f  consistency %.2f",
				m.CompletionTime, m.Accuracy, m.Consistency)
		}
		fmt.Println(line)
	}
	return nil
}

// findTask looks in the cache first and only fetches on a miss.
func findTask(ctx context.Context, svc *service.Service, st store.Store, pt models.ProjectType, taskID int64) (models.Task, error) {
	cached, err := st.LoadTasks(ctx, pt)
	if err != nil {
		slog.Warn("cache read failed", "project_type", pt, "error", err)
	}
	if task, ok := taskByID(cached, taskID); ok {
		return task, nil
	}

	tasks, err := svc.GetTasks(ctx, pt)
	if err != nil {
		return models.Task{}, err
	}
	if task, ok := taskByID(tasks, taskID); ok {
		return task, nil
	}
	return models.Task{}, fmt.Errorf("task %d not found for %s", taskID, pt)
}

func taskByID(tasks []models.Task, id int64) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

func taskSummary(task models.Task) string {
	d := task.Data
	switch {
	case d.Title != "":
		return d.Title
	case d.Text != "":
		return d.Text
	case d.Question != "":
		return d.Question
	case d.Image != "":
		return d.Image
	case d.Audio != "":
		return d.Audio
	default:
		return "(no preview)"
	}
}

func relativeAge(createdAt string) string {
	if createdAt == "" {
		return "-"
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return humanize.Time(ts)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: taskmint <command> [args] [flags]

commands:
  fetch <project-type>                    list tasks (remote, cache or bundled)
  submit <project-type> <task-id> <choice>  submit an annotation
  completed                               show completed tasks and metrics

project types: TEXT_SENTIMENT, IMAGE_CLASSIFICATION, AUDIO_CLASSIFICATION,
SURVEY, GEOSPATIAL_LABELING`)
}
