package normalize

import (
	"encoding/json"
	"log/slog"

	"github.com/taskmint/taskmint/models"
)

// Task slims a raw backend task down to the shape the client caches and
// renders: id, created_at, and the known data fields. Unrecognized fields
// in the upstream data object are dropped, not errors.
func Task(raw models.RawTask, pt models.ProjectType) models.Task {
	var data models.TaskData
	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			slog.Warn("task data only partially decoded",
				"task_id", raw.ID,
				"error", err,
			)
		}
	}

	// Geospatial tasks render a map image; older upstream payloads only
	// carry the plain image field.
	if pt == models.GeospatialLabeling && data.MapImage == "" && data.Image != "" {
		data.MapImage = data.Image
	}

	return models.Task{
		ID:        raw.ID,
		CreatedAt: raw.CreatedAt,
		Data:      data,
	}
}

// Tasks normalizes a fetched list in order.
func Tasks(raw []models.RawTask, pt models.ProjectType) []models.Task {
	tasks := make([]models.Task, 0, len(raw))
	for _, r := range raw {
		tasks = append(tasks, Task(r, pt))
	}
	return tasks
}
