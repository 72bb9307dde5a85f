// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fallback

import "github.com/taskmint/taskmint/models"

// Bundled fixture tasks, served when both the network and the cache come up
// empty. Treated as immutable; StaticTasks hands out copies.

// surveyTaskFloor/Ceil bound the id range reserved for bundled surveys.
const (
	surveyTaskFloor = 100
	surveyTaskCeil  = 200
)

var defaultTasks = []models.Task{
	{
		ID:        1,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Text:     "The checkout flow was quick and the support team answered within minutes.",
			Question: "How does this review read to you?",
			Options: []models.Option{
				{ID: 1, Text: "Positive", Value: "Positive"},
				{ID: 2, Text: "Negative", Value: "Negative"},
				{ID: 3, Text: "Neutral", Value: "Neutral"},
			},
		},
	},
	{
		ID:        2,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Text:     "App crashes every time I open the wallet tab. Two weeks, no fix.",
			Question: "How does this review read to you?",
			Options: []models.Option{
				{ID: 1, Text: "Positive", Value: "Positive"},
				{ID: 2, Text: "Negative", Value: "Negative"},
				{ID: 3, Text: "Neutral", Value: "Neutral"},
			},
		},
	},
	{
		ID:        3,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Text:     "Delivery arrived on the scheduled day. Packaging was standard.",
			Question: "How does this review read to you?",
			Options: []models.Option{
				{ID: 1, Text: "Positive", Value: "Positive"},
				{ID: 2, Text: "Negative", Value: "Negative"},
				{ID: 3, Text: "Neutral", Value: "Neutral"},
			},
		},
	},
}

var imageTasks = []models.Task{
	{
		ID:        10,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Image:    "https://static.taskmint.app/fallback/animal-10.jpg",
			Question: "What animal is shown?",
			Options: []models.Option{
				{ID: 1, Text: "Dog", Value: "Dog"},
				{ID: 2, Text: "Cat", Value: "Cat"},
				{ID: 3, Text: "Bird", Value: "Bird"},
			},
		},
	},
	{
		ID:        11,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Image:    "https://static.taskmint.app/fallback/animal-11.jpg",
			Question: "What animal is shown?",
			Options: []models.Option{
				{ID: 1, Text: "Dog", Value: "Dog"},
				{ID: 2, Text: "Cat", Value: "Cat"},
				{ID: 3, Text: "Bird", Value: "Bird"},
			},
		},
	},
	{
		ID:        12,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Image:    "https://static.taskmint.app/fallback/animal-12.jpg",
			Question: "What animal is shown?",
			Options: []models.Option{
				{ID: 1, Text: "Dog", Value: "Dog"},
				{ID: 2, Text: "Cat", Value: "Cat"},
				{ID: 3, Text: "Bird", Value: "Bird"},
			},
		},
	},
}

var surveyTasks = []models.Task{
	{
		ID:        101,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Title:       "Weekly earner check-in",
			Question:    "How satisfied are you with this week's task mix?",
			Description: "One question, takes ten seconds.",
			Options: []models.Option{
				{ID: 1, Text: "Very satisfied", Value: "very_satisfied"},
				{ID: 2, Text: "Satisfied", Value: "satisfied"},
				{ID: 3, Text: "Unsatisfied", Value: "unsatisfied"},
			},
		},
	},
	{
		ID:        102,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Title:       "Payout preferences",
			Question:    "How often do you want earnings paid out?",
			Description: "Helps us schedule batch payouts.",
			Options: []models.Option{
				{ID: 1, Text: "Daily", Value: "daily"},
				{ID: 2, Text: "Weekly", Value: "weekly"},
				{ID: 3, Text: "Monthly", Value: "monthly"},
			},
		},
	},
	{
		ID:        103,
		CreatedAt: "2025-01-06T09:00:00Z",
		Data: models.TaskData{
			Title:       "Task difficulty",
			Question:    "Were this week's audio tasks harder than usual?",
			Description: "We tune task routing with these answers.",
			Options: []models.Option{
				{ID: 1, Text: "Harder", Value: "harder"},
				{ID: 2, Text: "About the same", Value: "same"},
				{ID: 3, Text: "Easier", Value: "easier"},
			},
		},
	},
}

// StaticTasks returns the bundled fixture set for a project type.
func StaticTasks(pt models.ProjectType) []models.Task {
	switch pt {
	case models.ImageClassification:
		return copyTasks(imageTasks)
	case models.Survey:
		return SurveyTasks()
	default:
		return copyTasks(defaultTasks)
	}
}

// SurveyTasks returns the bundled surveys, filtered to the reserved id
// range. Surveys never come from the network.
func SurveyTasks() []models.Task {
	tasks := make([]models.Task, 0, len(surveyTasks))
	for _, t := range surveyTasks {
		if t.ID >= surveyTaskFloor && t.ID < surveyTaskCeil {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func copyTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}
