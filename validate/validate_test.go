package validate

import (
	"testing"

	"github.com/taskmint/taskmint/models"
)

func validTask() models.Task {
	return models.Task{
		ID: 5,
		Data: models.TaskData{
			Image:    "https://cdn.example.com/photos/5.jpg",
			Question: "What animal is shown?",
			Options: []models.Option{
				{ID: 1, Text: "Dog", Value: "Dog"},
				{ID: 2, Text: "Cat", Value: "Cat"},
			},
		},
	}
}

func TestTask_NoSelection(t *testing.T) {
	task := validTask()

	report := Task(&task, "")
	if report.IsValid {
		t.Error("expected invalid report for empty selection")
	}
	if len(report.Errors) == 0 {
		t.Error("expected non-empty errors for empty selection")
	}
}

func TestTask_Missing(t *testing.T) {
	report := Task(nil, "Dog")
	if report.IsValid || len(report.Errors) == 0 {
		t.Errorf("expected invalid report for missing task: %+v", report)
	}
}

func TestTask_MissingIDAndData(t *testing.T) {
	report := Task(&models.Task{}, "Dog")
	if report.IsValid {
		t.Error("expected invalid report")
	}
	if len(report.Errors) != 2 {
		t.Errorf("expected errors for missing id and missing data, got %v", report.Errors)
	}
}

func TestTask_Valid(t *testing.T) {
	task := validTask()

	report := Task(&task, "Dog")
	if !report.IsValid {
		t.Errorf("expected valid report, got errors %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", report.Warnings)
	}
}

func TestTask_Warnings(t *testing.T) {
	task := models.Task{
		ID: 6,
		Data: models.TaskData{
			Text:  "too short",
			Audio: "clips/6.mp3",
			Image: "photos/6.jpg",
		},
	}

	report := Task(&task, "Positive")
	if !report.IsValid {
		t.Errorf("warnings must not block: %v", report.Errors)
	}
	if len(report.Warnings) != 3 {
		t.Errorf("expected 3 warnings (audio, image, text), got %v", report.Warnings)
	}
}

func TestSubmission_ChoiceOutOfRange(t *testing.T) {
	task := validTask()
	result := []models.AnnotationResult{{
		FromName: "animal_type",
		ToName:   "image",
		Type:     models.ResultTypeChoices,
		Value:    models.ChoicesValue{Choices: []string{"Horse"}},
	}}

	report := Submission(&task, result)
	if report.IsValid {
		t.Error("expected invalid report for out-of-range choice")
	}
}

func TestSubmission_Valid(t *testing.T) {
	task := validTask()
	result := []models.AnnotationResult{{
		FromName: "animal_type",
		ToName:   "image",
		Type:     models.ResultTypeChoices,
		Value:    models.ChoicesValue{Choices: []string{"Cat"}},
	}}

	report := Submission(&task, result)
	if !report.IsValid {
		t.Errorf("expected valid report, got errors %v", report.Errors)
	}
}

func TestSubmission_MissingResult(t *testing.T) {
	task := validTask()

	report := Submission(&task, nil)
	if report.IsValid {
		t.Error("expected invalid report for missing result")
	}
}

func TestSubmission_MalformedEntries(t *testing.T) {
	task := validTask()
	result := []models.AnnotationResult{
		{Type: models.ResultTypeChoices, Value: models.ChoicesValue{Choices: []string{"Dog"}}}, // no names
		{FromName: "animal_type", ToName: "image", Type: models.ResultTypeChoices},             // no choices
	}

	report := Submission(&task, result)
	if report.IsValid {
		t.Error("expected invalid report")
	}
	if len(report.Errors) != 3 {
		t.Errorf("expected 3 errors (from_name, to_name, choices), got %v", report.Errors)
	}
}

func TestSubmission_NoDeclaredOptions(t *testing.T) {
	// Tasks without declared options accept any choice
	task := models.Task{ID: 8, Data: models.TaskData{Text: "free-form sentiment sample"}}
	result := []models.AnnotationResult{{
		FromName: "sentiment",
		ToName:   "text",
		Type:     models.ResultTypeChoices,
		Value:    models.ChoicesValue{Choices: []string{"Positive"}},
	}}

	report := Submission(&task, result)
	if !report.IsValid {
		t.Errorf("expected valid report, got errors %v", report.Errors)
	}
}
