package annotate

import (
	"reflect"
	"testing"

	"github.com/taskmint/taskmint/models"
)

func TestBuild_ImageClassification(t *testing.T) {
	result := Build(models.ImageClassification, "Dog")

	want := []models.AnnotationResult{{
		FromName: "animal_type",
		ToName:   "image",
		Type:     "choices",
		Value:    models.ChoicesValue{Choices: []string{"Dog"}},
	}}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("unexpected result:\n got: %+v\nwant: %+v", result, want)
	}
}

func TestBuild_FieldNamesPerType(t *testing.T) {
	tests := []struct {
		pt   models.ProjectType
		from string
		to   string
	}{
		{models.TextSentiment, "sentiment", "text"},
		{models.ImageClassification, "animal_type", "image"},
		{models.AudioClassification, "audio_class", "audio"},
		{models.GeospatialLabeling, "geo_feature", "geo_image"},
	}

	for _, tt := range tests {
		result := Build(tt.pt, "x")
		if len(result) != 1 {
			t.Fatalf("%s: expected one entry, got %d", tt.pt, len(result))
		}
		if result[0].FromName != tt.from || result[0].ToName != tt.to {
			t.Errorf("%s: got (%s, %s), want (%s, %s)",
				tt.pt, result[0].FromName, result[0].ToName, tt.from, tt.to)
		}
	}
}

func TestBuild_UnknownType(t *testing.T) {
	if result := Build(models.ProjectType("VIDEO_TAGGING"), "x"); result != nil {
		t.Errorf("expected nil for unknown type, got %+v", result)
	}
}

func TestBuild_SurveyPassthrough(t *testing.T) {
	supplied := []models.AnnotationResult{
		{FromName: "q1", ToName: "survey", Type: "choices", Value: models.ChoicesValue{Choices: []string{"weekly"}}},
		{FromName: "q2", ToName: "survey", Type: "choices", Value: models.ChoicesValue{Choices: []string{"satisfied"}}},
	}

	result := Build(models.Survey, supplied)
	if !reflect.DeepEqual(result, supplied) {
		t.Errorf("survey result array not passed through: %+v", result)
	}
}

func TestBuild_SurveyDecodedJSON(t *testing.T) {
	// The UI hands survey answers over as decoded JSON
	value := map[string]any{
		"result": []any{
			map[string]any{
				"from_name": "q1",
				"to_name":   "survey",
				"type":      "choices",
				"value":     map[string]any{"choices": []any{"daily"}},
			},
		},
	}

	result := Build(models.Survey, value)
	if len(result) != 1 || result[0].FromName != "q1" || result[0].Value.Choices[0] != "daily" {
		t.Errorf("decoded survey result not coerced: %+v", result)
	}
}

func TestBuild_SurveyStringFallback(t *testing.T) {
	result := Build(models.Survey, "satisfied")

	if len(result) != 1 {
		t.Fatalf("expected one entry, got %d", len(result))
	}
	if result[0].FromName != "survey_choice" || result[0].ToName != "survey_text" {
		t.Errorf("unexpected synthetic fields: %+v", result[0])
	}
	if result[0].Value.Choices[0] != "satisfied" {
		t.Errorf("expected supplied string, got %q", result[0].Value.Choices[0])
	}
}

func TestBuild_SurveyNonStringFallback(t *testing.T) {
	result := Build(models.Survey, 42)

	if len(result) != 1 || result[0].Value.Choices[0] != "completed" {
		t.Errorf(`expected literal "completed" for non-string value, got %+v`, result)
	}
}
