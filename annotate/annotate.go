package annotate

import (
	"encoding/json"

	"github.com/taskmint/taskmint/models"
)

type fieldNames struct {
	From string
	To   string
}

// controlFields maps each project type to the fixed (from_name, to_name)
// pair its annotations carry. Data-driven on purpose: adding a project type
// is one table row, not another branch.
var controlFields = map[models.ProjectType]fieldNames{
	models.TextSentiment:       {From: "sentiment", To: "text"},
	models.ImageClassification: {From: "animal_type", To: "image"},
	models.AudioClassification: {From: "audio_class", To: "audio"},
	models.GeospatialLabeling:  {From: "geo_feature", To: "geo_image"},
}

const (
	surveyFrom = "survey_choice"
	surveyTo   = "survey_text"

	// surveyCompleted marks a survey submitted without an explicit value.
	surveyCompleted = "completed"
)

// Build constructs the result array for an annotation submission.
//
// For every type except SURVEY the value is the selected option value and
// the output is a single "choices" entry using the type's control fields.
// SURVEY callers supply a fully-formed result array (multi-question
// surveys); a value without one falls back to a single synthetic entry.
func Build(pt models.ProjectType, value any) []models.AnnotationResult {
	if pt == models.Survey {
		return buildSurvey(value)
	}

	fields, ok := controlFields[pt]
	if !ok {
		return nil
	}

	selected, _ := value.(string)
	return []models.AnnotationResult{{
		FromName: fields.From,
		ToName:   fields.To,
		Type:     models.ResultTypeChoices,
		Value:    models.ChoicesValue{Choices: []string{selected}},
	}}
}

func buildSurvey(value any) []models.AnnotationResult {
	switch v := value.(type) {
	case []models.AnnotationResult:
		if len(v) > 0 {
			return v
		}
	case models.Annotation:
		if len(v.Result) > 0 {
			return v.Result
		}
	case map[string]any:
		// UI layers hand survey answers over as decoded JSON
		if raw, ok := v["result"]; ok {
			if result := coerceResults(raw); len(result) > 0 {
				return result
			}
		}
	}

	choice := surveyCompleted
	if s, ok := value.(string); ok && s != "" {
		choice = s
	}
	return []models.AnnotationResult{{
		FromName: surveyFrom,
		ToName:   surveyTo,
		Type:     models.ResultTypeChoices,
		Value:    models.ChoicesValue{Choices: []string{choice}},
	}}
}

func coerceResults(raw any) []models.AnnotationResult {
	payload, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var result []models.AnnotationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil
	}
	return result
}
