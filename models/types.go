package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ProjectType identifies one of the fixed labeling categories the app serves.
type ProjectType string

const (
	TextSentiment       ProjectType = "TEXT_SENTIMENT"
	ImageClassification ProjectType = "IMAGE_CLASSIFICATION"
	AudioClassification ProjectType = "AUDIO_CLASSIFICATION"
	Survey              ProjectType = "SURVEY"
	GeospatialLabeling  ProjectType = "GEOSPATIAL_LABELING"
)

// ProjectTypes lists every supported type, in declaration order.
var ProjectTypes = []ProjectType{
	TextSentiment,
	ImageClassification,
	AudioClassification,
	Survey,
	GeospatialLabeling,
}

// ErrUnknownProjectType indicates a project type outside the fixed set.
// This is a programming error, not a runtime condition to recover from.
var ErrUnknownProjectType = errors.New("unknown project type")

// projectIDs maps each project type to its backend project identifier.
// Static configuration, never mutated at runtime.
var projectIDs = map[ProjectType]int64{
	TextSentiment:       1,
	ImageClassification: 2,
	AudioClassification: 3,
	Survey:              4,
	GeospatialLabeling:  5,
}

// ProjectID resolves the backend project identifier for this type.
func (p ProjectType) ProjectID() (int64, error) {
	id, ok := projectIDs[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProjectType, string(p))
	}
	return id, nil
}

// CacheKey returns the storage key under which this type's tasks persist.
func (p ProjectType) CacheKey() string {
	return "tasks:" + string(p)
}

// ParseProjectType converts a string tag into a ProjectType.
func ParseProjectType(s string) (ProjectType, error) {
	for _, p := range ProjectTypes {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProjectType, s)
}

// Domain types

// Option is a selectable answer offered by a task.
type Option struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

// TaskData holds the optional payload fields a task may carry. Which subset
// is populated depends on the task's project type.
type TaskData struct {
	Text         string   `json:"text,omitempty"`
	Image        string   `json:"image,omitempty"`
	Audio        string   `json:"audio,omitempty"`
	Question     string   `json:"question,omitempty"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Link         string   `json:"link,omitempty"`
	Str          string   `json:"str,omitempty"`
	Options      []Option `json:"options,omitempty"`
	LocationName string   `json:"location_name,omitempty"`
	MapImage     string   `json:"map_image,omitempty"`
}

// Empty reports whether no payload field is populated.
func (d TaskData) Empty() bool {
	return d.Text == "" && d.Image == "" && d.Audio == "" && d.Question == "" &&
		d.Title == "" && d.Description == "" && d.Link == "" && d.Str == "" &&
		len(d.Options) == 0 && d.LocationName == "" && d.MapImage == ""
}

// OptionValues returns the submission values of the declared options.
func (d TaskData) OptionValues() []string {
	values := make([]string, 0, len(d.Options))
	for _, opt := range d.Options {
		values = append(values, opt.Value)
	}
	return values
}

// RawTask is a task as the backend returns it: data stays opaque until the
// normalizer projects the known fields out of it.
type RawTask struct {
	ID        int64           `json:"id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt string          `json:"created_at,omitempty"`
	IsLabeled *bool           `json:"is_labeled,omitempty"`
}

// Task is the slim, cache-ready representation of a unit of work.
type Task struct {
	ID        int64    `json:"id"`
	CreatedAt string   `json:"created_at,omitempty"`
	Data      TaskData `json:"data"`
}

// Annotation types

// ResultTypeChoices is the only result discriminator the backend accepts today.
const ResultTypeChoices = "choices"

type ChoicesValue struct {
	Choices []string `json:"choices"`
}

// AnnotationResult is one entry in an annotation's result array.
type AnnotationResult struct {
	FromName string       `json:"from_name"`
	ToName   string       `json:"to_name"`
	Type     string       `json:"type"`
	Value    ChoicesValue `json:"value"`
}

// Annotation is the submission body for POST /api/tasks/{id}/annotations/.
type Annotation struct {
	Task   int64              `json:"task"`
	Result []AnnotationResult `json:"result"`
}

// SubmitResponse is the backend's acknowledgement of a stored annotation.
type SubmitResponse struct {
	ID   int64 `json:"id"`
	Task int64 `json:"task"`
}

// QualityMetrics records per-task quality numbers for diagnostic views.
type QualityMetrics struct {
	CompletionTime float64 `json:"completionTime"`
	Accuracy       float64 `json:"accuracy"`
	Consistency    float64 `json:"consistency"`
}
