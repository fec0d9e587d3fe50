package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContentTypeVideo = "video"
	ContentTypeImage = "image"
	ContentTypePDF   = "pdf"
	ContentTypeDoc   = "doc"
	ContentTypeLink  = "link"
	ContentTypeText  = "text"
)

// Default quiz thresholds, applied when a quiz does not set its own.
const (
	DefaultPassingScore   = 70
	DefaultFastTrackScore = 85
)

// Course is stored as a single document: the chapter tree lives in a JSONB
// column and is read-only for everything in this service except the
// authoring endpoints.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	IsPublished bool      `json:"is_published"`
	Chapters    []Chapter `json:"chapters"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Chapter struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Modules []Module  `json:"modules"`
}

type Module struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Contents []Content `json:"contents"`
	Quiz     *Quiz     `json:"quiz,omitempty"`
}

type Content struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	URL          string    `json:"url,omitempty"`
	OriginalName string    `json:"originalName,omitempty"`
	Description  string    `json:"description,omitempty"`
}

// Quiz configuration. Zero thresholds mean "unset"; grading falls back to
// DefaultPassingScore / DefaultFastTrackScore.
type Quiz struct {
	Questions                    []Question `json:"questions"`
	PassingScore                 int        `json:"passingScore,omitempty"`
	FastTrackScore               int        `json:"fastTrackScore,omitempty"`
	QuestionsPerAttempt          int        `json:"questionsPerAttempt,omitempty"`
	FastTrackQuestionsPerAttempt int        `json:"fastTrackQuestionsPerAttempt,omitempty"`
}

type Question struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Difficulty         string   `json:"difficulty,omitempty"`
	Explanation        string   `json:"explanation,omitempty"`
}

// CoursePreview is the catalog listing projection.
type CoursePreview struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	IsPublished bool      `json:"is_published"`
}
