package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ItemKindContent = "content"
	ItemKindQuiz    = "quiz"
)

// GradableItem is derived from the course document, never stored. A content
// item counts once; a module counts once iff its quiz has at least one
// question. Quiz items are keyed by their owning module id.
type GradableItem struct {
	ItemID       uuid.UUID `json:"item_id"`
	Kind         string    `json:"kind"`
	ChapterTitle string    `json:"chapter_title"`
	ModuleTitle  string    `json:"module_title"`
	ModuleID     uuid.UUID `json:"module_id"`
}

type ProgressSummary struct {
	CompletedItems     int `json:"completed_items"`
	TotalItems         int `json:"total_items"`
	ProgressPercentage int `json:"percentage"`
}

// Correction is returned for every question of a graded submission,
// pass or fail, so the student can review.
type Correction struct {
	QuestionIndex      int    `json:"question_index"`
	CorrectAnswerIndex int    `json:"correct_answer_index"`
	Explanation        string `json:"explanation,omitempty"`
	IsCorrect          bool   `json:"is_correct"`
}

type QuizResult struct {
	Score         int          `json:"score"`
	RequiredScore int          `json:"required_score"`
	IsPassed      bool         `json:"is_passed"`
	IsFastTracked bool         `json:"is_fast_tracked"`
	Corrections   []Correction `json:"corrections"`
}

// AttemptQuestion is a question stripped for delivery: no correct answer,
// no explanation.
type AttemptQuestion struct {
	Index      int      `json:"index"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty,omitempty"`
}

type CompletionStatus struct {
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
