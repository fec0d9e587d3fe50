package models

import (
	"time"

	"github.com/google/uuid"
)

// Progress is the one-per-student-per-course record. The student+course pair
// is unique at the storage layer; the maps are keyed by content/module id and
// hold entries only for items the student has touched.
type Progress struct {
	ID                  uuid.UUID                     `json:"id"`
	StudentID           uuid.UUID                     `json:"student_id"`
	CourseID            uuid.UUID                     `json:"course_id"`
	ContentProgress     map[uuid.UUID]ContentProgress `json:"content_progress"`
	CompletedModules    map[uuid.UUID]CompletedModule `json:"completed_modules"`
	LastAttemptedModule *uuid.UUID                    `json:"last_attempted_module,omitempty"`
	CourseCompletedAt   *time.Time                    `json:"course_completed_at,omitempty"`
	UpdatedAt           time.Time                     `json:"updated_at"`
}

type ContentProgress struct {
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	IsCompleted      bool      `json:"is_completed"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CompletedModule exists only for modules whose quiz has been passed. Score
// is monotonic: storage replaces an entry only with a strictly greater score.
type CompletedModule struct {
	Score         int       `json:"score"`
	IsFastTracked bool      `json:"is_fast_tracked"`
	CompletedAt   time.Time `json:"completed_at"`
}
