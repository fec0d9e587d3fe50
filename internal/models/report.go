package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentProgressRow is the admin report line: how many published courses a
// student has fully completed. CoursePercentage is a percentage of COURSES,
// not of items within a course; the two metrics are deliberately distinct.
type StudentProgressRow struct {
	StudentID        uuid.UUID `json:"student_id"`
	CompletedCourses int       `json:"completed_courses"`
	TotalCourses     int       `json:"total_courses"`
	CoursePercentage int       `json:"course_percentage"`
}

// CourseGrades summarises a student's quiz scores within one course.
type CourseGrades struct {
	CourseID     uuid.UUID     `json:"course_id"`
	CourseTitle  string        `json:"course_title"`
	Subject      string        `json:"subject"`
	Scores       []ModuleScore `json:"scores"`
	AverageScore float64       `json:"average_score"`
	HighestScore int           `json:"highest_score"`
	LowestScore  int           `json:"lowest_score"`
}

type ModuleScore struct {
	ModuleID      uuid.UUID `json:"module_id"`
	Score         int       `json:"score"`
	IsFastTracked bool      `json:"is_fast_tracked"`
	CompletedAt   time.Time `json:"completed_at"`
}

// CourseSummary is the per-course item-progress view for one student.
type CourseSummary struct {
	CourseID    uuid.UUID       `json:"course_id"`
	CourseTitle string          `json:"course_title"`
	Progress    ProgressSummary `json:"progress"`
	IsCompleted bool            `json:"is_completed"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}
