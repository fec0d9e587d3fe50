package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

// FinalizeCourseCompletion checks whether the student has completed every
// gradable item and, if so, stamps the course completion date. Once stamped,
// the date is frozen: calling again returns the stored value untouched.
//
// A course with no gradable items is trivially complete and is stamped with
// the current time; otherwise the stamp is the latest qualifying action, not
// the time this check happened to run.
func (s *Service) FinalizeCourseCompletion(ctx context.Context, studentID, courseID uuid.UUID) (models.CompletionStatus, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return models.CompletionStatus{}, err
	}

	record, err := s.progressRepo.ProgressByStudentCourse(ctx, studentID, courseID)
	if err != nil && !errors.Is(err, app_errors.ErrProgressNotFound) {
		return models.CompletionStatus{}, err
	}

	if record != nil && record.CourseCompletedAt != nil {
		return models.CompletionStatus{IsCompleted: true, CompletedAt: record.CourseCompletedAt}, nil
	}

	items := EnumerateGradableItems(course)
	summary := ComputeProgress(items, record)

	if summary.TotalItems == 0 {
		stamped, err := s.progressRepo.SetCourseCompletedAt(ctx, studentID, courseID, s.now())
		if err != nil {
			return models.CompletionStatus{}, fmt.Errorf("stamp trivial completion: %w", err)
		}
		return models.CompletionStatus{IsCompleted: true, CompletedAt: &stamped}, nil
	}

	if summary.CompletedItems < summary.TotalItems {
		return models.CompletionStatus{IsCompleted: false}, nil
	}

	stamped, err := s.progressRepo.SetCourseCompletedAt(ctx, studentID, courseID, completionTime(items, record))
	if err != nil {
		return models.CompletionStatus{}, fmt.Errorf("stamp completion: %w", err)
	}
	return models.CompletionStatus{IsCompleted: true, CompletedAt: &stamped}, nil
}

// completionTime is the maximum timestamp among the completed constituents:
// content updatedAt for completed contents, module completedAt for passed
// quizzes. A module entry without its own timestamp falls back to the
// progress record's updatedAt.
func completionTime(items []models.GradableItem, record *models.Progress) time.Time {
	var latest time.Time
	for _, it := range items {
		switch it.Kind {
		case models.ItemKindContent:
			if cp, ok := record.ContentProgress[it.ItemID]; ok && cp.IsCompleted && cp.UpdatedAt.After(latest) {
				latest = cp.UpdatedAt
			}
		case models.ItemKindQuiz:
			if cm, ok := record.CompletedModules[it.ModuleID]; ok {
				ts := cm.CompletedAt
				if ts.IsZero() {
					ts = record.UpdatedAt
				}
				if ts.After(latest) {
					latest = ts
				}
			}
		}
	}
	if latest.IsZero() {
		latest = record.UpdatedAt
	}
	return latest
}
