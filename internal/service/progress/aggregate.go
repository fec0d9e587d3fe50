package progress

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

// ComputeProgress counts completed items against the enumerated list. A nil
// progress record means the student has not interacted yet and reads as 0%.
// Pure and safe to call concurrently; the reporting endpoints hammer it.
func ComputeProgress(items []models.GradableItem, progress *models.Progress) models.ProgressSummary {
	total := len(items)
	completed := 0
	if progress != nil {
		for _, it := range items {
			switch it.Kind {
			case models.ItemKindContent:
				if cp, ok := progress.ContentProgress[it.ItemID]; ok && cp.IsCompleted {
					completed++
				}
			case models.ItemKindQuiz:
				if _, ok := progress.CompletedModules[it.ModuleID]; ok {
					completed++
				}
			}
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return models.ProgressSummary{
		CompletedItems:     completed,
		TotalItems:         total,
		ProgressPercentage: percentage,
	}
}

// CourseProgress loads the course and the student's progress record and
// aggregates them. An absent progress record is not an error.
func (s *Service) CourseProgress(ctx context.Context, studentID, courseID uuid.UUID) (models.ProgressSummary, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return models.ProgressSummary{}, err
	}

	record, err := s.progressRepo.ProgressByStudentCourse(ctx, studentID, courseID)
	if err != nil && !errors.Is(err, app_errors.ErrProgressNotFound) {
		return models.ProgressSummary{}, err
	}

	return ComputeProgress(EnumerateGradableItems(course), record), nil
}
