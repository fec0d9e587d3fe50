package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

// RecordContentProgress accumulates viewing time for a content item and,
// when completed is true, marks it done. Completion is sticky: a later view
// with completed=false never clears the flag. The progress record is created
// lazily on the first interaction.
func (s *Service) RecordContentProgress(ctx context.Context, studentID, courseID, contentID uuid.UUID, timeSpentDelta int, completed bool) error {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return err
	}
	if !course.IsPublished {
		return app_errors.ErrCourseNotPublished
	}
	if findContent(course, contentID) == nil {
		return app_errors.ErrContentNotFound
	}
	if timeSpentDelta < 0 {
		timeSpentDelta = 0
	}

	if err := s.progressRepo.UpsertContentProgress(ctx, studentID, courseID, contentID, timeSpentDelta, completed, s.now()); err != nil {
		return fmt.Errorf("record content progress: %w", err)
	}
	return nil
}

// QuizForAttempt returns the module's questions stripped of answers and
// explanations, capped at the quiz's per-attempt count for the requested
// delivery mode (0 means all). Question indices are preserved so the answer
// map lines up with the bank at grading time.
func (s *Service) QuizForAttempt(ctx context.Context, courseID, moduleID uuid.UUID, fastTrack bool) ([]models.AttemptQuestion, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished {
		return nil, app_errors.ErrCourseNotPublished
	}
	module := findModule(course, moduleID)
	if module == nil {
		return nil, app_errors.ErrModuleNotFound
	}
	if module.Quiz == nil {
		return nil, app_errors.ErrNoQuiz
	}
	if len(module.Quiz.Questions) == 0 {
		return nil, app_errors.ErrEmptyQuiz
	}

	limit := module.Quiz.QuestionsPerAttempt
	if fastTrack {
		limit = module.Quiz.FastTrackQuestionsPerAttempt
	}
	if limit <= 0 || limit > len(module.Quiz.Questions) {
		limit = len(module.Quiz.Questions)
	}

	questions := make([]models.AttemptQuestion, 0, limit)
	for i, q := range module.Quiz.Questions[:limit] {
		questions = append(questions, models.AttemptQuestion{
			Index:      i,
			Text:       q.Text,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		})
	}
	return questions, nil
}
