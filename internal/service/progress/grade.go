package progress

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

// GradeQuiz scores a submitted answer map {questionIndex: chosenOptionIndex}
// against the quiz's question bank. Unanswered questions and answers that do
// not match the correct option index grade as incorrect, never as errors.
// Corrections cover every question regardless of outcome.
func GradeQuiz(quiz *models.Quiz, answers map[int]int, fastTrack bool) (models.QuizResult, error) {
	if quiz == nil {
		return models.QuizResult{}, app_errors.ErrNoQuiz
	}
	total := len(quiz.Questions)
	if total == 0 {
		return models.QuizResult{}, app_errors.ErrEmptyQuiz
	}

	required := quiz.PassingScore
	if fastTrack {
		required = quiz.FastTrackScore
		if required == 0 {
			required = models.DefaultFastTrackScore
		}
	} else if required == 0 {
		required = models.DefaultPassingScore
	}

	correct := 0
	corrections := make([]models.Correction, 0, total)
	for i, q := range quiz.Questions {
		chosen, answered := answers[i]
		isCorrect := answered && chosen == q.CorrectAnswerIndex
		if isCorrect {
			correct++
		}
		corrections = append(corrections, models.Correction{
			QuestionIndex:      i,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Explanation:        q.Explanation,
			IsCorrect:          isCorrect,
		})
	}

	score := int(math.Round(float64(correct) / float64(total) * 100))
	return models.QuizResult{
		Score:         score,
		RequiredScore: required,
		IsPassed:      score >= required,
		IsFastTracked: fastTrack,
		Corrections:   corrections,
	}, nil
}

// SubmitQuiz grades a submission for the module's quiz and, on a pass,
// records the completed module. The store's upsert keeps the score
// monotonic: an existing entry is replaced only by a strictly greater score,
// so concurrent submissions cannot lose the better result.
func (s *Service) SubmitQuiz(ctx context.Context, studentID, courseID, moduleID uuid.UUID, answers map[int]int, fastTrack bool) (*models.QuizResult, error) {
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

	result, err := GradeQuiz(module.Quiz, answers, fastTrack)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.progressRepo.SetLastAttemptedModule(ctx, studentID, courseID, moduleID, now); err != nil {
		s.log.ErrorErr("submit quiz: failed to record last attempted module", err)
	}

	if result.IsPassed {
		cm := models.CompletedModule{
			Score:         result.Score,
			IsFastTracked: fastTrack,
			CompletedAt:   now,
		}
		if err := s.progressRepo.UpsertCompletedModule(ctx, studentID, courseID, moduleID, cm); err != nil {
			return nil, fmt.Errorf("persist completed module: %w", err)
		}
	}

	return &result, nil
}
