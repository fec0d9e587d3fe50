package progress

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

// progressRepo persists per-student-per-course progress. Every mutation is a
// targeted field update: the store must guarantee the completed-module upsert
// only replaces a strictly lower score, and the completion stamp is set once.
type progressRepo interface {
	ProgressByStudentCourse(ctx context.Context, studentID, courseID uuid.UUID) (*models.Progress, error)
	UpsertContentProgress(ctx context.Context, studentID, courseID, contentID uuid.UUID, timeSpentDelta int, completed bool, at time.Time) error
	UpsertCompletedModule(ctx context.Context, studentID, courseID, moduleID uuid.UUID, cm models.CompletedModule) error
	SetLastAttemptedModule(ctx context.Context, studentID, courseID, moduleID uuid.UUID, at time.Time) error
	SetCourseCompletedAt(ctx context.Context, studentID, courseID uuid.UUID, at time.Time) (time.Time, error)
}

type Service struct {
	log          logger.Log
	courseRepo   courseRepo
	progressRepo progressRepo
	now          func() time.Time
}

func NewService(log logger.Log, courses courseRepo, progress progressRepo) *Service {
	return &Service{
		log:          log,
		courseRepo:   courses,
		progressRepo: progress,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func findModule(course *models.Course, moduleID uuid.UUID) *models.Module {
	for ci := range course.Chapters {
		for mi := range course.Chapters[ci].Modules {
			if course.Chapters[ci].Modules[mi].ID == moduleID {
				return &course.Chapters[ci].Modules[mi]
			}
		}
	}
	return nil
}

func findContent(course *models.Course, contentID uuid.UUID) *models.Content {
	for ci := range course.Chapters {
		for mi := range course.Chapters[ci].Modules {
			contents := course.Chapters[ci].Modules[mi].Contents
			for i := range contents {
				if contents[i].ID == contentID {
					return &contents[i]
				}
			}
		}
	}
	return nil
}
