package progress

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

type fakeCourseRepo struct {
	courses map[uuid.UUID]*models.Course
}

func newFakeCourseRepo(courses ...*models.Course) *fakeCourseRepo {
	m := make(map[uuid.UUID]*models.Course, len(courses))
	for _, c := range courses {
		m[c.ID] = c
	}
	return &fakeCourseRepo{courses: m}
}

func (f *fakeCourseRepo) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	return c, nil
}

type progressKey struct {
	studentID uuid.UUID
	courseID  uuid.UUID
}

// fakeProgressRepo mirrors the store's conditional-update semantics in
// memory: monotonic module scores, sticky content completion, additive view
// time and a set-once completion stamp.
type fakeProgressRepo struct {
	records map[progressKey]*models.Progress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[progressKey]*models.Progress)}
}

func (f *fakeProgressRepo) ensure(studentID, courseID uuid.UUID, at time.Time) *models.Progress {
	key := progressKey{studentID, courseID}
	if rec, ok := f.records[key]; ok {
		rec.UpdatedAt = at
		return rec
	}
	rec := &models.Progress{
		ID:               uuid.New(),
		StudentID:        studentID,
		CourseID:         courseID,
		ContentProgress:  make(map[uuid.UUID]models.ContentProgress),
		CompletedModules: make(map[uuid.UUID]models.CompletedModule),
		UpdatedAt:        at,
	}
	f.records[key] = rec
	return rec
}

func (f *fakeProgressRepo) ProgressByStudentCourse(_ context.Context, studentID, courseID uuid.UUID) (*models.Progress, error) {
	rec, ok := f.records[progressKey{studentID, courseID}]
	if !ok {
		return nil, app_errors.ErrProgressNotFound
	}
	return rec, nil
}

func (f *fakeProgressRepo) UpsertContentProgress(_ context.Context, studentID, courseID, contentID uuid.UUID, timeSpentDelta int, completed bool, at time.Time) error {
	rec := f.ensure(studentID, courseID, at)
	cp := rec.ContentProgress[contentID]
	cp.TimeSpentSeconds += timeSpentDelta
	cp.IsCompleted = cp.IsCompleted || completed
	cp.UpdatedAt = at
	rec.ContentProgress[contentID] = cp
	return nil
}

func (f *fakeProgressRepo) UpsertCompletedModule(_ context.Context, studentID, courseID, moduleID uuid.UUID, cm models.CompletedModule) error {
	rec := f.ensure(studentID, courseID, cm.CompletedAt)
	if existing, ok := rec.CompletedModules[moduleID]; ok && existing.Score >= cm.Score {
		return nil
	}
	rec.CompletedModules[moduleID] = cm
	return nil
}

func (f *fakeProgressRepo) SetLastAttemptedModule(_ context.Context, studentID, courseID, moduleID uuid.UUID, at time.Time) error {
	rec := f.ensure(studentID, courseID, at)
	id := moduleID
	rec.LastAttemptedModule = &id
	return nil
}

func (f *fakeProgressRepo) SetCourseCompletedAt(_ context.Context, studentID, courseID uuid.UUID, at time.Time) (time.Time, error) {
	rec, ok := f.records[progressKey{studentID, courseID}]
	if !ok {
		rec = f.ensure(studentID, courseID, at)
	}
	if rec.CourseCompletedAt == nil {
		stamp := at
		rec.CourseCompletedAt = &stamp
	}
	return *rec.CourseCompletedAt, nil
}

func newTestQuiz(questions int, passing, fastTrack int) *models.Quiz {
	q := &models.Quiz{
		PassingScore:   passing,
		FastTrackScore: fastTrack,
	}
	for i := 0; i < questions; i++ {
		q.Questions = append(q.Questions, models.Question{
			Text:               "q",
			Options:            []string{"a", "b", "c", "d"},
			CorrectAnswerIndex: i % 4,
			Explanation:        "because",
		})
	}
	return q
}
