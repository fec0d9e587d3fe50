package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

type fakeCourseRepo struct {
	published []models.Course
}

func (f *fakeCourseRepo) CourseByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	for i := range f.published {
		if f.published[i].ID == id {
			return &f.published[i], nil
		}
	}
	return nil, app_errors.ErrCourseNotFound
}

func (f *fakeCourseRepo) ListPublished(_ context.Context) ([]models.Course, error) {
	return f.published, nil
}

type fakeProgressRepo struct {
	records []models.Progress
}

func (f *fakeProgressRepo) ProgressByStudent(_ context.Context, studentID uuid.UUID) ([]models.Progress, error) {
	var out []models.Progress
	for _, r := range f.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) StudentIDs(_ context.Context) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, r := range f.records {
		if !seen[r.StudentID] {
			seen[r.StudentID] = true
			ids = append(ids, r.StudentID)
		}
	}
	return ids, nil
}

// twoCourses builds two single-module published courses: one with a content
// and a quiz, one with a content only.
func twoCourses() (courses []models.Course, contentA, moduleA, contentB uuid.UUID) {
	contentA = uuid.New()
	moduleA = uuid.New()
	contentB = uuid.New()

	quiz := &models.Quiz{
		PassingScore:   70,
		FastTrackScore: 85,
		Questions: []models.Question{
			{Text: "q", Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
		},
	}
	courses = []models.Course{
		{
			ID:          uuid.New(),
			Title:       "Algebra",
			Subject:     "Math",
			IsPublished: true,
			Chapters: []models.Chapter{
				{Modules: []models.Module{
					{ID: moduleA, Title: "Linear", Contents: []models.Content{{ID: contentA}}, Quiz: quiz},
				}},
			},
		},
		{
			ID:          uuid.New(),
			Title:       "Geometry",
			Subject:     "Math",
			IsPublished: true,
			Chapters: []models.Chapter{
				{Modules: []models.Module{
					{ID: uuid.New(), Title: "Shapes", Contents: []models.Content{{ID: contentB}}},
				}},
			},
		},
	}
	return courses, contentA, moduleA, contentB
}

func TestStudentProgressReport(t *testing.T) {
	courses, contentA, moduleA, _ := twoCourses()
	done := uuid.New()
	halfway := uuid.New()

	progressRepo := &fakeProgressRepo{records: []models.Progress{
		{
			ID: uuid.New(), StudentID: done, CourseID: courses[0].ID,
			ContentProgress:  map[uuid.UUID]models.ContentProgress{contentA: {IsCompleted: true}},
			CompletedModules: map[uuid.UUID]models.CompletedModule{moduleA: {Score: 90}},
		},
		{
			ID: uuid.New(), StudentID: halfway, CourseID: courses[0].ID,
			ContentProgress: map[uuid.UUID]models.ContentProgress{contentA: {IsCompleted: true}},
		},
	}}
	svc := NewReportService(logger.Nop(), &fakeCourseRepo{published: courses}, progressRepo)

	rows, err := svc.StudentProgressReport(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byStudent := make(map[uuid.UUID]models.StudentProgressRow)
	for _, row := range rows {
		byStudent[row.StudentID] = row
	}

	assert.Equal(t, 1, byStudent[done].CompletedCourses)
	assert.Equal(t, 2, byStudent[done].TotalCourses)
	assert.Equal(t, 50, byStudent[done].CoursePercentage)

	assert.Equal(t, 0, byStudent[halfway].CompletedCourses)
	assert.Equal(t, 0, byStudent[halfway].CoursePercentage)
}

func TestStudentGrades(t *testing.T) {
	courses, _, moduleA, _ := twoCourses()
	studentID := uuid.New()
	completedAt := time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC)

	progressRepo := &fakeProgressRepo{records: []models.Progress{
		{
			ID: uuid.New(), StudentID: studentID, CourseID: courses[0].ID,
			CompletedModules: map[uuid.UUID]models.CompletedModule{
				moduleA: {Score: 90, IsFastTracked: true, CompletedAt: completedAt},
			},
		},
	}}
	svc := NewReportService(logger.Nop(), &fakeCourseRepo{published: courses}, progressRepo)

	grades, err := svc.StudentGrades(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, grades, 1)

	cg := grades[0]
	assert.Equal(t, "Algebra", cg.CourseTitle)
	assert.Equal(t, "Math", cg.Subject)
	require.Len(t, cg.Scores, 1)
	assert.Equal(t, 90, cg.Scores[0].Score)
	assert.True(t, cg.Scores[0].IsFastTracked)
	assert.Equal(t, completedAt, cg.Scores[0].CompletedAt)
	assert.Equal(t, 90.0, cg.AverageScore)
	assert.Equal(t, 90, cg.HighestScore)
	assert.Equal(t, 90, cg.LowestScore)
}

func TestCourseSummaries(t *testing.T) {
	courses, contentA, moduleA, _ := twoCourses()
	studentID := uuid.New()
	completedAt := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)

	progressRepo := &fakeProgressRepo{records: []models.Progress{
		{
			ID: uuid.New(), StudentID: studentID, CourseID: courses[0].ID,
			ContentProgress:   map[uuid.UUID]models.ContentProgress{contentA: {IsCompleted: true}},
			CompletedModules:  map[uuid.UUID]models.CompletedModule{moduleA: {Score: 80}},
			CourseCompletedAt: &completedAt,
		},
	}}
	svc := NewReportService(logger.Nop(), &fakeCourseRepo{published: courses}, progressRepo)

	summaries, err := svc.CourseSummaries(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Algebra", summaries[0].CourseTitle)
	assert.Equal(t, 100, summaries[0].Progress.ProgressPercentage)
	assert.True(t, summaries[0].IsCompleted)
	require.NotNil(t, summaries[0].CompletedAt)
	assert.Equal(t, completedAt, *summaries[0].CompletedAt)

	// Never touched: present with zero progress, not an error.
	assert.Equal(t, "Geometry", summaries[1].CourseTitle)
	assert.Equal(t, 0, summaries[1].Progress.ProgressPercentage)
	assert.False(t, summaries[1].IsCompleted)
}

func TestStudentProgressReport_NoPublishedCourses(t *testing.T) {
	studentID := uuid.New()
	progressRepo := &fakeProgressRepo{records: []models.Progress{
		{ID: uuid.New(), StudentID: studentID, CourseID: uuid.New()},
	}}
	svc := NewReportService(logger.Nop(), &fakeCourseRepo{}, progressRepo)

	rows, err := svc.StudentProgressReport(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].TotalCourses)
	assert.Equal(t, 0, rows[0].CoursePercentage)
}
