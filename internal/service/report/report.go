package report

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service/progress"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	ListPublished(ctx context.Context) ([]models.Course, error)
}

type progressRepo interface {
	ProgressByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Progress, error)
	StudentIDs(ctx context.Context) ([]uuid.UUID, error)
}

// ReportService feeds the dashboards. It has no state of its own: every
// report re-runs the pure aggregation against the current documents, so
// concurrent report requests need no coordination.
type ReportService struct {
	log          logger.Log
	courseRepo   courseRepo
	progressRepo progressRepo
}

func NewReportService(log logger.Log, courses courseRepo, progressRepo progressRepo) *ReportService {
	return &ReportService{
		log:          log,
		courseRepo:   courses,
		progressRepo: progressRepo,
	}
}

// StudentProgressReport reports, per student, how many published courses are
// fully complete. The percentage here is of COURSES completed against all
// published courses — not the within-course item percentage, which
// CourseSummaries exposes. Conflating the two was a long-standing source of
// confusion in the dashboards.
func (s *ReportService) StudentProgressReport(ctx context.Context) ([]models.StudentProgressRow, error) {
	published, err := s.courseRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	students, err := s.progressRepo.StudentIDs(ctx)
	if err != nil {
		return nil, err
	}

	itemsByCourse := make(map[uuid.UUID][]models.GradableItem, len(published))
	for i := range published {
		itemsByCourse[published[i].ID] = progress.EnumerateGradableItems(&published[i])
	}

	rows := make([]models.StudentProgressRow, 0, len(students))
	for _, studentID := range students {
		records, err := s.progressRepo.ProgressByStudent(ctx, studentID)
		if err != nil {
			return nil, err
		}
		byCourse := make(map[uuid.UUID]*models.Progress, len(records))
		for i := range records {
			byCourse[records[i].CourseID] = &records[i]
		}

		completed := 0
		for _, course := range published {
			record, ok := byCourse[course.ID]
			if !ok {
				continue
			}
			summary := progress.ComputeProgress(itemsByCourse[course.ID], record)
			if summary.TotalItems > 0 && summary.CompletedItems >= summary.TotalItems {
				completed++
			}
		}

		percentage := 0
		if len(published) > 0 {
			percentage = int(math.Round(float64(completed) / float64(len(published)) * 100))
		}
		rows = append(rows, models.StudentProgressRow{
			StudentID:        studentID,
			CompletedCourses: completed,
			TotalCourses:     len(published),
			CoursePercentage: percentage,
		})
	}
	return rows, nil
}

// StudentGrades returns the per-course module scores for one student,
// with average/highest/lowest for the grade graphs.
func (s *ReportService) StudentGrades(ctx context.Context, studentID uuid.UUID) ([]models.CourseGrades, error) {
	records, err := s.progressRepo.ProgressByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	grades := make([]models.CourseGrades, 0, len(records))
	for i := range records {
		record := &records[i]
		course, err := s.courseRepo.CourseByID(ctx, record.CourseID)
		if err != nil {
			s.log.ErrorErr("grades: failed to load course", err, "course_id", record.CourseID.String())
			continue
		}

		cg := models.CourseGrades{
			CourseID:    course.ID,
			CourseTitle: course.Title,
			Subject:     course.Subject,
			Scores:      make([]models.ModuleScore, 0, len(record.CompletedModules)),
		}

		// Walk the course tree so score order follows the curriculum,
		// not map iteration.
		sum := 0
		for _, it := range progress.EnumerateGradableItems(course) {
			if it.Kind != models.ItemKindQuiz {
				continue
			}
			cm, ok := record.CompletedModules[it.ModuleID]
			if !ok {
				continue
			}
			cg.Scores = append(cg.Scores, models.ModuleScore{
				ModuleID:      it.ModuleID,
				Score:         cm.Score,
				IsFastTracked: cm.IsFastTracked,
				CompletedAt:   cm.CompletedAt,
			})
			sum += cm.Score
			if cm.Score > cg.HighestScore {
				cg.HighestScore = cm.Score
			}
			if cg.LowestScore == 0 || cm.Score < cg.LowestScore {
				cg.LowestScore = cm.Score
			}
		}
		if len(cg.Scores) > 0 {
			cg.AverageScore = float64(sum) / float64(len(cg.Scores))
		}
		grades = append(grades, cg)
	}
	return grades, nil
}

// CourseSummaries returns the within-course item progress for one student
// across all published courses.
func (s *ReportService) CourseSummaries(ctx context.Context, studentID uuid.UUID) ([]models.CourseSummary, error) {
	published, err := s.courseRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.progressRepo.ProgressByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	byCourse := make(map[uuid.UUID]*models.Progress, len(records))
	for i := range records {
		byCourse[records[i].CourseID] = &records[i]
	}

	summaries := make([]models.CourseSummary, 0, len(published))
	for i := range published {
		course := &published[i]
		record := byCourse[course.ID]
		cs := models.CourseSummary{
			CourseID:    course.ID,
			CourseTitle: course.Title,
			Progress:    progress.ComputeProgress(progress.EnumerateGradableItems(course), record),
		}
		if record != nil && record.CourseCompletedAt != nil {
			cs.IsCompleted = true
			cs.CompletedAt = record.CourseCompletedAt
		}
		summaries = append(summaries, cs)
	}
	return summaries, nil
}
