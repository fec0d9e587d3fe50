package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

type courseRepo interface {
	NewCourse(ctx context.Context, course *models.Course) (uuid.UUID, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CourseBySubject(ctx context.Context, subject string, teacherID uuid.UUID) (*models.Course, error)
	UpdateChapters(ctx context.Context, courseID uuid.UUID, chapters []models.Chapter) error
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
	ListPublished(ctx context.Context) ([]models.Course, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error)
}

type searchRepo interface {
	Index(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, size int) ([]uuid.UUID, error)
	Count(ctx context.Context, query string) (int, error)
}

type CourseService struct {
	log        logger.Log
	courseRepo courseRepo
	searchRepo searchRepo
}

func NewCourseService(log logger.Log, courseRepo courseRepo, searchRepo searchRepo) *CourseService {
	return &CourseService{
		log:        log,
		courseRepo: courseRepo,
		searchRepo: searchRepo,
	}
}

// CreateCourse finds or creates the course for a subject+teacher pair; the
// subject doubles as the title, matching how authoring clients use it.
func (s *CourseService) CreateCourse(ctx context.Context, subject string, teacherID uuid.UUID) (*models.Course, error) {
	existing, err := s.courseRepo.CourseBySubject(ctx, subject, teacherID)
	if err == nil {
		return existing, nil
	}

	course := models.Course{
		Title:     subject,
		Subject:   subject,
		TeacherID: teacherID,
	}
	id, err := s.courseRepo.NewCourse(ctx, &course)
	if errors.Is(err, app_errors.ErrDuplicateCourse) {
		// Lost a concurrent create; the winner's row is the course.
		return s.courseRepo.CourseBySubject(ctx, subject, teacherID)
	}
	if err != nil {
		return nil, err
	}
	course.ID = id
	return &course, nil
}

func (s *CourseService) CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.courseRepo.CourseByID(ctx, id)
}

func (s *CourseService) ListPublished(ctx context.Context) ([]models.Course, error) {
	return s.courseRepo.ListPublished(ctx)
}

func (s *CourseService) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	return s.courseRepo.ListByTeacher(ctx, teacherID)
}

func (s *CourseService) AddChapter(ctx context.Context, courseID, teacherID uuid.UUID, title string) (*models.Course, error) {
	course, err := s.ownedCourse(ctx, courseID, teacherID)
	if err != nil {
		return nil, err
	}
	course.Chapters = append(course.Chapters, models.Chapter{ID: uuid.New(), Title: title})
	if err := s.courseRepo.UpdateChapters(ctx, courseID, course.Chapters); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) AddModule(ctx context.Context, courseID, chapterID, teacherID uuid.UUID, title string) (*models.Course, error) {
	course, err := s.ownedCourse(ctx, courseID, teacherID)
	if err != nil {
		return nil, err
	}
	chapter := findChapter(course, chapterID)
	if chapter == nil {
		return nil, app_errors.ErrChapterNotFound
	}
	chapter.Modules = append(chapter.Modules, models.Module{ID: uuid.New(), Title: title})
	if err := s.courseRepo.UpdateChapters(ctx, courseID, course.Chapters); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) AddContent(ctx context.Context, courseID, chapterID, moduleID, teacherID uuid.UUID, content models.Content) (*models.Course, error) {
	course, err := s.ownedCourse(ctx, courseID, teacherID)
	if err != nil {
		return nil, err
	}
	chapter := findChapter(course, chapterID)
	if chapter == nil {
		return nil, app_errors.ErrChapterNotFound
	}
	module := findModuleIn(chapter, moduleID)
	if module == nil {
		return nil, app_errors.ErrModuleNotFound
	}
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	module.Contents = append(module.Contents, content)
	if err := s.courseRepo.UpdateChapters(ctx, courseID, course.Chapters); err != nil {
		return nil, err
	}
	return course, nil
}

// SetModuleQuiz replaces the module's quiz wholesale; a module owns at most
// one.
func (s *CourseService) SetModuleQuiz(ctx context.Context, courseID, chapterID, moduleID, teacherID uuid.UUID, quiz models.Quiz) (*models.Course, error) {
	course, err := s.ownedCourse(ctx, courseID, teacherID)
	if err != nil {
		return nil, err
	}
	chapter := findChapter(course, chapterID)
	if chapter == nil {
		return nil, app_errors.ErrChapterNotFound
	}
	module := findModuleIn(chapter, moduleID)
	if module == nil {
		return nil, app_errors.ErrModuleNotFound
	}
	module.Quiz = &quiz
	if err := s.courseRepo.UpdateChapters(ctx, courseID, course.Chapters); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Publish(ctx context.Context, id, teacherID uuid.UUID) error {
	course, err := s.ownedCourse(ctx, id, teacherID)
	if err != nil {
		return err
	}
	if err := s.courseRepo.SetPublished(ctx, id, true); err != nil {
		return err
	}
	if err := s.searchRepo.Index(ctx, *course); err != nil {
		s.log.ErrorErr("error indexing course", err)
		return err
	}
	return nil
}

func (s *CourseService) Hide(ctx context.Context, id, teacherID uuid.UUID) error {
	if _, err := s.ownedCourse(ctx, id, teacherID); err != nil {
		return err
	}
	if err := s.courseRepo.SetPublished(ctx, id, false); err != nil {
		return err
	}
	if err := s.searchRepo.Delete(ctx, id); err != nil {
		s.log.ErrorErr("error removing course from index", err)
	}
	return nil
}

// SearchCourses resolves catalog matches to previews, skipping ids that have
// vanished from the store since indexing.
func (s *CourseService) SearchCourses(ctx context.Context, query string, size int) ([]models.CoursePreview, int, error) {
	ids, err := s.searchRepo.Search(ctx, query, size)
	if err != nil {
		return nil, 0, fmt.Errorf("course search failed: %w", err)
	}
	if len(ids) == 0 {
		return []models.CoursePreview{}, 0, nil
	}

	total, err := s.searchRepo.Count(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("course search count failed: %w", err)
	}

	previews := make([]models.CoursePreview, 0, len(ids))
	for _, id := range ids {
		c, err := s.courseRepo.CourseByID(ctx, id)
		if err != nil {
			s.log.ErrorErr("search: failed to load course by id", err)
			continue
		}
		previews = append(previews, models.CoursePreview{
			ID:          c.ID,
			Title:       c.Title,
			Subject:     c.Subject,
			Description: c.Description,
			IsPublished: c.IsPublished,
		})
	}
	return previews, total, nil
}

func (s *CourseService) ownedCourse(ctx context.Context, courseID, teacherID uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.TeacherID != teacherID {
		return nil, app_errors.ErrNotCourseTeacher
	}
	return course, nil
}

func findChapter(course *models.Course, chapterID uuid.UUID) *models.Chapter {
	for i := range course.Chapters {
		if course.Chapters[i].ID == chapterID {
			return &course.Chapters[i]
		}
	}
	return nil
}

func findModuleIn(chapter *models.Chapter, moduleID uuid.UUID) *models.Module {
	for i := range chapter.Modules {
		if chapter.Modules[i].ID == moduleID {
			return &chapter.Modules[i]
		}
	}
	return nil
}
