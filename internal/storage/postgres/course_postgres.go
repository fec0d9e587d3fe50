package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

// CoursePostgres stores each course as one row; the chapter tree is a JSONB
// document so its nested ids stay stable across edits, the way progress
// records expect.
type CoursePostgres struct {
	db *pgxpool.Pool
}

func NewCoursePostgres(db *pgxpool.Pool) *CoursePostgres {
	return &CoursePostgres{db: db}
}

func (r *CoursePostgres) NewCourse(ctx context.Context, course *models.Course) (uuid.UUID, error) {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	chapters, err := chaptersJSON(course.Chapters)
	if err != nil {
		return uuid.Nil, err
	}

	query := `
		INSERT INTO courses (
			id, title, subject, description, teacher_id,
			is_published, chapters, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Subject,
		course.Description,
		course.TeacherID,
		course.IsPublished,
		chapters,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		if pgErr := UnwrapPgError(err); pgErr != nil && pgErr.Code == uniqueViolation {
			return uuid.Nil, app_errors.ErrDuplicateCourse
		}
		return uuid.Nil, fmt.Errorf("insert course: %w", err)
	}
	return course.ID, nil
}

func (r *CoursePostgres) CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	const query = `
        SELECT id, title, subject, description, teacher_id,
               is_published, chapters, created_at, updated_at
          FROM courses
         WHERE id = $1
    `
	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (r *CoursePostgres) CourseBySubject(ctx context.Context, subject string, teacherID uuid.UUID) (*models.Course, error) {
	const query = `
        SELECT id, title, subject, description, teacher_id,
               is_published, chapters, created_at, updated_at
          FROM courses
         WHERE subject = $1 AND teacher_id = $2
    `
	course, err := scanCourse(r.db.QueryRow(ctx, query, subject, teacherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (r *CoursePostgres) UpdateChapters(ctx context.Context, courseID uuid.UUID, chapters []models.Chapter) error {
	doc, err := chaptersJSON(chapters)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE courses SET chapters = $1, updated_at = $2 WHERE id = $3`,
		doc, time.Now().UTC(), courseID,
	)
	if err != nil {
		return fmt.Errorf("update chapters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE courses SET is_published = $1, updated_at = $2 WHERE id = $3`,
		published, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("set published: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) ListPublished(ctx context.Context) ([]models.Course, error) {
	const query = `
        SELECT id, title, subject, description, teacher_id,
               is_published, chapters, created_at, updated_at
          FROM courses
         WHERE is_published
         ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list published courses: %w", err)
	}
	defer rows.Close()
	return collectCourses(rows)
}

func (r *CoursePostgres) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	const query = `
        SELECT id, title, subject, description, teacher_id,
               is_published, chapters, created_at, updated_at
          FROM courses
         WHERE teacher_id = $1
         ORDER BY created_at
    `
	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list courses by teacher: %w", err)
	}
	defer rows.Close()
	return collectCourses(rows)
}

func chaptersJSON(chapters []models.Chapter) ([]byte, error) {
	if chapters == nil {
		chapters = []models.Chapter{}
	}
	doc, err := json.Marshal(chapters)
	if err != nil {
		return nil, fmt.Errorf("marshal chapters: %w", err)
	}
	return doc, nil
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var chapters []byte
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Subject,
		&course.Description,
		&course.TeacherID,
		&course.IsPublished,
		&chapters,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(chapters) > 0 {
		if err := json.Unmarshal(chapters, &course.Chapters); err != nil {
			return nil, fmt.Errorf("unmarshal chapters: %w", err)
		}
	}
	return course, nil
}

func collectCourses(rows pgx.Rows) ([]models.Course, error) {
	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}
