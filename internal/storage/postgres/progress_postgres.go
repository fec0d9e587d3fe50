package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app_errors"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/models"
)

// ProgressPostgres keeps one progress row per student+course (unique key)
// with the per-content and per-module entries in child tables. Mutations are
// single conditional statements, never read-modify-write, so concurrent
// submissions cannot lose updates.
type ProgressPostgres struct {
	db *pgxpool.Pool
}

func NewProgressPostgres(db *pgxpool.Pool) *ProgressPostgres {
	return &ProgressPostgres{db: db}
}

func (r *ProgressPostgres) ProgressByStudentCourse(ctx context.Context, studentID, courseID uuid.UUID) (*models.Progress, error) {
	const query = `
        SELECT id, student_id, course_id, last_attempted_module, course_completed_at, updated_at
          FROM progress
         WHERE student_id = $1 AND course_id = $2
    `
	record, err := scanProgress(r.db.QueryRow(ctx, query, studentID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrProgressNotFound
		}
		return nil, err
	}
	if err := r.loadEntries(ctx, []*models.Progress{record}); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *ProgressPostgres) ProgressByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Progress, error) {
	const query = `
        SELECT id, student_id, course_id, last_attempted_module, course_completed_at, updated_at
          FROM progress
         WHERE student_id = $1
    `
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("query progress by student: %w", err)
	}
	defer rows.Close()

	var records []models.Progress
	for rows.Next() {
		record, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*models.Progress, len(records))
	for i := range records {
		refs[i] = &records[i]
	}
	if err := r.loadEntries(ctx, refs); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ProgressPostgres) StudentIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT student_id FROM progress ORDER BY student_id`)
	if err != nil {
		return nil, fmt.Errorf("query student ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UpsertContentProgress accumulates time and marks completion for one
// content item. Completion is sticky (OR), time is additive.
func (r *ProgressPostgres) UpsertContentProgress(ctx context.Context, studentID, courseID, contentID uuid.UUID, timeSpentDelta int, completed bool, at time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	progressID, err := ensureProgress(ctx, tx, studentID, courseID, at)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO content_progress (progress_id, content_id, time_spent_seconds, is_completed, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (progress_id, content_id) DO UPDATE
		SET time_spent_seconds = content_progress.time_spent_seconds + EXCLUDED.time_spent_seconds,
		    is_completed = content_progress.is_completed OR EXCLUDED.is_completed,
		    updated_at = EXCLUDED.updated_at
	`
	if _, err := tx.Exec(ctx, query, progressID, contentID, timeSpentDelta, completed, at); err != nil {
		return fmt.Errorf("upsert content progress: %w", err)
	}
	return tx.Commit(ctx)
}

// UpsertCompletedModule records a passed quiz. The conditional update is the
// monotonic-score policy: an existing row survives unless the new score is
// strictly greater, in which case score, fast-track flag and timestamp move
// together.
func (r *ProgressPostgres) UpsertCompletedModule(ctx context.Context, studentID, courseID, moduleID uuid.UUID, cm models.CompletedModule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	progressID, err := ensureProgress(ctx, tx, studentID, courseID, cm.CompletedAt)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO completed_modules (progress_id, module_id, score, is_fast_tracked, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (progress_id, module_id) DO UPDATE
		SET score = EXCLUDED.score,
		    is_fast_tracked = EXCLUDED.is_fast_tracked,
		    completed_at = EXCLUDED.completed_at
		WHERE completed_modules.score < EXCLUDED.score
	`
	if _, err := tx.Exec(ctx, query, progressID, moduleID, cm.Score, cm.IsFastTracked, cm.CompletedAt); err != nil {
		return fmt.Errorf("upsert completed module: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *ProgressPostgres) SetLastAttemptedModule(ctx context.Context, studentID, courseID, moduleID uuid.UUID, at time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	progressID, err := ensureProgress(ctx, tx, studentID, courseID, at)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE progress SET last_attempted_module = $1, updated_at = $2 WHERE id = $3`,
		moduleID, at, progressID,
	); err != nil {
		return fmt.Errorf("set last attempted module: %w", err)
	}
	return tx.Commit(ctx)
}

// SetCourseCompletedAt stamps the completion date once. If another request
// stamped it first, the stored date wins and is returned.
func (r *ProgressPostgres) SetCourseCompletedAt(ctx context.Context, studentID, courseID uuid.UUID, at time.Time) (time.Time, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer tx.Rollback(ctx)

	progressID, err := ensureProgress(ctx, tx, studentID, courseID, at)
	if err != nil {
		return time.Time{}, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE progress SET course_completed_at = $1 WHERE id = $2 AND course_completed_at IS NULL`,
		at, progressID,
	); err != nil {
		return time.Time{}, fmt.Errorf("set course completed at: %w", err)
	}

	var stored time.Time
	if err := tx.QueryRow(ctx,
		`SELECT course_completed_at FROM progress WHERE id = $1`, progressID,
	).Scan(&stored); err != nil {
		return time.Time{}, fmt.Errorf("read course completed at: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return time.Time{}, err
	}
	return stored, nil
}

// ensureProgress creates the progress row lazily on first interaction and
// returns its id. The unique (student_id, course_id) key makes this safe
// under concurrent first interactions.
func ensureProgress(ctx context.Context, tx pgx.Tx, studentID, courseID uuid.UUID, at time.Time) (uuid.UUID, error) {
	query := `
		INSERT INTO progress (id, student_id, course_id, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, course_id) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, uuid.New(), studentID, courseID, at).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("ensure progress record: %w", err)
	}
	return id, nil
}

func scanProgress(row pgx.Row) (*models.Progress, error) {
	record := &models.Progress{
		ContentProgress:  make(map[uuid.UUID]models.ContentProgress),
		CompletedModules: make(map[uuid.UUID]models.CompletedModule),
	}
	err := row.Scan(
		&record.ID,
		&record.StudentID,
		&record.CourseID,
		&record.LastAttemptedModule,
		&record.CourseCompletedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *ProgressPostgres) loadEntries(ctx context.Context, records []*models.Progress) error {
	if len(records) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*models.Progress, len(records))
	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
		ids = append(ids, rec.ID)
	}

	contentRows, err := r.db.Query(ctx, `
        SELECT progress_id, content_id, time_spent_seconds, is_completed, updated_at
          FROM content_progress
         WHERE progress_id = ANY($1)
    `, ids)
	if err != nil {
		return fmt.Errorf("query content progress: %w", err)
	}
	defer contentRows.Close()
	for contentRows.Next() {
		var progressID, contentID uuid.UUID
		var cp models.ContentProgress
		if err := contentRows.Scan(&progressID, &contentID, &cp.TimeSpentSeconds, &cp.IsCompleted, &cp.UpdatedAt); err != nil {
			return err
		}
		byID[progressID].ContentProgress[contentID] = cp
	}
	if err := contentRows.Err(); err != nil {
		return err
	}

	moduleRows, err := r.db.Query(ctx, `
        SELECT progress_id, module_id, score, is_fast_tracked, completed_at
          FROM completed_modules
         WHERE progress_id = ANY($1)
    `, ids)
	if err != nil {
		return fmt.Errorf("query completed modules: %w", err)
	}
	defer moduleRows.Close()
	for moduleRows.Next() {
		var progressID, moduleID uuid.UUID
		var cm models.CompletedModule
		if err := moduleRows.Scan(&progressID, &moduleID, &cm.Score, &cm.IsFastTracked, &cm.CompletedAt); err != nil {
			return err
		}
		byID[progressID].CompletedModules[moduleID] = cm
	}
	return moduleRows.Err()
}
