package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"accountservice/internal/errdefs"
	"accountservice/internal/model"
	"accountservice/internal/service"
)

type EnrollmentRepository struct {
	db DB
}

func NewEnrollmentRepository(db DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, input *model.RepositoryCreateEnrollmentInput) (*model.Enrollment, error) {
	query := `
INSERT INTO enrollments (id, student_id, course_id, status)
VALUES ($1, $2, $3, $4)
RETURNING id, student_id, course_id, status, enrolled_at, edited_at
`
	var enrollment model.Enrollment
	err := pgxscan.Get(ctx, r.db, &enrollment, query,
		input.Id,
		input.StudentId,
		input.CourseId,
		input.Status,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &enrollment, nil
}

// GetEnrollment returns the current row for the pair: the non-cancelled row if
// one exists, otherwise the most recent cancelled one.
func (r *EnrollmentRepository) GetEnrollment(ctx context.Context, studentId uuid.UUID, courseId uuid.UUID) (*model.Enrollment, error) {
	query := `
SELECT id, student_id, course_id, status, enrolled_at, edited_at
FROM enrollments
WHERE student_id = $1 AND course_id = $2
ORDER BY (status <> 'cancelled') DESC, enrolled_at DESC
LIMIT 1
`
	var enrollment model.Enrollment
	err := pgxscan.Get(ctx, r.db, &enrollment, query, studentId, courseId)
	if err != nil {
		return nil, handleError(err)
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) ListEnrollmentsByStudent(ctx context.Context, studentId uuid.UUID) ([]*model.Enrollment, error) {
	query := `
SELECT id, student_id, course_id, status, enrolled_at, edited_at
FROM enrollments
WHERE student_id = $1
ORDER BY enrolled_at DESC
`
	var rows []*model.Enrollment
	err := pgxscan.Select(ctx, r.db, &rows, query, studentId)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}

func (r *EnrollmentRepository) ListEnrollmentsByCourse(ctx context.Context, courseId uuid.UUID) ([]*model.Enrollment, error) {
	query := `
SELECT id, student_id, course_id, status, enrolled_at, edited_at
FROM enrollments
WHERE course_id = $1
ORDER BY enrolled_at DESC
`
	var rows []*model.Enrollment
	err := pgxscan.Select(ctx, r.db, &rows, query, courseId)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}

// DeleteEnrollment removes every row for the pair. Unenroll is terminal and
// distinct from cancellation.
func (r *EnrollmentRepository) DeleteEnrollment(ctx context.Context, studentId uuid.UUID, courseId uuid.UUID) error {
	query := `
DELETE FROM enrollments
WHERE student_id = $1 AND course_id = $2
`
	res, err := r.db.Exec(ctx, query, studentId, courseId)
	if err != nil {
		return handleError(err)
	}
	if res.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *EnrollmentRepository) NewEnrollmentTx(ctx context.Context) (service.EnrollmentTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &EnrollmentTxRepository{tx: tx}, nil
}

type EnrollmentTxRepository struct {
	tx pgx.Tx
}

func (r *EnrollmentTxRepository) GetEnrollmentForUpdate(ctx context.Context, studentId uuid.UUID, courseId uuid.UUID) (*model.Enrollment, error) {
	query := `
SELECT id, student_id, course_id, status, enrolled_at, edited_at
FROM enrollments
WHERE student_id = $1 AND course_id = $2
ORDER BY (status <> 'cancelled') DESC, enrolled_at DESC
LIMIT 1
FOR UPDATE
`
	var enrollment model.Enrollment
	err := pgxscan.Get(ctx, r.tx, &enrollment, query, studentId, courseId)
	if err != nil {
		return nil, handleError(err)
	}
	return &enrollment, nil
}

func (r *EnrollmentTxRepository) UpdateEnrollmentStatus(ctx context.Context, id uuid.UUID, status model.EnrollmentStatus) (*model.Enrollment, error) {
	query := `
UPDATE enrollments
SET status = $1, edited_at = now()
WHERE id = $2
RETURNING id, student_id, course_id, status, enrolled_at, edited_at
`
	var enrollment model.Enrollment
	err := pgxscan.Get(ctx, r.tx, &enrollment, query, status, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &enrollment, nil
}

func (r *EnrollmentTxRepository) CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error) {
	return insertNotification(ctx, r.tx, input)
}

func (r *EnrollmentTxRepository) Commit(ctx context.Context) error {
	return r.tx.Commit(ctx)
}

func (r *EnrollmentTxRepository) Rollback(ctx context.Context) error {
	return rollbackTx(ctx, r.tx)
}
