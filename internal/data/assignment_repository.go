package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"accountservice/internal/model"
	"accountservice/internal/service"
)

type AssignmentRepository struct {
	db DB
}

func NewAssignmentRepository(db DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) CreateAssignment(ctx context.Context, input *model.RepositoryCreateAssignmentInput) (*model.InstructorAssignment, error) {
	query := `
INSERT INTO instructor_assignments (id, instructor_id, course_id, role_desc, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, instructor_id, course_id, role_desc, status, created_at, edited_at
`
	var assignment model.InstructorAssignment
	err := pgxscan.Get(ctx, r.db, &assignment, query,
		input.Id,
		input.InstructorId,
		input.CourseId,
		input.RoleDesc,
		input.Status,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) GetAssignment(ctx context.Context, instructorId uuid.UUID, courseId uuid.UUID) (*model.InstructorAssignment, error) {
	query := `
SELECT id, instructor_id, course_id, role_desc, status, created_at, edited_at
FROM instructor_assignments
WHERE instructor_id = $1 AND course_id = $2
`
	var assignment model.InstructorAssignment
	err := pgxscan.Get(ctx, r.db, &assignment, query, instructorId, courseId)
	if err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ListAssignmentsByInstructor(ctx context.Context, instructorId uuid.UUID) ([]*model.InstructorAssignment, error) {
	query := `
SELECT id, instructor_id, course_id, role_desc, status, created_at, edited_at
FROM instructor_assignments
WHERE instructor_id = $1
ORDER BY created_at DESC
`
	var rows []*model.InstructorAssignment
	err := pgxscan.Select(ctx, r.db, &rows, query, instructorId)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}

func (r *AssignmentRepository) NewAssignmentTx(ctx context.Context) (service.AssignmentTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &AssignmentTxRepository{tx: tx}, nil
}

type AssignmentTxRepository struct {
	tx pgx.Tx
}

func (r *AssignmentTxRepository) GetAssignmentForUpdate(ctx context.Context, instructorId uuid.UUID, courseId uuid.UUID) (*model.InstructorAssignment, error) {
	query := `
SELECT id, instructor_id, course_id, role_desc, status, created_at, edited_at
FROM instructor_assignments
WHERE instructor_id = $1 AND course_id = $2
FOR UPDATE
`
	var assignment model.InstructorAssignment
	err := pgxscan.Get(ctx, r.tx, &assignment, query, instructorId, courseId)
	if err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

// GetAccount reads the target account inside the transaction so the
// approved-instructor precondition cannot race an account transition.
func (r *AssignmentTxRepository) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	query := `
SELECT id, role, is_approved, active, status, created_at, edited_at
FROM accounts
WHERE id = $1
`
	var account model.Account
	err := pgxscan.Get(ctx, r.tx, &account, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &account, nil
}

func (r *AssignmentTxRepository) UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status model.AssignmentStatus) (*model.InstructorAssignment, error) {
	query := `
UPDATE instructor_assignments
SET status = $1, edited_at = now()
WHERE id = $2
RETURNING id, instructor_id, course_id, role_desc, status, created_at, edited_at
`
	var assignment model.InstructorAssignment
	err := pgxscan.Get(ctx, r.tx, &assignment, query, status, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentTxRepository) CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error) {
	return insertNotification(ctx, r.tx, input)
}

func (r *AssignmentTxRepository) Commit(ctx context.Context) error {
	return r.tx.Commit(ctx)
}

func (r *AssignmentTxRepository) Rollback(ctx context.Context) error {
	return rollbackTx(ctx, r.tx)
}
