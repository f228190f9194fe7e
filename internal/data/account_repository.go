package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"accountservice/internal/model"
	"accountservice/internal/service"
)

type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	query := `
SELECT id, role, is_approved, active, status, created_at, edited_at
FROM accounts
WHERE id = $1
`
	var account model.Account
	err := pgxscan.Get(ctx, r.db, &account, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &account, nil
}

func (r *AccountRepository) NewAccountLifecycleTx(ctx context.Context) (service.AccountLifecycleTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleError(err)
	}
	return &AccountLifecycleRepository{tx: tx}, nil
}

// AccountLifecycleRepository scopes one account transition to one transaction.
// The FOR UPDATE read serializes concurrent transitions on the same account.
type AccountLifecycleRepository struct {
	tx pgx.Tx
}

func (r *AccountLifecycleRepository) GetAccountForUpdate(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	query := `
SELECT id, role, is_approved, active, status, created_at, edited_at
FROM accounts
WHERE id = $1
FOR UPDATE
`
	var account model.Account
	err := pgxscan.Get(ctx, r.tx, &account, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &account, nil
}

func (r *AccountLifecycleRepository) UpdateAccountLifecycle(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateAccountLifecycleInput) (*model.Account, error) {
	query := `
UPDATE accounts
SET is_approved = $1, active = $2, status = $3, edited_at = now()
WHERE id = $4
RETURNING id, role, is_approved, active, status, created_at, edited_at
`
	var account model.Account
	err := pgxscan.Get(ctx, r.tx, &account, query,
		input.IsApproved,
		input.Active,
		input.Status,
		id,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &account, nil
}

func (r *AccountLifecycleRepository) CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error) {
	return insertNotification(ctx, r.tx, input)
}

func (r *AccountLifecycleRepository) Commit(ctx context.Context) error {
	return r.tx.Commit(ctx)
}

func (r *AccountLifecycleRepository) Rollback(ctx context.Context) error {
	return rollbackTx(ctx, r.tx)
}
