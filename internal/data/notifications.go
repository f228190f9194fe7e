package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"accountservice/internal/model"
)

// insertNotification is shared by the lifecycle transaction repositories so a
// transition and its fan-out commit or roll back together.
func insertNotification(ctx context.Context, tx pgx.Tx, input *model.RepositoryCreateNotificationInput) (*model.Notification, error) {
	query := `
INSERT INTO notifications (id, recipient_id, event_type, body)
VALUES ($1, $2, $3, $4)
RETURNING id, recipient_id, event_type, body, created_at
`
	var notification model.Notification
	err := pgxscan.Get(ctx, tx, &notification, query,
		input.Id,
		input.RecipientId,
		input.EventType,
		input.Body,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &notification, nil
}
