package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"accountservice/internal/model"
)

type NotificationRepository struct {
	db DB
}

func NewNotificationRepository(db DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) GetNotification(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	query := `
SELECT id, recipient_id, event_type, body, created_at
FROM notifications
WHERE id = $1
`
	var notification model.Notification
	err := pgxscan.Get(ctx, r.db, &notification, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &notification, nil
}

func (r *NotificationRepository) ListNotificationsForSubject(ctx context.Context, subjectId uuid.UUID) ([]*model.NotificationWithRead, error) {
	query := `
SELECT n.id, n.recipient_id, n.event_type, n.body, n.created_at,
	rm.subject_id IS NOT NULL AS read
FROM notifications n
LEFT JOIN read_marks rm ON rm.notification_id = n.id AND rm.subject_id = $1
WHERE n.recipient_id = $1
ORDER BY n.created_at DESC
`
	var rows []*model.NotificationWithRead
	err := pgxscan.Select(ctx, r.db, &rows, query, subjectId)
	if err != nil {
		return nil, handleError(err)
	}
	return rows, nil
}

// MarkRead records the acknowledgment at most once per (subject, notification)
// pair. ON CONFLICT DO NOTHING makes concurrent duplicate submissions succeed
// without a second row and without an error.
func (r *NotificationRepository) MarkRead(ctx context.Context, subjectId uuid.UUID, notificationId uuid.UUID) error {
	query := `
INSERT INTO read_marks (subject_id, notification_id)
VALUES ($1, $2)
ON CONFLICT (subject_id, notification_id) DO NOTHING
`
	_, err := r.db.Exec(ctx, query, subjectId, notificationId)
	if err != nil {
		return handleError(err)
	}
	return nil
}
