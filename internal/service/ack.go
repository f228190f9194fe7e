package service

import (
	"context"

	"github.com/google/uuid"

	"accountservice/internal/errdefs"
	"accountservice/internal/model"
)

// AckService owns read-mark rows. Acknowledging the same notification any
// number of times, from any number of concurrent callers, records it once and
// never fails the duplicates.
type AckService struct {
	notificationRepo NotificationRepository
}

func NewAckService(notificationRepo NotificationRepository) *AckService {
	return &AckService{notificationRepo: notificationRepo}
}

func (s *AckService) MarkRead(ctx context.Context, caller *model.Identity, notificationId uuid.UUID) error {
	if caller == nil {
		return errdefs.ErrAuthentication
	}

	notification, err := s.notificationRepo.GetNotification(ctx, notificationId)
	if err != nil {
		return err
	}
	if caller.Id != notification.RecipientId {
		return errdefs.ErrPermissionDenied
	}

	return s.notificationRepo.MarkRead(ctx, caller.Id, notificationId)
}

func (s *AckService) ListNotifications(ctx context.Context, caller *model.Identity, subjectId uuid.UUID) ([]*model.NotificationWithRead, error) {
	if err := ensureAdminOrSelf(caller, subjectId); err != nil {
		return nil, err
	}
	return s.notificationRepo.ListNotificationsForSubject(ctx, subjectId)
}
