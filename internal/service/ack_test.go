package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"accountservice/internal/errdefs"
	"accountservice/internal/model"
	"accountservice/internal/service"
	"accountservice/internal/service/mocks"
)

func setupAck(t *testing.T) (*service.AckService, *mocks.MockNotificationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockNotificationRepository(ctrl)
	return service.NewAckService(mockRepo), mockRepo
}

// ── MarkRead ────────────────────────────────────────────────────────

func TestMarkRead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := setupAck(t)
		subjectID := uuid.New()
		notificationID := uuid.New()

		mockRepo.EXPECT().GetNotification(gomock.Any(), notificationID).Return(&model.Notification{
			Id:          notificationID,
			RecipientId: subjectID,
		}, nil)
		mockRepo.EXPECT().MarkRead(gomock.Any(), subjectID, notificationID).Return(nil)

		err := svc.MarkRead(context.Background(), identity(subjectID, model.RoleStudent), notificationID)
		require.NoError(t, err)
	})

	t.Run("Idempotent_SecondAckSucceeds", func(t *testing.T) {
		svc, mockRepo := setupAck(t)
		subjectID := uuid.New()
		notificationID := uuid.New()

		mockRepo.EXPECT().GetNotification(gomock.Any(), notificationID).Return(&model.Notification{
			Id:          notificationID,
			RecipientId: subjectID,
		}, nil).Times(2)
		mockRepo.EXPECT().MarkRead(gomock.Any(), subjectID, notificationID).Return(nil).Times(2)

		caller := identity(subjectID, model.RoleStudent)
		require.NoError(t, svc.MarkRead(context.Background(), caller, notificationID))
		require.NoError(t, svc.MarkRead(context.Background(), caller, notificationID))
	})

	t.Run("PermissionDenied_NotRecipient", func(t *testing.T) {
		svc, mockRepo := setupAck(t)
		notificationID := uuid.New()

		mockRepo.EXPECT().GetNotification(gomock.Any(), notificationID).Return(&model.Notification{
			Id:          notificationID,
			RecipientId: uuid.New(),
		}, nil)

		err := svc.MarkRead(context.Background(), identity(uuid.New(), model.RoleStudent), notificationID)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("NotFound_UnknownNotification", func(t *testing.T) {
		svc, mockRepo := setupAck(t)
		notificationID := uuid.New()

		mockRepo.EXPECT().GetNotification(gomock.Any(), notificationID).Return(nil, errdefs.ErrNotFound)

		err := svc.MarkRead(context.Background(), identity(uuid.New(), model.RoleStudent), notificationID)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc, _ := setupAck(t)

		err := svc.MarkRead(context.Background(), nil, uuid.New())
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})
}

// ── ListNotifications ───────────────────────────────────────────────

func TestListNotifications(t *testing.T) {
	t.Run("Success_Self", func(t *testing.T) {
		svc, mockRepo := setupAck(t)
		subjectID := uuid.New()

		expected := []*model.NotificationWithRead{
			{Notification: model.Notification{Id: uuid.New(), RecipientId: subjectID}, Read: true},
			{Notification: model.Notification{Id: uuid.New(), RecipientId: subjectID}, Read: false},
		}
		mockRepo.EXPECT().ListNotificationsForSubject(gomock.Any(), subjectID).Return(expected, nil)

		result, err := svc.ListNotifications(context.Background(), identity(subjectID, model.RoleInstructor), subjectID)
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("Success_Admin", func(t *testing.T) {
		svc, mockRepo := setupAck(t)
		subjectID := uuid.New()

		mockRepo.EXPECT().ListNotificationsForSubject(gomock.Any(), subjectID).Return([]*model.NotificationWithRead{}, nil)

		_, err := svc.ListNotifications(context.Background(), admin(), subjectID)
		require.NoError(t, err)
	})

	t.Run("PermissionDenied_Other", func(t *testing.T) {
		svc, _ := setupAck(t)

		_, err := svc.ListNotifications(context.Background(), identity(uuid.New(), model.RoleStudent), uuid.New())
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}
