package service

import (
	"context"

	"github.com/google/uuid"

	"accountservice/internal/events"
	"accountservice/internal/model"
)

type AccountRepository interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error)
	NewAccountLifecycleTx(ctx context.Context) (AccountLifecycleTx, error)
}

// AccountLifecycleTx is one account transition: locked read, validated write
// and the notification fan-out, committed or rolled back together.
type AccountLifecycleTx interface {
	GetAccountForUpdate(ctx context.Context, id uuid.UUID) (*model.Account, error)
	UpdateAccountLifecycle(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateAccountLifecycleInput) (*model.Account, error)
	CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, input *model.RepositoryCreateEnrollmentInput) (*model.Enrollment, error)
	GetEnrollment(ctx context.Context, studentId uuid.UUID, courseId uuid.UUID) (*model.Enrollment, error)
	ListEnrollmentsByStudent(ctx context.Context, studentId uuid.UUID) ([]*model.Enrollment, error)
	ListEnrollmentsByCourse(ctx context.Context, courseId uuid.UUID) ([]*model.Enrollment, error)
	DeleteEnrollment(ctx context.Context, studentId uuid.UUID, courseId uuid.UUID) error
	NewEnrollmentTx(ctx context.Context) (EnrollmentTx, error)
}

type EnrollmentTx interface {
	GetEnrollmentForUpdate(ctx context.Context, studentId uuid.UUID, courseId uuid.UUID) (*model.Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, id uuid.UUID, status model.EnrollmentStatus) (*model.Enrollment, error)
	CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, input *model.RepositoryCreateAssignmentInput) (*model.InstructorAssignment, error)
	GetAssignment(ctx context.Context, instructorId uuid.UUID, courseId uuid.UUID) (*model.InstructorAssignment, error)
	ListAssignmentsByInstructor(ctx context.Context, instructorId uuid.UUID) ([]*model.InstructorAssignment, error)
	NewAssignmentTx(ctx context.Context) (AssignmentTx, error)
}

type AssignmentTx interface {
	GetAssignmentForUpdate(ctx context.Context, instructorId uuid.UUID, courseId uuid.UUID) (*model.InstructorAssignment, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error)
	UpdateAssignmentStatus(ctx context.Context, id uuid.UUID, status model.AssignmentStatus) (*model.InstructorAssignment, error)
	CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type NotificationRepository interface {
	GetNotification(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	ListNotificationsForSubject(ctx context.Context, subjectId uuid.UUID) ([]*model.NotificationWithRead, error)
	MarkRead(ctx context.Context, subjectId uuid.UUID, notificationId uuid.UUID) error
}

type EventPublisher interface {
	PublishLifecycleEvent(ctx context.Context, event events.LifecycleEvent) error
}

// IdentityInvalidator drops a cached identity after an account transition so
// the middleware re-reads the fresh tuple.
type IdentityInvalidator interface {
	Invalidate(ctx context.Context, accountId uuid.UUID)
}
