package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"accountservice/internal/errdefs"
	"accountservice/internal/events"
	"accountservice/internal/logging"
	"accountservice/internal/model"
)

// LifecycleService is the only component that mutates account, enrollment and
// assignment lifecycle fields. Every mutation is one transaction: locked read,
// transition check, write, notification fan-out.
type LifecycleService struct {
	accountRepo      AccountRepository
	enrollmentRepo   EnrollmentRepository
	assignmentRepo   AssignmentRepository
	notificationRepo NotificationRepository
	publisher        EventPublisher
	invalidator      IdentityInvalidator
}

func NewLifecycleService(
	accountRepo AccountRepository,
	enrollmentRepo EnrollmentRepository,
	assignmentRepo AssignmentRepository,
	notificationRepo NotificationRepository,
	publisher EventPublisher,
	invalidator IdentityInvalidator,
) *LifecycleService {
	return &LifecycleService{
		accountRepo:      accountRepo,
		enrollmentRepo:   enrollmentRepo,
		assignmentRepo:   assignmentRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		invalidator:      invalidator,
	}
}

// ── Accounts ────────────────────────────────────────────────────────

func (s *LifecycleService) SetApproval(ctx context.Context, caller *model.Identity, input *model.SetApprovalInput) (*model.Account, error) {
	if err := ensureAdmin(caller); err != nil {
		return nil, err
	}

	tx, err := s.accountRepo.NewAccountLifecycleTx(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, input.AccountId)
	if err != nil {
		return nil, err
	}
	if account.Role == model.RoleAdmin {
		return nil, fmt.Errorf("%w: admin accounts are not managed here", errdefs.ErrNotFound)
	}

	if account.IsApproved == input.Approve && model.AccountFlagsConsistent(account) {
		return account, nil
	}

	update := &model.RepositoryUpdateAccountLifecycleInput{
		IsApproved: input.Approve,
		Active:     account.Active,
		Status:     account.Status,
	}
	eventType := events.EventAccountApproved
	if !input.Approve {
		// Approval is upstream of activity: revoking it always deactivates.
		update.Active = false
		update.Status = model.AccountStatusPending
		eventType = events.EventAccountApprovalRevoked
	}

	updated, err := tx.UpdateAccountLifecycle(ctx, input.AccountId, update)
	if err != nil {
		return nil, err
	}

	if err := s.notifyTx(ctx, tx, updated.Id, eventType); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.afterAccountTransition(ctx, updated, eventType)
	return updated, nil
}

func (s *LifecycleService) SetActive(ctx context.Context, caller *model.Identity, input *model.SetActiveInput) (*model.Account, error) {
	if err := ensureAdmin(caller); err != nil {
		return nil, err
	}

	tx, err := s.accountRepo.NewAccountLifecycleTx(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, input.AccountId)
	if err != nil {
		return nil, err
	}
	if account.Role == model.RoleAdmin {
		return nil, fmt.Errorf("%w: admin accounts are not managed here", errdefs.ErrNotFound)
	}

	if input.Active && !account.IsApproved {
		return nil, fmt.Errorf("%w: account is not approved", errdefs.ErrFailedPrecondition)
	}

	if account.Active == input.Active && model.AccountFlagsConsistent(account) {
		return account, nil
	}

	update := &model.RepositoryUpdateAccountLifecycleInput{
		IsApproved: account.IsApproved,
		Active:     input.Active,
		Status:     model.AccountStatusForActive(input.Active),
	}
	eventType := events.EventAccountActivated
	if !input.Active {
		eventType = events.EventAccountDeactivated
	}

	updated, err := tx.UpdateAccountLifecycle(ctx, input.AccountId, update)
	if err != nil {
		return nil, err
	}

	if err := s.notifyTx(ctx, tx, updated.Id, eventType); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.afterAccountTransition(ctx, updated, eventType)
	return updated, nil
}

func (s *LifecycleService) GetAccount(ctx context.Context, caller *model.Identity, id uuid.UUID) (*model.Account, error) {
	if err := ensureAdminOrSelf(caller, id); err != nil {
		return nil, err
	}
	return s.accountRepo.GetAccount(ctx, id)
}

// ── Enrollments ─────────────────────────────────────────────────────

func (s *LifecycleService) RequestEnrollment(ctx context.Context, caller *model.Identity, input *model.RequestEnrollmentInput) (*model.Enrollment, error) {
	if err := ensureAdminOrSelf(caller, input.StudentId); err != nil {
		return nil, err
	}

	student, err := s.accountRepo.GetAccount(ctx, input.StudentId)
	if err != nil {
		return nil, err
	}
	if student.Role != model.RoleStudent {
		return nil, fmt.Errorf("%w: account is not a student", errdefs.ErrNotFound)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.CreateEnrollment(ctx, &model.RepositoryCreateEnrollmentInput{
		Id:        id,
		StudentId: input.StudentId,
		CourseId:  input.CourseId,
		Status:    model.EnrollmentStatusPending,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.LifecycleEvent{
		EventType: events.EventEnrollmentRequested,
		SubjectId: enrollment.StudentId.String(),
		CourseId:  enrollment.CourseId.String(),
		Status:    enrollment.Status.String(),
	})
	return enrollment, nil
}

func (s *LifecycleService) SetEnrollmentStatus(ctx context.Context, caller *model.Identity, input *model.SetEnrollmentStatusInput) (*model.Enrollment, error) {
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown enrollment status %q", errdefs.ErrValidation, input.Status)
	}
	// A student may cancel their own enrollment, nothing else.
	if !caller.IsAdmin() {
		if caller == nil || caller.Id != input.StudentId || input.Status != model.EnrollmentStatusCancelled {
			return nil, errdefs.ErrPermissionDenied
		}
	}

	tx, err := s.enrollmentRepo.NewEnrollmentTx(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	enrollment, err := tx.GetEnrollmentForUpdate(ctx, input.StudentId, input.CourseId)
	if err != nil {
		return nil, err
	}

	if enrollment.Status == input.Status {
		return enrollment, nil
	}
	if !model.CanTransitionEnrollment(enrollment.Status, input.Status) {
		return nil, fmt.Errorf("%w: enrollment is %s", errdefs.ErrConflict, enrollment.Status)
	}

	updated, err := tx.UpdateEnrollmentStatus(ctx, enrollment.Id, input.Status)
	if err != nil {
		return nil, err
	}

	eventType := events.EventEnrollmentActivated
	if input.Status == model.EnrollmentStatusCancelled {
		eventType = events.EventEnrollmentCancelled
	}
	if err := s.notifyTx(ctx, tx, updated.StudentId, eventType); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publish(ctx, events.LifecycleEvent{
		EventType: eventType,
		SubjectId: updated.StudentId.String(),
		CourseId:  updated.CourseId.String(),
		Status:    updated.Status.String(),
	})
	return updated, nil
}

func (s *LifecycleService) RemoveEnrollment(ctx context.Context, caller *model.Identity, studentId uuid.UUID, courseId uuid.UUID) error {
	if err := ensureAdmin(caller); err != nil {
		return err
	}

	if err := s.enrollmentRepo.DeleteEnrollment(ctx, studentId, courseId); err != nil {
		return err
	}

	s.publish(ctx, events.LifecycleEvent{
		EventType: events.EventEnrollmentRemoved,
		SubjectId: studentId.String(),
		CourseId:  courseId.String(),
	})
	return nil
}

func (s *LifecycleService) GetEnrollment(ctx context.Context, caller *model.Identity, studentId uuid.UUID, courseId uuid.UUID) (*model.Enrollment, error) {
	if err := ensureAdminOrSelf(caller, studentId); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.GetEnrollment(ctx, studentId, courseId)
}

func (s *LifecycleService) ListEnrollmentsForStudent(ctx context.Context, caller *model.Identity, studentId uuid.UUID) ([]*model.Enrollment, error) {
	if err := ensureAdminOrSelf(caller, studentId); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ListEnrollmentsByStudent(ctx, studentId)
}

func (s *LifecycleService) ListEnrollmentsForCourse(ctx context.Context, caller *model.Identity, courseId uuid.UUID) ([]*model.Enrollment, error) {
	if caller == nil || (caller.Role != model.RoleAdmin && caller.Role != model.RoleInstructor) {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.enrollmentRepo.ListEnrollmentsByCourse(ctx, courseId)
}

// ── Instructor assignments ──────────────────────────────────────────

func (s *LifecycleService) RequestAssignment(ctx context.Context, caller *model.Identity, input *model.RequestAssignmentInput) (*model.InstructorAssignment, error) {
	if err := ensureAdmin(caller); err != nil {
		return nil, err
	}

	instructor, err := s.accountRepo.GetAccount(ctx, input.InstructorId)
	if err != nil {
		return nil, err
	}
	if instructor.Role != model.RoleInstructor {
		return nil, fmt.Errorf("%w: account is not an instructor", errdefs.ErrNotFound)
	}

	roleDesc := "instructor"
	if input.RoleDesc != nil && *input.RoleDesc != "" {
		roleDesc = *input.RoleDesc
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.CreateAssignment(ctx, &model.RepositoryCreateAssignmentInput{
		Id:           id,
		InstructorId: input.InstructorId,
		CourseId:     input.CourseId,
		RoleDesc:     roleDesc,
		Status:       model.AssignmentStatusPending,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.LifecycleEvent{
		EventType: events.EventAssignmentRequested,
		SubjectId: assignment.InstructorId.String(),
		CourseId:  assignment.CourseId.String(),
		Status:    assignment.Status.String(),
	})
	return assignment, nil
}

func (s *LifecycleService) SetAssignmentStatus(ctx context.Context, caller *model.Identity, input *model.SetAssignmentStatusInput) (*model.InstructorAssignment, error) {
	if err := ensureAdmin(caller); err != nil {
		return nil, err
	}
	if !input.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown assignment status %q", errdefs.ErrValidation, input.Status)
	}

	tx, err := s.assignmentRepo.NewAssignmentTx(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, tx)

	assignment, err := tx.GetAssignmentForUpdate(ctx, input.InstructorId, input.CourseId)
	if err != nil {
		return nil, err
	}

	if assignment.Status == input.Status {
		return assignment, nil
	}
	if !model.CanTransitionAssignment(assignment.Status, input.Status) {
		return nil, fmt.Errorf("%w: assignment is %s", errdefs.ErrConflict, assignment.Status)
	}

	if input.Status == model.AssignmentStatusActive {
		instructor, err := tx.GetAccount(ctx, input.InstructorId)
		if err != nil {
			return nil, err
		}
		if instructor.Role != model.RoleInstructor || !instructor.IsApproved {
			return nil, fmt.Errorf("%w: account is not an approved instructor", errdefs.ErrFailedPrecondition)
		}
	}

	updated, err := tx.UpdateAssignmentStatus(ctx, assignment.Id, input.Status)
	if err != nil {
		return nil, err
	}

	eventType := events.EventAssignmentActivated
	if input.Status == model.AssignmentStatusRevoked {
		eventType = events.EventAssignmentRevoked
	}
	if err := s.notifyTx(ctx, tx, updated.InstructorId, eventType); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publish(ctx, events.LifecycleEvent{
		EventType: eventType,
		SubjectId: updated.InstructorId.String(),
		CourseId:  updated.CourseId.String(),
		Status:    updated.Status.String(),
	})
	return updated, nil
}

func (s *LifecycleService) ListAssignmentsForInstructor(ctx context.Context, caller *model.Identity, instructorId uuid.UUID) ([]*model.InstructorAssignment, error) {
	if err := ensureAdminOrSelf(caller, instructorId); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListAssignmentsByInstructor(ctx, instructorId)
}

// ── helpers ─────────────────────────────────────────────────────────

type notifyTx interface {
	CreateNotification(ctx context.Context, input *model.RepositoryCreateNotificationInput) (*model.Notification, error)
}

func (s *LifecycleService) notifyTx(ctx context.Context, tx notifyTx, recipientId uuid.UUID, eventType string) error {
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	_, err = tx.CreateNotification(ctx, &model.RepositoryCreateNotificationInput{
		Id:          id,
		RecipientId: recipientId,
		EventType:   eventType,
		Body:        notificationBody(eventType),
	})
	return err
}

func notificationBody(eventType string) string {
	switch eventType {
	case events.EventAccountApproved:
		return "Your account has been approved."
	case events.EventAccountApprovalRevoked:
		return "Your account approval has been revoked."
	case events.EventAccountActivated:
		return "Your account has been activated."
	case events.EventAccountDeactivated:
		return "Your account has been deactivated."
	case events.EventEnrollmentActivated:
		return "Your enrollment is now active."
	case events.EventEnrollmentCancelled:
		return "Your enrollment has been cancelled."
	case events.EventAssignmentActivated:
		return "Your course assignment is now active."
	case events.EventAssignmentRevoked:
		return "Your course assignment has been revoked."
	default:
		return eventType
	}
}

// afterAccountTransition runs the post-commit consequences of an account
// transition. The mutation is already durable; failures here are logged only.
func (s *LifecycleService) afterAccountTransition(ctx context.Context, account *model.Account, eventType string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, account.Id)
	}
	s.publish(ctx, events.LifecycleEvent{
		EventType: eventType,
		SubjectId: account.Id.String(),
		Status:    account.Status.String(),
	})
}

func (s *LifecycleService) publish(ctx context.Context, event events.LifecycleEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLifecycleEvent(ctx, event); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to publish lifecycle event",
				zap.String("event_type", event.EventType), zap.Error(err))
		}
	}
}

func rollback(ctx context.Context, tx interface {
	Rollback(ctx context.Context) error
}) {
	if err := tx.Rollback(ctx); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to rollback", zap.Error(err))
		}
	}
}

func ensureAdmin(caller *model.Identity) error {
	if !caller.IsAdmin() {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

func ensureAdminOrSelf(caller *model.Identity, id uuid.UUID) error {
	if caller == nil {
		return errdefs.ErrAuthentication
	}
	if caller.IsAdmin() || caller.Id == id {
		return nil
	}
	return errdefs.ErrPermissionDenied
}
