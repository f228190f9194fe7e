package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"accountservice/internal/ctxdata"
	"accountservice/internal/errdefs"
	"accountservice/internal/logging"
	"accountservice/internal/model"
)

type LifecycleService interface {
	SetApproval(ctx context.Context, caller *model.Identity, input *model.SetApprovalInput) (*model.Account, error)
	SetActive(ctx context.Context, caller *model.Identity, input *model.SetActiveInput) (*model.Account, error)
	GetAccount(ctx context.Context, caller *model.Identity, id uuid.UUID) (*model.Account, error)
	RequestEnrollment(ctx context.Context, caller *model.Identity, input *model.RequestEnrollmentInput) (*model.Enrollment, error)
	SetEnrollmentStatus(ctx context.Context, caller *model.Identity, input *model.SetEnrollmentStatusInput) (*model.Enrollment, error)
	RemoveEnrollment(ctx context.Context, caller *model.Identity, studentId uuid.UUID, courseId uuid.UUID) error
	GetEnrollment(ctx context.Context, caller *model.Identity, studentId uuid.UUID, courseId uuid.UUID) (*model.Enrollment, error)
	ListEnrollmentsForStudent(ctx context.Context, caller *model.Identity, studentId uuid.UUID) ([]*model.Enrollment, error)
	ListEnrollmentsForCourse(ctx context.Context, caller *model.Identity, courseId uuid.UUID) ([]*model.Enrollment, error)
	RequestAssignment(ctx context.Context, caller *model.Identity, input *model.RequestAssignmentInput) (*model.InstructorAssignment, error)
	SetAssignmentStatus(ctx context.Context, caller *model.Identity, input *model.SetAssignmentStatusInput) (*model.InstructorAssignment, error)
	ListAssignmentsForInstructor(ctx context.Context, caller *model.Identity, instructorId uuid.UUID) ([]*model.InstructorAssignment, error)
}

type AckService interface {
	MarkRead(ctx context.Context, caller *model.Identity, notificationId uuid.UUID) error
	ListNotifications(ctx context.Context, caller *model.Identity, subjectId uuid.UUID) ([]*model.NotificationWithRead, error)
}

type Handler struct {
	lifecycle LifecycleService
	ack       AckService
}

func New(lifecycle LifecycleService, ack AckService) *Handler {
	return &Handler{lifecycle: lifecycle, ack: ack}
}

func (h *Handler) RegisterRoutes(r chi.Router, identityMiddleware func(http.Handler) http.Handler) {
	r.With(identityMiddleware).Group(func(r chi.Router) {
		r.Get("/accounts/{id}", h.GetAccount)
		r.Patch("/accounts/{id}/approval", h.SetApproval)
		r.Patch("/accounts/{id}/active", h.SetActive)

		r.Post("/enrollments", h.RequestEnrollment)
		r.Get("/enrollments/by-student/{id}", h.ListEnrollmentsByStudent)
		r.Get("/enrollments/by-course/{id}", h.ListEnrollmentsByCourse)
		r.Get("/enrollments/{student_id}/{course_id}", h.GetEnrollment)
		r.Patch("/enrollments/{student_id}/{course_id}", h.SetEnrollmentStatus)
		r.Delete("/enrollments/{student_id}/{course_id}", h.RemoveEnrollment)

		r.Post("/assignments", h.RequestAssignment)
		r.Get("/assignments/by-instructor/{id}", h.ListAssignmentsByInstructor)
		r.Patch("/assignments/{instructor_id}/{course_id}", h.SetAssignmentStatus)

		r.Get("/notifications/by-subject/{id}", h.ListNotifications)
		r.Post("/notifications/{id}/read", h.MarkRead)
	})
}

// ── accounts ────────────────────────────────────────────────────────

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	caller, id, err := callerAndPathId(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.lifecycle.GetAccount(r.Context(), caller, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *Handler) SetApproval(w http.ResponseWriter, r *http.Request) {
	caller, id, err := callerAndPathId(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req setApprovalRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.lifecycle.SetApproval(r.Context(), caller, &model.SetApprovalInput{
		AccountId: id,
		Approve:   req.Approve,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	caller, id, err := callerAndPathId(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req setActiveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.lifecycle.SetActive(r.Context(), caller, &model.SetActiveInput{
		AccountId: id,
		Active:    req.Active,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// ── enrollments ─────────────────────────────────────────────────────

func (h *Handler) RequestEnrollment(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromContext(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req requestEnrollmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	studentId, err := uuid.Parse(req.StudentId)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid student_id", errdefs.ErrValidation))
		return
	}
	courseId, err := uuid.Parse(req.CourseId)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid course_id", errdefs.ErrValidation))
		return
	}

	enrollment, err := h.lifecycle.RequestEnrollment(r.Context(), caller, &model.RequestEnrollmentInput{
		StudentId: studentId,
		CourseId:  courseId,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEnrollmentResponse(enrollment))
}

func (h *Handler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	caller, studentId, courseId, err := callerAndPairIds(r, "student_id", "course_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	enrollment, err := h.lifecycle.GetEnrollment(r.Context(), caller, studentId, courseId)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEnrollmentResponse(enrollment))
}

func (h *Handler) SetEnrollmentStatus(w http.ResponseWriter, r *http.Request) {
	caller, studentId, courseId, err := callerAndPairIds(r, "student_id", "course_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req setStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	status, ok := model.EnrollmentStatusFromString(req.Status)
	if !ok {
		writeError(w, r, fmt.Errorf("%w: unknown status %q", errdefs.ErrValidation, req.Status))
		return
	}

	enrollment, err := h.lifecycle.SetEnrollmentStatus(r.Context(), caller, &model.SetEnrollmentStatusInput{
		StudentId: studentId,
		CourseId:  courseId,
		Status:    status,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEnrollmentResponse(enrollment))
}

func (h *Handler) RemoveEnrollment(w http.ResponseWriter, r *http.Request) {
	caller, studentId, courseId, err := callerAndPairIds(r, "student_id", "course_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.lifecycle.RemoveEnrollment(r.Context(), caller, studentId, courseId); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListEnrollmentsByStudent(w http.ResponseWriter, r *http.Request) {
	caller, id, err := callerAndPathId(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.lifecycle.ListEnrollmentsForStudent(r.Context(), caller, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEnrollmentResponses(list))
}

func (h *Handler) ListEnrollmentsByCourse(w http.ResponseWriter, r *http.Request) {
	caller, id, err := callerAndPathId(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.lifecycle.ListEnrollmentsForCourse(r.Context(), caller, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEnrollmentResponses(list))
}

// ── assignments ─────────────────────────────────────────────────────

func (h *Handler) RequestAssignment(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromContext(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req requestAssignmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	instructorId, err := uuid.Parse(req.InstructorId)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid instructor_id", errdefs.ErrValidation))
		return
	}
	courseId, err := uuid.Parse(req.CourseId)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid course_id", errdefs.ErrValidation))
		return
	}

	assignment, err := h.lifecycle.RequestAssignment(r.Context(), caller, &model.RequestAssignmentInput{
		InstructorId: instructorId,
		CourseId:     courseId,
		RoleDesc:     req.RoleDesc,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAssignmentResponse(assignment))
}

func (h *Handler) SetAssignmentStatus(w http.ResponseWriter, r *http.Request) {
	caller, instructorId, courseId, err := callerAndPairIds(r, "instructor_id", "course_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req setStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	status, ok := model.AssignmentStatusFromString(req.Status)
	if !ok {
		writeError(w, r, fmt.Errorf("%w: unknown status %q", errdefs.ErrValidation, req.Status))
		return
	}

	assignment, err := h.lifecycle.SetAssignmentStatus(r.Context(), caller, &model.SetAssignmentStatusInput{
		InstructorId: instructorId,
		CourseId:     courseId,
		Status:       status,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponse(assignment))
}

func (h *Handler) ListAssignmentsByInstructor(w http.ResponseWriter, r *http.Request) {
	caller, id, err := callerAndPathId(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.lifecycle.ListAssignmentsForInstructor(r.Context(), caller, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssignmentResponses(list))
}

// ── notifications ───────────────────────────────────────────────────

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	caller, id, err := callerAndPathId(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.ack.ListNotifications(r.Context(), caller, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponses(list))
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	caller, id, err := callerAndPathId(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.ack.MarkRead(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

// ── plumbing ────────────────────────────────────────────────────────

func callerFromContext(r *http.Request) (*model.Identity, error) {
	identity, ok := ctxdata.GetIdentity(r.Context())
	if !ok {
		return nil, errdefs.ErrAuthentication
	}
	return identity, nil
}

func callerAndPathId(r *http.Request, key string) (*model.Identity, uuid.UUID, error) {
	caller, err := callerFromContext(r)
	if err != nil {
		return nil, uuid.Nil, err
	}
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: invalid %s", errdefs.ErrValidation, key)
	}
	return caller, id, nil
}

func callerAndPairIds(r *http.Request, firstKey, secondKey string) (*model.Identity, uuid.UUID, uuid.UUID, error) {
	caller, first, err := callerAndPathId(r, firstKey)
	if err != nil {
		return nil, uuid.Nil, uuid.Nil, err
	}
	second, err := uuid.Parse(chi.URLParam(r, secondKey))
	if err != nil {
		return nil, uuid.Nil, uuid.Nil, fmt.Errorf("%w: invalid %s", errdefs.ErrValidation, secondKey)
	}
	return caller, first, second, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", errdefs.ErrValidation)
	}
	return nil
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errdefs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errdefs.ErrFailedPrecondition):
		return http.StatusPreconditionFailed
	case errors.Is(err, errdefs.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := mapErr(err)
	if statusCode == http.StatusInternalServerError {
		if logger, ok := logging.GetFromContext(r.Context()); ok {
			logger.Error(r.Context(), "internal error", zap.Error(err))
		}
		writeJSON(w, statusCode, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, statusCode, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	w.Write(data)
}
