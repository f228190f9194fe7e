package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountservice/internal/ctxdata"
	"accountservice/internal/errdefs"
	"accountservice/internal/model"
)

type stubLifecycle struct {
	setApproval         func(ctx context.Context, caller *model.Identity, input *model.SetApprovalInput) (*model.Account, error)
	setActive           func(ctx context.Context, caller *model.Identity, input *model.SetActiveInput) (*model.Account, error)
	getAccount          func(ctx context.Context, caller *model.Identity, id uuid.UUID) (*model.Account, error)
	requestEnrollment   func(ctx context.Context, caller *model.Identity, input *model.RequestEnrollmentInput) (*model.Enrollment, error)
	setEnrollmentStatus func(ctx context.Context, caller *model.Identity, input *model.SetEnrollmentStatusInput) (*model.Enrollment, error)
	removeEnrollment    func(ctx context.Context, caller *model.Identity, studentId, courseId uuid.UUID) error
	setAssignmentStatus func(ctx context.Context, caller *model.Identity, input *model.SetAssignmentStatusInput) (*model.InstructorAssignment, error)
}

func (s *stubLifecycle) SetApproval(ctx context.Context, caller *model.Identity, input *model.SetApprovalInput) (*model.Account, error) {
	return s.setApproval(ctx, caller, input)
}

func (s *stubLifecycle) SetActive(ctx context.Context, caller *model.Identity, input *model.SetActiveInput) (*model.Account, error) {
	return s.setActive(ctx, caller, input)
}

func (s *stubLifecycle) GetAccount(ctx context.Context, caller *model.Identity, id uuid.UUID) (*model.Account, error) {
	return s.getAccount(ctx, caller, id)
}

func (s *stubLifecycle) RequestEnrollment(ctx context.Context, caller *model.Identity, input *model.RequestEnrollmentInput) (*model.Enrollment, error) {
	return s.requestEnrollment(ctx, caller, input)
}

func (s *stubLifecycle) SetEnrollmentStatus(ctx context.Context, caller *model.Identity, input *model.SetEnrollmentStatusInput) (*model.Enrollment, error) {
	return s.setEnrollmentStatus(ctx, caller, input)
}

func (s *stubLifecycle) RemoveEnrollment(ctx context.Context, caller *model.Identity, studentId, courseId uuid.UUID) error {
	return s.removeEnrollment(ctx, caller, studentId, courseId)
}

func (s *stubLifecycle) GetEnrollment(ctx context.Context, caller *model.Identity, studentId, courseId uuid.UUID) (*model.Enrollment, error) {
	return nil, errdefs.ErrNotFound
}

func (s *stubLifecycle) ListEnrollmentsForStudent(ctx context.Context, caller *model.Identity, studentId uuid.UUID) ([]*model.Enrollment, error) {
	return []*model.Enrollment{}, nil
}

func (s *stubLifecycle) ListEnrollmentsForCourse(ctx context.Context, caller *model.Identity, courseId uuid.UUID) ([]*model.Enrollment, error) {
	return []*model.Enrollment{}, nil
}

func (s *stubLifecycle) RequestAssignment(ctx context.Context, caller *model.Identity, input *model.RequestAssignmentInput) (*model.InstructorAssignment, error) {
	return nil, errdefs.ErrNotFound
}

func (s *stubLifecycle) SetAssignmentStatus(ctx context.Context, caller *model.Identity, input *model.SetAssignmentStatusInput) (*model.InstructorAssignment, error) {
	return s.setAssignmentStatus(ctx, caller, input)
}

func (s *stubLifecycle) ListAssignmentsForInstructor(ctx context.Context, caller *model.Identity, instructorId uuid.UUID) ([]*model.InstructorAssignment, error) {
	return []*model.InstructorAssignment{}, nil
}

type stubAck struct {
	markRead          func(ctx context.Context, caller *model.Identity, notificationId uuid.UUID) error
	listNotifications func(ctx context.Context, caller *model.Identity, subjectId uuid.UUID) ([]*model.NotificationWithRead, error)
}

func (s *stubAck) MarkRead(ctx context.Context, caller *model.Identity, notificationId uuid.UUID) error {
	return s.markRead(ctx, caller, notificationId)
}

func (s *stubAck) ListNotifications(ctx context.Context, caller *model.Identity, subjectId uuid.UUID) ([]*model.NotificationWithRead, error) {
	return s.listNotifications(ctx, caller, subjectId)
}

func identityFor(identity *model.Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity != nil {
				r = r.WithContext(ctxdata.WithIdentity(r.Context(), identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newRouter(lifecycle LifecycleService, ack AckService, identity *model.Identity) *chi.Mux {
	h := New(lifecycle, ack)
	r := chi.NewRouter()
	h.RegisterRoutes(r, identityFor(identity))
	return r
}

func adminIdentity() *model.Identity {
	return &model.Identity{Id: uuid.New(), Role: model.RoleAdmin, IsApproved: true, Active: true}
}

func TestGetAccountEndpoint(t *testing.T) {
	accountID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		lifecycle := &stubLifecycle{
			getAccount: func(_ context.Context, _ *model.Identity, id uuid.UUID) (*model.Account, error) {
				return &model.Account{
					Id:         id,
					Role:       model.RoleStudent,
					IsApproved: true,
					Active:     true,
					Status:     model.AccountStatusActive,
				}, nil
			},
		}
		r := newRouter(lifecycle, &stubAck{}, adminIdentity())

		req := httptest.NewRequest(http.MethodGet, "/accounts/"+accountID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp accountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, accountID.String(), resp.Id)
		assert.Equal(t, "active", resp.Status)
	})

	t.Run("BadRequest_InvalidId", func(t *testing.T) {
		r := newRouter(&stubLifecycle{}, &stubAck{}, adminIdentity())

		req := httptest.NewRequest(http.MethodGet, "/accounts/not-a-uuid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unauthorized_NoIdentity", func(t *testing.T) {
		r := newRouter(&stubLifecycle{}, &stubAck{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/accounts/"+accountID.String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSetApprovalEndpoint(t *testing.T) {
	accountID := uuid.New()

	t.Run("Forbidden", func(t *testing.T) {
		lifecycle := &stubLifecycle{
			setApproval: func(context.Context, *model.Identity, *model.SetApprovalInput) (*model.Account, error) {
				return nil, errdefs.ErrPermissionDenied
			},
		}
		r := newRouter(lifecycle, &stubAck{}, &model.Identity{Id: uuid.New(), Role: model.RoleStudent})

		body := bytes.NewBufferString(`{"approve": true}`)
		req := httptest.NewRequest(http.MethodPatch, "/accounts/"+accountID.String()+"/approval", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		lifecycle := &stubLifecycle{
			setApproval: func(_ context.Context, _ *model.Identity, input *model.SetApprovalInput) (*model.Account, error) {
				assert.True(t, input.Approve)
				return &model.Account{
					Id:         input.AccountId,
					Role:       model.RoleStudent,
					IsApproved: true,
					Status:     model.AccountStatusPending,
				}, nil
			},
		}
		r := newRouter(lifecycle, &stubAck{}, adminIdentity())

		body := bytes.NewBufferString(`{"approve": true}`)
		req := httptest.NewRequest(http.MethodPatch, "/accounts/"+accountID.String()+"/approval", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp accountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.IsApproved)
	})
}

func TestSetActiveEndpoint_PreconditionFailed(t *testing.T) {
	lifecycle := &stubLifecycle{
		setActive: func(context.Context, *model.Identity, *model.SetActiveInput) (*model.Account, error) {
			return nil, errdefs.ErrFailedPrecondition
		},
	}
	r := newRouter(lifecycle, &stubAck{}, adminIdentity())

	body := bytes.NewBufferString(`{"active": true}`)
	req := httptest.NewRequest(http.MethodPatch, "/accounts/"+uuid.NewString()+"/active", body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
}

func TestSetEnrollmentStatusEndpoint(t *testing.T) {
	studentID := uuid.New()
	courseID := uuid.New()
	path := "/enrollments/" + studentID.String() + "/" + courseID.String()

	t.Run("Conflict_TerminalState", func(t *testing.T) {
		lifecycle := &stubLifecycle{
			setEnrollmentStatus: func(context.Context, *model.Identity, *model.SetEnrollmentStatusInput) (*model.Enrollment, error) {
				return nil, errdefs.ErrConflict
			},
		}
		r := newRouter(lifecycle, &stubAck{}, adminIdentity())

		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(`{"status": "active"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("BadRequest_UnknownStatus", func(t *testing.T) {
		r := newRouter(&stubLifecycle{}, &stubAck{}, adminIdentity())

		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(`{"status": "paused"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		lifecycle := &stubLifecycle{
			setEnrollmentStatus: func(_ context.Context, _ *model.Identity, input *model.SetEnrollmentStatusInput) (*model.Enrollment, error) {
				assert.Equal(t, studentID, input.StudentId)
				assert.Equal(t, courseID, input.CourseId)
				assert.Equal(t, model.EnrollmentStatusActive, input.Status)
				return &model.Enrollment{
					Id:        uuid.New(),
					StudentId: input.StudentId,
					CourseId:  input.CourseId,
					Status:    input.Status,
				}, nil
			},
		}
		r := newRouter(lifecycle, &stubAck{}, adminIdentity())

		req := httptest.NewRequest(http.MethodPatch, path, bytes.NewBufferString(`{"status": "active"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp enrollmentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "active", resp.Status)
	})
}

func TestRemoveEnrollmentEndpoint(t *testing.T) {
	lifecycle := &stubLifecycle{
		removeEnrollment: func(context.Context, *model.Identity, uuid.UUID, uuid.UUID) error {
			return nil
		},
	}
	r := newRouter(lifecycle, &stubAck{}, adminIdentity())

	req := httptest.NewRequest(http.MethodDelete, "/enrollments/"+uuid.NewString()+"/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestEnrollmentEndpoint(t *testing.T) {
	studentID := uuid.New()
	courseID := uuid.New()

	t.Run("Created", func(t *testing.T) {
		lifecycle := &stubLifecycle{
			requestEnrollment: func(_ context.Context, _ *model.Identity, input *model.RequestEnrollmentInput) (*model.Enrollment, error) {
				return &model.Enrollment{
					Id:        uuid.New(),
					StudentId: input.StudentId,
					CourseId:  input.CourseId,
					Status:    model.EnrollmentStatusPending,
				}, nil
			},
		}
		r := newRouter(lifecycle, &stubAck{}, adminIdentity())

		body, err := json.Marshal(requestEnrollmentRequest{
			StudentId: studentID.String(),
			CourseId:  courseID.String(),
		})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Conflict_DuplicateEnrollment", func(t *testing.T) {
		lifecycle := &stubLifecycle{
			requestEnrollment: func(context.Context, *model.Identity, *model.RequestEnrollmentInput) (*model.Enrollment, error) {
				return nil, errdefs.ErrAlreadyExists
			},
		}
		r := newRouter(lifecycle, &stubAck{}, adminIdentity())

		body := bytes.NewBufferString(`{"student_id": "` + studentID.String() + `", "course_id": "` + courseID.String() + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/enrollments", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("BadRequest_InvalidStudentId", func(t *testing.T) {
		r := newRouter(&stubLifecycle{}, &stubAck{}, adminIdentity())

		body := bytes.NewBufferString(`{"student_id": "nope", "course_id": "` + courseID.String() + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/enrollments", body)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMarkReadEndpoint(t *testing.T) {
	notificationID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ack := &stubAck{
			markRead: func(_ context.Context, _ *model.Identity, id uuid.UUID) error {
				assert.Equal(t, notificationID, id)
				return nil
			},
		}
		r := newRouter(&stubLifecycle{}, ack, adminIdentity())

		req := httptest.NewRequest(http.MethodPost, "/notifications/"+notificationID.String()+"/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Forbidden_NotRecipient", func(t *testing.T) {
		ack := &stubAck{
			markRead: func(context.Context, *model.Identity, uuid.UUID) error {
				return errdefs.ErrPermissionDenied
			},
		}
		r := newRouter(&stubLifecycle{}, ack, adminIdentity())

		req := httptest.NewRequest(http.MethodPost, "/notifications/"+notificationID.String()+"/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMapErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", errdefs.ErrValidation, http.StatusBadRequest},
		{"Authentication", errdefs.ErrAuthentication, http.StatusUnauthorized},
		{"PermissionDenied", errdefs.ErrPermissionDenied, http.StatusForbidden},
		{"NotFound", errdefs.ErrNotFound, http.StatusNotFound},
		{"AlreadyExists", errdefs.ErrAlreadyExists, http.StatusConflict},
		{"Conflict", errdefs.ErrConflict, http.StatusConflict},
		{"FailedPrecondition", errdefs.ErrFailedPrecondition, http.StatusPreconditionFailed},
		{"Unavailable", errdefs.ErrUnavailable, http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapErr(tt.err))
		})
	}
}
