package handler

import (
	"time"

	"accountservice/internal/model"
)

type accountResponse struct {
	Id         string    `json:"id"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
	Active     bool      `json:"active"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	EditedAt   time.Time `json:"edited_at"`
}

func toAccountResponse(a *model.Account) *accountResponse {
	return &accountResponse{
		Id:         a.Id.String(),
		Role:       a.Role.String(),
		IsApproved: a.IsApproved,
		Active:     a.Active,
		Status:     a.Status.String(),
		CreatedAt:  a.CreatedAt,
		EditedAt:   a.EditedAt,
	}
}

type enrollmentResponse struct {
	Id         string    `json:"id"`
	StudentId  string    `json:"student_id"`
	CourseId   string    `json:"course_id"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolled_at"`
	EditedAt   time.Time `json:"edited_at"`
}

func toEnrollmentResponse(e *model.Enrollment) *enrollmentResponse {
	return &enrollmentResponse{
		Id:         e.Id.String(),
		StudentId:  e.StudentId.String(),
		CourseId:   e.CourseId.String(),
		Status:     e.Status.String(),
		EnrolledAt: e.EnrolledAt,
		EditedAt:   e.EditedAt,
	}
}

func toEnrollmentResponses(list []*model.Enrollment) []*enrollmentResponse {
	resp := make([]*enrollmentResponse, 0, len(list))
	for _, e := range list {
		resp = append(resp, toEnrollmentResponse(e))
	}
	return resp
}

type assignmentResponse struct {
	Id           string    `json:"id"`
	InstructorId string    `json:"instructor_id"`
	CourseId     string    `json:"course_id"`
	RoleDesc     string    `json:"role_desc"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	EditedAt     time.Time `json:"edited_at"`
}

func toAssignmentResponse(a *model.InstructorAssignment) *assignmentResponse {
	return &assignmentResponse{
		Id:           a.Id.String(),
		InstructorId: a.InstructorId.String(),
		CourseId:     a.CourseId.String(),
		RoleDesc:     a.RoleDesc,
		Status:       a.Status.String(),
		CreatedAt:    a.CreatedAt,
		EditedAt:     a.EditedAt,
	}
}

func toAssignmentResponses(list []*model.InstructorAssignment) []*assignmentResponse {
	resp := make([]*assignmentResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toAssignmentResponse(a))
	}
	return resp
}

type notificationResponse struct {
	Id          string    `json:"id"`
	RecipientId string    `json:"recipient_id"`
	EventType   string    `json:"event_type"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

func toNotificationResponses(list []*model.NotificationWithRead) []*notificationResponse {
	resp := make([]*notificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, &notificationResponse{
			Id:          n.Id.String(),
			RecipientId: n.RecipientId.String(),
			EventType:   n.EventType,
			Body:        n.Body,
			Read:        n.Read,
			CreatedAt:   n.CreatedAt,
		})
	}
	return resp
}

type setApprovalRequest struct {
	Approve bool `json:"approve"`
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

type requestEnrollmentRequest struct {
	StudentId string `json:"student_id"`
	CourseId  string `json:"course_id"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type requestAssignmentRequest struct {
	InstructorId string  `json:"instructor_id"`
	CourseId     string  `json:"course_id"`
	RoleDesc     *string `json:"role_desc,omitempty"`
}
