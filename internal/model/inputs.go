package model

import "github.com/google/uuid"

type SetApprovalInput struct {
	AccountId uuid.UUID
	Approve   bool
}

type SetActiveInput struct {
	AccountId uuid.UUID
	Active    bool
}

type RequestEnrollmentInput struct {
	StudentId uuid.UUID
	CourseId  uuid.UUID
}

type SetEnrollmentStatusInput struct {
	StudentId uuid.UUID
	CourseId  uuid.UUID
	Status    EnrollmentStatus
}

type RequestAssignmentInput struct {
	InstructorId uuid.UUID
	CourseId     uuid.UUID
	RoleDesc     *string
}

type SetAssignmentStatusInput struct {
	InstructorId uuid.UUID
	CourseId     uuid.UUID
	Status       AssignmentStatus
}
