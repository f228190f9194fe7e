package model

import "github.com/google/uuid"

type RepositoryUpdateAccountLifecycleInput struct {
	IsApproved bool          `db:"is_approved"`
	Active     bool          `db:"active"`
	Status     AccountStatus `db:"status"`
}

type RepositoryCreateEnrollmentInput struct {
	Id        uuid.UUID        `db:"id"`
	StudentId uuid.UUID        `db:"student_id"`
	CourseId  uuid.UUID        `db:"course_id"`
	Status    EnrollmentStatus `db:"status"`
}

type RepositoryCreateAssignmentInput struct {
	Id           uuid.UUID        `db:"id"`
	InstructorId uuid.UUID        `db:"instructor_id"`
	CourseId     uuid.UUID        `db:"course_id"`
	RoleDesc     string           `db:"role_desc"`
	Status       AssignmentStatus `db:"status"`
}

type RepositoryCreateNotificationInput struct {
	Id          uuid.UUID `db:"id"`
	RecipientId uuid.UUID `db:"recipient_id"`
	EventType   string    `db:"event_type"`
	Body        string    `db:"body"`
}
