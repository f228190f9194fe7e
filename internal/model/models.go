package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleInstructor || r == RoleStudent
}

func RoleFromString(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

func (a AccountStatus) String() string {
	return string(a)
}

func (a AccountStatus) IsValid() bool {
	return a == AccountStatusPending || a == AccountStatusActive || a == AccountStatusInactive
}

type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCancelled EnrollmentStatus = "cancelled"
)

func (e EnrollmentStatus) String() string {
	return string(e)
}

func (e EnrollmentStatus) IsValid() bool {
	return e == EnrollmentStatusPending || e == EnrollmentStatusActive || e == EnrollmentStatusCancelled
}

func EnrollmentStatusFromString(s string) (EnrollmentStatus, bool) {
	status := EnrollmentStatus(s)
	return status, status.IsValid()
}

type AssignmentStatus string

const (
	AssignmentStatusPending AssignmentStatus = "pending"
	AssignmentStatusActive  AssignmentStatus = "active"
	AssignmentStatusRevoked AssignmentStatus = "revoked"
)

func (a AssignmentStatus) String() string {
	return string(a)
}

func (a AssignmentStatus) IsValid() bool {
	return a == AssignmentStatusPending || a == AssignmentStatusActive || a == AssignmentStatusRevoked
}

func AssignmentStatusFromString(s string) (AssignmentStatus, bool) {
	status := AssignmentStatus(s)
	return status, status.IsValid()
}

type Account struct {
	Id         uuid.UUID     `db:"id"`
	Role       Role          `db:"role"`
	IsApproved bool          `db:"is_approved"`
	Active     bool          `db:"active"`
	Status     AccountStatus `db:"status"`
	CreatedAt  time.Time     `db:"created_at"`
	EditedAt   time.Time     `db:"edited_at"`
}

type Enrollment struct {
	Id         uuid.UUID        `db:"id"`
	StudentId  uuid.UUID        `db:"student_id"`
	CourseId   uuid.UUID        `db:"course_id"`
	Status     EnrollmentStatus `db:"status"`
	EnrolledAt time.Time        `db:"enrolled_at"`
	EditedAt   time.Time        `db:"edited_at"`
}

type InstructorAssignment struct {
	Id           uuid.UUID        `db:"id"`
	InstructorId uuid.UUID        `db:"instructor_id"`
	CourseId     uuid.UUID        `db:"course_id"`
	RoleDesc     string           `db:"role_desc"`
	Status       AssignmentStatus `db:"status"`
	CreatedAt    time.Time        `db:"created_at"`
	EditedAt     time.Time        `db:"edited_at"`
}

type Notification struct {
	Id          uuid.UUID `db:"id"`
	RecipientId uuid.UUID `db:"recipient_id"`
	EventType   string    `db:"event_type"`
	Body        string    `db:"body"`
	CreatedAt   time.Time `db:"created_at"`
}

// NotificationWithRead is a Notification joined with the caller's read mark.
type NotificationWithRead struct {
	Notification
	Read bool `db:"read"`
}

type ReadMark struct {
	SubjectId      uuid.UUID `db:"subject_id"`
	NotificationId uuid.UUID `db:"notification_id"`
	ReadAt         time.Time `db:"read_at"`
}

// Identity is the resolved caller tuple supplied by the identity middleware.
// Lifecycle operations receive it explicitly; it is never read from ambient state.
type Identity struct {
	Id         uuid.UUID
	Role       Role
	IsApproved bool
	Active     bool
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
