package events

import "time"

// Lifecycle event types carried on the kafka topic.
const (
	EventAccountApproved        = "account.approved"
	EventAccountApprovalRevoked = "account.approval_revoked"
	EventAccountActivated       = "account.activated"
	EventAccountDeactivated     = "account.deactivated"
	EventEnrollmentRequested    = "enrollment.requested"
	EventEnrollmentActivated    = "enrollment.activated"
	EventEnrollmentCancelled    = "enrollment.cancelled"
	EventEnrollmentRemoved      = "enrollment.removed"
	EventAssignmentRequested    = "assignment.requested"
	EventAssignmentActivated    = "assignment.activated"
	EventAssignmentRevoked      = "assignment.revoked"
)

type LifecycleEvent struct {
	EventType  string    `json:"event_type"`
	SubjectId  string    `json:"subject_id"`
	CourseId   string    `json:"course_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
