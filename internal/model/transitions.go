package model

// Transition tables for lifecycle statuses. A status with an empty edge set is
// terminal. Requesting the current status again is not a transition at all;
// callers treat it as an idempotent no-op.

var enrollmentTransitions = map[EnrollmentStatus][]EnrollmentStatus{
	EnrollmentStatusPending:   {EnrollmentStatusActive, EnrollmentStatusCancelled},
	EnrollmentStatusActive:    {EnrollmentStatusCancelled},
	EnrollmentStatusCancelled: {},
}

var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	AssignmentStatusPending: {AssignmentStatusActive, AssignmentStatusRevoked},
	AssignmentStatusActive:  {AssignmentStatusRevoked},
	AssignmentStatusRevoked: {},
}

func CanTransitionEnrollment(cur, next EnrollmentStatus) bool {
	for _, allowed := range enrollmentTransitions[cur] {
		if allowed == next {
			return true
		}
	}
	return false
}

func CanTransitionAssignment(cur, next AssignmentStatus) bool {
	for _, allowed := range assignmentTransitions[cur] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AccountStatusForActive derives the stored account status from the activity
// flag. Approval on its own never moves the status; revoking approval parks
// the account back at pending.
func AccountStatusForActive(active bool) AccountStatus {
	if active {
		return AccountStatusActive
	}
	return AccountStatusInactive
}

// AccountFlagsConsistent reports whether the cross-field invariant holds:
// an active account must be approved, and the stored status must agree with
// the activity flag.
func AccountFlagsConsistent(a *Account) bool {
	if a.Active && !a.IsApproved {
		return false
	}
	if a.Status == AccountStatusActive && !a.Active {
		return false
	}
	if a.Active && a.Status != AccountStatusActive {
		return false
	}
	return true
}
