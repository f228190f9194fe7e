package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionEnrollment(t *testing.T) {
	tests := []struct {
		name string
		from EnrollmentStatus
		to   EnrollmentStatus
		want bool
	}{
		{"PendingToActive", EnrollmentStatusPending, EnrollmentStatusActive, true},
		{"PendingToCancelled", EnrollmentStatusPending, EnrollmentStatusCancelled, true},
		{"ActiveToCancelled", EnrollmentStatusActive, EnrollmentStatusCancelled, true},
		{"ActiveToPending", EnrollmentStatusActive, EnrollmentStatusPending, false},
		{"CancelledToActive", EnrollmentStatusCancelled, EnrollmentStatusActive, false},
		{"CancelledToPending", EnrollmentStatusCancelled, EnrollmentStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionEnrollment(tt.from, tt.to))
		})
	}
}

func TestCanTransitionAssignment(t *testing.T) {
	tests := []struct {
		name string
		from AssignmentStatus
		to   AssignmentStatus
		want bool
	}{
		{"PendingToActive", AssignmentStatusPending, AssignmentStatusActive, true},
		{"PendingToRevoked", AssignmentStatusPending, AssignmentStatusRevoked, true},
		{"ActiveToRevoked", AssignmentStatusActive, AssignmentStatusRevoked, true},
		{"ActiveToPending", AssignmentStatusActive, AssignmentStatusPending, false},
		{"RevokedToActive", AssignmentStatusRevoked, AssignmentStatusActive, false},
		{"RevokedToPending", AssignmentStatusRevoked, AssignmentStatusPending, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionAssignment(tt.from, tt.to))
		})
	}
}

func TestAccountStatusForActive(t *testing.T) {
	assert.Equal(t, AccountStatusActive, AccountStatusForActive(true))
	assert.Equal(t, AccountStatusInactive, AccountStatusForActive(false))
}

func TestAccountFlagsConsistent(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    bool
	}{
		{"PendingUnapproved", Account{Status: AccountStatusPending}, true},
		{"PendingApproved", Account{IsApproved: true, Status: AccountStatusPending}, true},
		{"ActiveApproved", Account{IsApproved: true, Active: true, Status: AccountStatusActive}, true},
		{"InactiveApproved", Account{IsApproved: true, Status: AccountStatusInactive}, true},
		{"ActiveWithoutApproval", Account{Active: true, Status: AccountStatusActive}, false},
		{"ActiveStatusWithoutFlag", Account{IsApproved: true, Status: AccountStatusActive}, false},
		{"ActiveFlagWithoutStatus", Account{IsApproved: true, Active: true, Status: AccountStatusPending}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountFlagsConsistent(&tt.account))
		})
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	var nilIdentity *Identity
	assert.False(t, nilIdentity.IsAdmin())
	assert.False(t, (&Identity{Role: RoleStudent}).IsAdmin())
	assert.True(t, (&Identity{Role: RoleAdmin}).IsAdmin())
}

func TestStatusParsing(t *testing.T) {
	role, ok := RoleFromString("instructor")
	assert.True(t, ok)
	assert.Equal(t, RoleInstructor, role)

	_, ok = RoleFromString("superuser")
	assert.False(t, ok)

	status, ok := EnrollmentStatusFromString("cancelled")
	assert.True(t, ok)
	assert.Equal(t, EnrollmentStatusCancelled, status)

	_, ok = AssignmentStatusFromString("paused")
	assert.False(t, ok)
}
