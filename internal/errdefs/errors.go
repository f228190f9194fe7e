package errdefs

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrAuthentication     = errors.New("authentication error")
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrConflict           = errors.New("conflicting state transition")
	ErrUnavailable        = errors.New("storage unavailable")
)
