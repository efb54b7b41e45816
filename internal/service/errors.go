package service

import "errors"

// Error taxonomy surfaced to handlers. Authorization failures are never
// silently downgraded; the only documented fallback is role resolution
// degrading to USER on store failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrNotApproved        = errors.New("event is not approved yet")
	ErrInvalidAvatar      = errors.New("invalid avatar format")
	ErrNotMember          = errors.New("not a member")
)
