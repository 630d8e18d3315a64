package models

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a session
	// when none is present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrProfileNotFound is returned when the backend has no profile row
	// for the authenticated identity.
	ErrProfileNotFound = errors.New("profile not found")
)
