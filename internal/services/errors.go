package services

import "errors"

// Lifecycle and membership errors returned synchronously to the caller.
// None of them leaves partial state behind.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidState  = errors.New("operation not valid for current race state")
	ErrForbidden     = errors.New("requester lacks authority")
	ErrAlreadyJoined = errors.New("already joined this race")
)
