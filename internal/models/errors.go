package models

import "errors"

// Error taxonomy shared by the domain services. All of these except
// ErrStoreUnreadable are expected, user-recoverable conditions: the
// operation aborts without committing partial state and the presentation
// layer shows the message. ErrStoreUnreadable has no recovery path.
var (
	ErrValidation         = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("account not found")
	ErrEmptyHistory       = errors.New("no orders to delete")
	ErrUnknownTicketType  = errors.New("unknown ticket type")
	ErrStoreUnreadable    = errors.New("store unreadable")
)
