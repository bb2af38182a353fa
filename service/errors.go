package service

import "errors"

// Error kinds surfaced to the HTTP layer. The handlers map these to status
// codes; the error text doubles as the client-facing message.
var (
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrEmptyNoteFields  = errors.New("title and content are required")
	ErrUserExists       = errors.New("user already exists")
	ErrBadCredentials   = errors.New("invalid username or password")
	ErrNoteNotFound     = errors.New("note not found")
)
