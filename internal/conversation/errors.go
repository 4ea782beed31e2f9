package conversation

import "errors"

// Domain-specific errors for the conversation package.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session already ended")
	ErrInvalidMode     = errors.New("invalid interaction mode")
)
