package chat

import "errors"

// Validation errors, the only class that escapes Handle. Every other
// downstream failure is absorbed into the fallback chain.
var (
	ErrEmptyInput   = errors.New("user input is empty")
	ErrInputTooLong = errors.New("user input exceeds maximum length")
	ErrInvalidMode  = errors.New("invalid interaction mode")
)
