package verse

import "errors"

// Domain-specific errors for the verse package.
var (
	ErrEmptyQuery = errors.New("search query is empty")
	ErrNotFound   = errors.New("verse not found")
)
