package repository

import "errors"

// ErrVerseNotFound is returned when no verse matches the requested ID.
var ErrVerseNotFound = errors.New("verse not found")
