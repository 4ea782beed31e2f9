package repository

import "time"

// UpdateSessionOptions carries the mutable session fields. Nil fields
// are left untouched.
type UpdateSessionOptions struct {
	EndedAt      *time.Time
	MessageCount *int
}

// ListRecentMessagesOptions scopes a recent-messages query.
type ListRecentMessagesOptions struct {
	SessionID string
	Limit     int
}
