package model

import "time"

// User represents a registered account.
// IDs are assigned by the store in monotonically increasing order and are
// never reused, even after deletion.
type User struct {
	ID           int
	Username     string // login username (immutable, unique)
	PasswordHash string // bcrypt hash, never exposed through the API
	CreatedAt    time.Time
}
