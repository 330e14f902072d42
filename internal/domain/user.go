package domain

import "time"

// User is an account identified by email. Immutable after registration.
type User struct {
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
