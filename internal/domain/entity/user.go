package entity

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an application account. PasswordHash is a bcrypt hash; the legacy
// backend stored plaintext, which the migration leaves behind.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
}
