package domain

import "time"

// Role is the authorization level stored on a user record. A row with
// no role set is an ordinary user; the column stays NULL in that case.
type Role string

const (
	RoleOrdinary Role = ""
	RoleAdmin    Role = "admin"
)

// User is the directory record for an account identified by email.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the record carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
