package entity

import "time"

// User is a login account. Users are global; the active company is selected
// after login and carried in the token.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
