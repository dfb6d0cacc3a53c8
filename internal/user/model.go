package user

import "time"

// User is a storefront account. Authentication here is a navigational
// gate for the app, not a security boundary.
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the persisted current-user record, last write wins.
type Session struct {
	UserID   uint      `json:"user_id"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issued_at"`
}
