package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       string    `json:"id" db:"id"`                 // 24-char hex object id
	FirstName    string    `json:"first_name" db:"first_name"` // Given name
	LastName     string    `json:"last_name" db:"last_name"`   // Family name
	Email        string    `json:"email" db:"email"`           // Unique, case-sensitive as stored
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never the plaintext
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// User is the public identity of a user returned to clients.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Public strips the credential fields from a stored user.
func (u *UserDB) Public() User {
	return User{
		ID:        u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
