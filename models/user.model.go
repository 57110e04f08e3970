package models

// User represents a registered account. PasswordHash is a bcrypt hash and is
// stripped before any profile response.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
}
