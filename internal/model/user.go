package model

import "time"

// User represents a registered account. The store enforces email uniqueness
// at creation; the admin flag is mutable only by an existing admin.
type User struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Hash      string    `json:"-"` // bcrypt hash, never exposed
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenClaims is the identity snapshot embedded in a bearer token at
// issuance. It is not re-read from the store on each request, so claims may
// be stale relative to later profile edits within the token's validity
// window.
type TokenClaims struct {
	UserID    string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"` // RFC 3339, frozen at issuance
	IsAdmin   bool   `json:"isAdmin"`
}
