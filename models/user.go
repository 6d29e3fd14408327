package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user. Users are created on first
// successful sign-in through the identity provider and are never
// deleted in-app.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	College    *string   `json:"college,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	DegreeYear *string   `json:"degree_year,omitempty"`
	About      *string   `json:"about,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PublicProfile is the subset of user fields exposed on the public
// profile endpoint.
type PublicProfile struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	College *string   `json:"college,omitempty"`
	About   *string   `json:"about,omitempty"`
}

// Public returns the publicly visible subset of the user.
func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:      u.ID,
		Name:    u.Name,
		College: u.College,
		About:   u.About,
	}
}
