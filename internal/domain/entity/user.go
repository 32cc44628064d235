// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account synced from the identity provider on first sign-in.
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Image           string    `json:"image,omitempty"`
	TokenIdentifier string    `json:"-"`                     // Opaque identity key, unique per provider account.
	ExternalID      *string   `json:"externalId,omitempty"` // Subject at the identity provider, when known.
	Role            UserRole  `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// Identity is what the identity provider vouches for once a token is verified.
type Identity struct {
	TokenIdentifier string
	Subject         string
	Issuer          string
	Email           string
	Name            string
	Picture         string
}

// AuthContext carries the caller's verified identity into every use case.
// A zero AuthContext means the caller is anonymous.
type AuthContext struct {
	Identity *Identity
}

// Anonymous returns an AuthContext without identity.
func Anonymous() AuthContext {
	return AuthContext{}
}

// Authenticated returns an AuthContext for a verified identity.
func Authenticated(identity *Identity) AuthContext {
	return AuthContext{Identity: identity}
}

// IsAuthenticated reports whether the context holds a verified identity.
func (ac AuthContext) IsAuthenticated() bool {
	return ac.Identity != nil && ac.Identity.TokenIdentifier != ""
}
