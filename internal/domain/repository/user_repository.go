// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned by lookups that match no user row.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts mirrored from the identity provider.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByTokenIdentifier looks up the user owning the identity provider
	// subject carried in a verified token.
	FindByTokenIdentifier(ctx context.Context, tokenIdentifier string) (*entity.User, error)

	// Create fails with domain USER_ALREADY_EXISTS when the token
	// identifier is already taken.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites profile fields and role of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
