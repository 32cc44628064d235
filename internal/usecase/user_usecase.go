// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncUserInput carries profile fields reported by the identity provider on sign-in.
type SyncUserInput struct {
	Name  string
	Email string
	Image string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Sync creates the caller's user on first sign-in, or refreshes its profile fields.
	Sync(ctx context.Context, ac entity.AuthContext, input SyncUserInput) (*entity.User, error)

	// Me returns the caller's user.
	Me(ctx context.Context, ac entity.AuthContext) (*entity.User, error)

	// SetRole assigns a platform role. Admin only.
	SetRole(ctx context.Context, ac entity.AuthContext, userID uuid.UUID, role entity.UserRole) (*entity.User, error)
}
