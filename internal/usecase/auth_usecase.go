package usecase

import (
	"context"

	"mescontacts/internal/domain/entity"
)

// AuthGate resolves the caller behind an AuthContext and enforces roles.
type AuthGate interface {
	// CurrentUser returns the caller's user, or nil without error when the caller is anonymous
	// or has not synced a user row yet.
	CurrentUser(ctx context.Context, ac entity.AuthContext) (*entity.User, error)

	// RequireAuth returns the caller's user or fails with ErrAuthenticationRequired.
	RequireAuth(ctx context.Context, ac entity.AuthContext) (*entity.User, error)

	// RequireAdmin additionally fails with ErrAdminOnly for non-admin users.
	RequireAdmin(ctx context.Context, ac entity.AuthContext) (*entity.User, error)

	// IsAdmin never fails; lookup errors count as false.
	IsAdmin(ctx context.Context, ac entity.AuthContext) bool
}
