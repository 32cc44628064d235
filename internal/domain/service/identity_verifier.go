package service

import (
	"context"

	"mescontacts/internal/domain/entity"
)

// IdentityVerifier turns a bearer token issued by the identity provider into a verified identity.
// Implementations never create users; that happens through the user sync use case.
type IdentityVerifier interface {
	// VerifyToken validates the token signature, expiry and audience.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}
