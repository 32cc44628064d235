package auth

import (
	"context"
	"log/slog"

	"mescontacts/config"
	"mescontacts/internal/domain/service"

	"github.com/pkg/errors"
)

// Identity providers accepted in identity.provider.
const (
	ProviderJWT      = "jwt"
	ProviderFirebase = "firebase"
)

// NewIdentityVerifier selects the verifier named by the configuration.
func NewIdentityVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	switch cfg.Identity.Provider {
	case ProviderJWT, "":
		return NewJWTVerifier(cfg.Identity, logger)
	case ProviderFirebase:
		return NewFirebaseVerifier(context.Background(), cfg.Firebase, logger)
	default:
		return nil, errors.Errorf("unsupported identity provider: %s", cfg.Identity.Provider)
	}
}
