// Package auth provides the identity verifiers used to authenticate API callers.
package auth

import (
	"context"
	"log/slog"

	"mescontacts/config"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// IdentityClaims are the claims read from an HMAC-signed identity token.
type IdentityClaims struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier validates HS256 tokens issued by a trusted identity provider.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
	logger *slog.Logger
}

// NewJWTVerifier builds a verifier from the identity config section.
func NewJWTVerifier(cfg *config.IdentityConfig, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, errors.New("identity secret must be provided for the jwt provider")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &jwtVerifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
		logger: logger,
	}, nil
}

// VerifyToken implements service.IdentityVerifier.
func (v *jwtVerifier) VerifyToken(ctx context.Context, tokenString string) (*entity.Identity, error) {
	claims := &IdentityClaims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		v.logger.DebugContext(ctx, "Identity token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidIdentityToken.WrapMessage(err.Error())
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrInvalidIdentityToken.WrapMessage("token has no subject")
	}

	return &entity.Identity{
		TokenIdentifier: TokenIdentifier(claims.Issuer, claims.Subject),
		Subject:         claims.Subject,
		Issuer:          claims.Issuer,
		Email:           claims.Email,
		Name:            claims.Name,
		Picture:         claims.Picture,
	}, nil
}

// TokenIdentifier is the stable key a user row is bound to.
func TokenIdentifier(issuer, subject string) string {
	return issuer + "|" + subject
}
