package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mescontacts/config"
	domainerrors "mescontacts/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_identity_secret_key_very_long_for_testing"

func newTestVerifier(t *testing.T) *jwtVerifier {
	t.Helper()

	v, err := NewJWTVerifier(&config.IdentityConfig{
		Provider: ProviderJWT,
		Secret:   testSecret,
		Issuer:   "https://id.mescontacts.ca",
		Audience: "mescontacts-api",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return v.(*jwtVerifier)
}

func signToken(t *testing.T, claims IdentityClaims, method jwt.SigningMethod, key any) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() IdentityClaims {
	return IdentityClaims{
		Email: "marie@example.ca",
		Name:  "Marie Tremblay",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			Issuer:    "https://id.mescontacts.ca",
			Audience:  jwt.ClaimStrings{"mescontacts-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	v := newTestVerifier(t)
	token := signToken(t, validClaims(), jwt.SigningMethodHS256, []byte(testSecret))

	identity, err := v.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "https://id.mescontacts.ca|user-42", identity.TokenIdentifier)
	assert.Equal(t, "user-42", identity.Subject)
	assert.Equal(t, "marie@example.ca", identity.Email)
	assert.Equal(t, "Marie Tremblay", identity.Name)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	v := newTestVerifier(t)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"someone-else"}

	noSubject := validClaims()
	noSubject.Subject = ""

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "clearly-not-a-jwt-token-format"},
		{"wrong secret", signToken(t, validClaims(), jwt.SigningMethodHS256, []byte("another-secret"))},
		{"expired", signToken(t, expired, jwt.SigningMethodHS256, []byte(testSecret))},
		{"wrong audience", signToken(t, wrongAudience, jwt.SigningMethodHS256, []byte(testSecret))},
		{"missing subject", signToken(t, noSubject, jwt.SigningMethodHS256, []byte(testSecret))},
		{"missing expiry", signToken(t, noExpiry, jwt.SigningMethodHS256, []byte(testSecret))},
		{"other hmac size", signToken(t, validClaims(), jwt.SigningMethodHS512, []byte(testSecret))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := v.VerifyToken(context.Background(), tt.token)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidIdentityToken)
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.IdentityConfig{Provider: ProviderJWT}, slog.Default())
	assert.Error(t, err)
}

func TestNewIdentityVerifier_UnknownProvider(t *testing.T) {
	cfg := &config.Config{Identity: &config.IdentityConfig{Provider: "saml"}}

	_, err := NewIdentityVerifier(cfg, slog.Default())
	assert.ErrorContains(t, err, "unsupported identity provider")
}
