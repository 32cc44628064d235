package auth

import (
	"context"
	"log/slog"

	"mescontacts/config"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// idTokenVerifier is the part of the Firebase Auth client the verifier needs.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
	logger *slog.Logger
}

// NewFirebaseVerifier verifies Firebase Auth ID tokens for the configured project.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase project id must be provided")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return newFirebaseVerifier(client, logger), nil
}

func newFirebaseVerifier(client idTokenVerifier, logger *slog.Logger) *firebaseVerifier {
	return &firebaseVerifier{client: client, logger: logger}
}

// VerifyToken implements service.IdentityVerifier.
func (v *firebaseVerifier) VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.DebugContext(ctx, "Firebase ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidIdentityToken.WrapMessage(err.Error())
	}

	return &entity.Identity{
		TokenIdentifier: TokenIdentifier(token.Issuer, token.UID),
		Subject:         token.UID,
		Issuer:          token.Issuer,
		Email:           stringClaim(token.Claims, "email"),
		Name:            stringClaim(token.Claims, "name"),
		Picture:         stringClaim(token.Claims, "picture"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}

	return ""
}
