package middleware

import (
	"log/slog"
	"strings"

	"mescontacts/internal/delivery/api/response"
	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.IdentityVerifier
	Logger   *slog.Logger
}

// AuthMiddleware turns the bearer token into an entity.AuthContext.
// Role checks happen in the use cases, which see the AuthContext explicitly.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{verifier: params.Verifier, logger: params.Logger}
}

// Identify resolves the caller. Requests without a token continue anonymously;
// a token that fails verification is rejected with 401.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			deliverycontext.SetAuthContext(c, entity.Anonymous())

			return next(c)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.HandleAppError(c, domainerrors.ErrInvalidIdentityToken.WithDetails("authorization header must use the Bearer scheme"))
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		ctx := c.Request().Context()

		identity, err := m.verifier.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Bearer token rejected", slog.Any("error", err))

			return response.HandleAppError(c, err)
		}

		deliverycontext.SetAuthContext(c, entity.Authenticated(identity))

		return next(c)
	}
}
