package context

import (
	"mescontacts/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetAuthContext stores the verified caller on the request.
func SetAuthContext(c echo.Context, ac entity.AuthContext) {
	c.Set(keyAuth, ac)
}

// GetAuthContext returns the caller, or an anonymous AuthContext when none was set.
func GetAuthContext(c echo.Context) entity.AuthContext {
	if ac, ok := c.Get(keyAuth).(entity.AuthContext); ok {
		return ac
	}

	return entity.Anonymous()
}
