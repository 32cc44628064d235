// Package handler contains the Echo handlers of the public API.
package handler

import (
	"net/http"

	"mescontacts/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func parseID(c echo.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func invalidID(c echo.Context, label string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+label+" ID")
}
