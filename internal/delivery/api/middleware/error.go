// Package middleware contains the API-specific Echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "mescontacts/internal/delivery/context"
	domainerrors "mescontacts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware turns handler errors into the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. AppErrors keep
// their status and code, echo errors keep their status, and anything else
// becomes a logged 500 with no internal detail in the body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := m.render(err, deliverycontext.GetRequestID(c))
	if status >= http.StatusInternalServerError {
		ctx := c.Request().Context()
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Request failed",
			slog.Int("status", status),
			slog.String("code", body.Error.Code),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}
	_ = c.JSON(status, body)
}

func (m *ErrorMiddleware) render(err error, requestID string) (int, domainerrors.ErrorResponse) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		body := domainerrors.ResponseFor(appErr, requestID)
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			body.Error.Message = internalErrorMessage
		}

		return appErr.HTTPCode(), body
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return httpErr.Code, domainerrors.NewErrorResponse(httpErr.Code, "HTTP_ERROR", message, nil, requestID)
	}

	return http.StatusInternalServerError, domainerrors.NewErrorResponse(
		http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(),
		internalErrorMessage,
		nil,
		requestID,
	)
}
