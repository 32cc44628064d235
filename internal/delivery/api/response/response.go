// Package response writes the JSON envelopes returned by the API.
package response

import (
	"net/http"

	"mescontacts/internal/delivery/api/validator"
	deliverycontext "mescontacts/internal/delivery/context"
	domainerrors "mescontacts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any                    `json:"data"`
	Meta *domainerrors.MetaInfo `json:"meta"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, domainerrors.NewErrorResponse(
		statusCode, errorCode, message, details, deliverycontext.GetRequestID(c),
	))
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// ValidationError reports each failed field rule in details.
func ValidationError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		validator.FieldErrors(err),
	)
}

// HandleAppError writes AppErrors directly and hands anything else to the centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			return errors.WithStack(err)
		}

		return c.JSON(appErr.HTTPCode(), domainerrors.ResponseFor(appErr, deliverycontext.GetRequestID(c)))
	}

	return errors.WithStack(err)
}
