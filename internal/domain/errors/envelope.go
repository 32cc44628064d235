package errors

import "net/http"

// ErrorInfo is the public part of a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo carries request correlation data on every envelope.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// ErrorResponse is the body written for any non-2xx status.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewErrorResponse builds the envelope for status. Details are dropped for
// server failures and for authentication or authorization rejections.
func NewErrorResponse(status int, code, message string, details any, requestID string) ErrorResponse {
	if hidesDetails(status) {
		details = nil
	}

	return ErrorResponse{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  &MetaInfo{RequestID: requestID},
	}
}

// ResponseFor renders an AppError, keeping its details only when non-empty.
func ResponseFor(err AppError, requestID string) ErrorResponse {
	var details any
	if d := err.Details(); d != "" {
		details = d
	}

	return NewErrorResponse(err.HTTPCode(), err.ErrorCode(), err.Message(), details, requestID)
}

func hidesDetails(status int) bool {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	default:
		return status >= http.StatusInternalServerError
	}
}
