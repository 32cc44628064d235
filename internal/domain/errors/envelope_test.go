package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponseDropsDetails(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantNil bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest},
		{name: "conflict keeps details", status: http.StatusConflict},
		{name: "unauthorized", status: http.StatusUnauthorized, wantNil: true},
		{name: "forbidden", status: http.StatusForbidden, wantNil: true},
		{name: "internal", status: http.StatusInternalServerError, wantNil: true},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewErrorResponse(tt.status, "CODE", "msg", "field x", "req-1")

			require.NotNil(t, resp.Error)
			assert.Equal(t, "CODE", resp.Error.Code)
			assert.Equal(t, "req-1", resp.Meta.RequestID)
			if tt.wantNil {
				assert.Nil(t, resp.Error.Details)
			} else {
				assert.Equal(t, "field x", resp.Error.Details)
			}
		})
	}
}

func TestResponseFor(t *testing.T) {
	resp := ResponseFor(ErrPostNotFound, "req-2")
	assert.Equal(t, "POST_NOT_FOUND", resp.Error.Code)
	assert.Nil(t, resp.Error.Details)

	resp = ResponseFor(ErrConcurrentModification.WithDetails("version 3"), "req-3")
	assert.Equal(t, "CONCURRENT_MODIFICATION", resp.Error.Code)
	assert.Equal(t, "version 3", resp.Error.Details)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrPaymentNotFound.WrapMessage("load payment")))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
}
