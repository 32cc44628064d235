package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mescontacts/config"
	deliverycontext "mescontacts/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "keeps a client id", header: "abc-123", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces ids with spaces", header: "abc 123"},
		{name: "replaces oversized ids", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			e := echo.New()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID, ctxID string
			h := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestID(c)
				ctx := c.Request().Context()
				ctxID = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).InfoContext(ctx, "inside")

				return nil
			})

			require.NoError(t, h(c))
			assert.NotEmpty(t, seenID)
			assert.Equal(t, seenID, ctxID)
			assert.Equal(t, seenID, rec.Header().Get(echo.HeaderXRequestID))
			assert.Contains(t, buf.String(), `"request_id":"`+seenID+`"`)
			if tt.wantSame {
				assert.Equal(t, tt.header, seenID)
			} else {
				assert.NotEqual(t, tt.header, seenID)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	run := func(debug bool, handler echo.HandlerFunc) string {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/posts/mine", nil), httptest.NewRecorder())
		_ = NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg).Handle(handler)(c)

		return buf.String()
	}

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	fail := func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") }

	assert.Empty(t, run(false, ok))
	assert.Contains(t, run(true, ok), `"status":200`)

	out := run(false, fail)
	assert.Contains(t, out, `"status":502`)
	assert.Contains(t, out, `"level":"ERROR"`)
}
