package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mescontacts/config"
	apimiddleware "mescontacts/internal/delivery/api/middleware"
	"mescontacts/internal/delivery/api/router"
	"mescontacts/internal/delivery/api/router/handler"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/infra/metrics"
	mockservice "mescontacts/internal/mocks/service"
	mockusecase "mescontacts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	echo     *echo.Echo
	verifier *mockservice.MockIdentityVerifier
	postUC   *mockusecase.MockPostUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	verifier := mockservice.NewMockIdentityVerifier(t)
	postUC := mockusecase.NewMockPostUsecase(t)

	e := newEcho(ServerParams{
		Cfg:     cfg,
		Logger:  slog.Default(),
		Metrics: metrics.NewCollector(cfg),
		RouterParams: router.RouterParams{
			PostHandler:         handler.NewPostHandler(handler.PostHandlerParams{PostUC: postUC}),
			PaymentHandler:      handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: mockusecase.NewMockPaymentUsecase(t)}),
			HistoryHandler:      handler.NewHistoryHandler(handler.HistoryHandlerParams{HistoryUC: mockusecase.NewMockStatusHistoryUsecase(t)}),
			UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{UserUC: mockusecase.NewMockUserUsecase(t)}),
			OrganizationHandler: handler.NewOrganizationHandler(handler.OrganizationHandlerParams{OrganizationUC: mockusecase.NewMockOrganizationUsecase(t)}),
			AuthMiddleware:      apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{Verifier: verifier, Logger: slog.Default()}),
		},
	})

	return &testServer{echo: e, verifier: verifier, postUC: postUC}
}

func (s *testServer) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_Identify(t *testing.T) {
	t.Run("anonymous callers reach the use case", func(t *testing.T) {
		s := newTestServer(t)
		s.postUC.EXPECT().GetMyPosts(mock.Anything, entity.Anonymous()).Return([]*entity.Post{}, nil)

		rec := s.do(http.MethodGet, "/api/v1/posts/mine", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("verified bearer tokens become an authenticated context", func(t *testing.T) {
		s := newTestServer(t)

		identity := &entity.Identity{TokenIdentifier: "https://issuer.test|u1", Subject: "u1", Issuer: "https://issuer.test"}
		s.verifier.EXPECT().VerifyToken(mock.Anything, "good-token").Return(identity, nil)
		s.postUC.EXPECT().GetMyPosts(mock.Anything, entity.Authenticated(identity)).Return([]*entity.Post{}, nil)

		rec := s.do(http.MethodGet, "/api/v1/posts/mine", "Bearer good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejected tokens stop the request with 401", func(t *testing.T) {
		s := newTestServer(t)
		s.verifier.EXPECT().VerifyToken(mock.Anything, "bad-token").
			Return(nil, domainerrors.ErrInvalidIdentityToken.WrapMessage("token is expired"))

		rec := s.do(http.MethodGet, "/api/v1/posts/mine", "Bearer bad-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_IDENTITY_TOKEN")
	})

	t.Run("non bearer schemes are rejected", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, "/api/v1/posts/mine", "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_UnexpectedErrorsAreHidden(t *testing.T) {
	s := newTestServer(t)
	s.postUC.EXPECT().GetMyPosts(mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused at 10.0.0.3"))

	rec := s.do(http.MethodGet, "/api/v1/posts/mine", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)
	s.postUC.EXPECT().GetMyPosts(mock.Anything, mock.Anything).Return([]*entity.Post{}, nil)

	s.do(http.MethodGet, "/api/v1/posts/mine", "")
	rec := s.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `mescontacts_http_requests_total{method="GET",path="/api/v1/posts/mine",status="200"} 1`), body)
}
