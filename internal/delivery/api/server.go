package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"mescontacts/config"
	"mescontacts/internal/delivery"
	apimiddleware "mescontacts/internal/delivery/api/middleware"
	"mescontacts/internal/delivery/api/router"
	"mescontacts/internal/delivery/api/validator"
	"mescontacts/internal/delivery/middleware"
	"mescontacts/internal/domain/lifecycle"
	"mescontacts/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Collector
	RouterParams router.RouterParams
}

type apiServer struct {
	addr   string
	h2     *http2.Server
	logger *slog.Logger
	echo   *echo.Echo
}

// NewServer builds the listing and ledger API. It starts listening when the
// delivery runner calls Serve and drains in-flight requests on fx stop.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	srv := &apiServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(httpCfg.Port)),
		h2:     &http2.Server{IdleTimeout: httpCfg.Timeouts.IdleTimeout},
		logger: params.Logger,
		echo:   newEcho(params),
	}

	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	// Recover wraps everything. The request ID has to exist before the
	// access log line is written.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, cfg).Handle,
	)

	if cfg.Metrics.Enabled {
		e.Use(params.Metrics.Middleware())
		e.GET(cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	e.Use(
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func (s *apiServer) Serve(context.Context) error {
	s.logger.Info("API server listening", slog.String("addr", s.addr))

	err := s.echo.StartH2CServer(s.addr, s.h2)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.Wrap(err, "serve api")
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.InfoContext(ctx, "API server draining")

	return errors.Wrap(s.echo.Shutdown(ctx), "shutdown api")
}
