// Package worker runs background jobs next to the API server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mescontacts/config"
	"mescontacts/internal/delivery"
	"mescontacts/internal/domain/service"
	"mescontacts/internal/usecase"

	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the expiry sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Clock  service.Clock
	PostUC usecase.PostUsecase
}

// expirySweeper periodically moves published listings past their expiry to EXPIRED.
type expirySweeper struct {
	interval time.Duration
	clock    service.Clock
	postUC   usecase.PostUsecase
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewExpirySweeper creates the sweeper delivery.
func NewExpirySweeper(params SweeperParams) delivery.Delivery {
	s := newExpirySweeper(params.Cfg.Listing.SweepInterval, params.Clock, params.PostUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newExpirySweeper(interval time.Duration, clock service.Clock, postUC usecase.PostUsecase, logger *slog.Logger) *expirySweeper {
	return &expirySweeper{
		interval: interval,
		clock:    clock,
		postUC:   postUC,
		logger:   logger.With(slog.String("component", "expiry_sweeper")),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Serve sweeps once immediately, then on every tick until ctx is done or the sweeper is stopped.
func (s *expirySweeper) Serve(ctx context.Context) error {
	defer close(s.doneCh)

	s.logger.Info("Starting expiry sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *expirySweeper) sweep(ctx context.Context) {
	expired, err := s.postUC.ExpireDue(ctx, s.clock())
	if err != nil {
		s.logger.ErrorContext(ctx, "Expiry sweep failed", slog.Any("error", err))

		return
	}
	if expired > 0 {
		s.logger.InfoContext(ctx, "Expired listings", slog.Int("count", expired))
	}
}

func (s *expirySweeper) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	s.logger.Info("Shutting down expiry sweeper")

	select {
	case <-s.doneCh:
	case <-ctx.Done():
	}

	return nil
}
