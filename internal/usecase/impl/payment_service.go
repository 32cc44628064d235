package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/domain/service"
	"mescontacts/internal/domain/validation"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	reasonPaymentRecorded  = "Payment recorded"
	reasonPaymentConfirmed = "Pending payment confirmed"
	reasonPaymentRefunded  = "Payment refunded"
	reasonPostRenewed      = "Post renewed"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager  repository.TransactionManager
	statsCache service.StatsCache
	exporter   service.LedgerExporter
	metrics    service.LedgerMetrics
	notifier   *lifecycleNotifier
	clock      service.Clock
	logger     *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	StatsCache service.StatsCache
	Exporter   service.LedgerExporter
	Publisher  service.EventPublisher
	Metrics    service.LedgerMetrics
	Clock      service.Clock
	Logger     *slog.Logger
}

// NewPaymentService creates a new payment ledger service.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:  params.TxManager,
		statsCache: params.StatsCache,
		exporter:   params.Exporter,
		metrics:    params.Metrics,
		notifier: &lifecycleNotifier{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		clock:  params.Clock,
		logger: params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record stores a COMPLETED payment and, unless disabled, publishes the post in the same transaction.
func (srv *paymentService) Record(ctx context.Context, ac entity.AuthContext, input usecase.RecordPaymentInput) (*usecase.PaymentResult, error) {
	return srv.record(ctx, ac, input, entity.PaymentStatusCompleted, input.ShouldPublish())
}

// RecordPending stores a PENDING payment. The post is left untouched.
func (srv *paymentService) RecordPending(ctx context.Context, ac entity.AuthContext, input usecase.RecordPaymentInput) (*usecase.PaymentResult, error) {
	return srv.record(ctx, ac, input, entity.PaymentStatusPending, false)
}

func (srv *paymentService) record(
	ctx context.Context,
	ac entity.AuthContext,
	input usecase.RecordPaymentInput,
	status entity.PaymentStatus,
	publish bool,
) (*usecase.PaymentResult, error) {
	if err := validatePaymentTerms(input.Amount, input.Method, input.DurationDays); err != nil {
		return nil, err
	}

	now := srv.clock()
	var (
		result = &usecase.PaymentResult{}
		entry  *entity.StatusHistory
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		admin, err := requireAdmin(ctx, repoFactory.UserRepo(), ac)
		if err != nil {
			return err
		}

		post, err := findPost(ctx, repoFactory.PostRepo(), input.PostID)
		if err != nil {
			return err
		}

		paymentDate := now
		if input.PaymentDate != nil {
			paymentDate = *input.PaymentDate
		}
		payment := newPayment(input.PostID, input.Amount, input.Method, input.DurationDays, status, admin.ID, now)
		payment.Notes = input.Notes
		payment.ExternalReference = input.ExternalReference
		payment.PaymentDate = paymentDate

		if err := repoFactory.PaymentRepo().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		if publish {
			entry, err = post.Publish(input.DurationDays, entity.Transition{Actor: &admin.ID, Reason: reasonPaymentRecorded, At: now})
			if err != nil {
				return err
			}
			if err := saveTransition(ctx, repoFactory, post, entry); err != nil {
				return err
			}
		}

		result.Payment, result.Post = payment, post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to record payment", slog.Any("postID", input.PostID), slog.String("status", status.String()), slog.Any("error", err))

		return nil, err
	}

	srv.afterLedgerWrite(ctx)
	srv.metrics.PaymentRecorded(status, input.Method, input.Amount)
	srv.notifier.notify(ctx, &result.Payment.ID, entry)
	srv.log(ctx).Info("Payment recorded",
		slog.Any("paymentID", result.Payment.ID),
		slog.Any("postID", input.PostID),
		slog.String("status", status.String()),
		slog.Bool("published", entry != nil),
	)

	return result, nil
}

// ConfirmPending completes a PENDING payment and publishes a draft post or renews an expired or disabled one.
func (srv *paymentService) ConfirmPending(ctx context.Context, ac entity.AuthContext, paymentID uuid.UUID) (*usecase.PaymentResult, error) {
	now := srv.clock()
	var (
		result = &usecase.PaymentResult{}
		entry  *entity.StatusHistory
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		admin, err := requireAdmin(ctx, repoFactory.UserRepo(), ac)
		if err != nil {
			return err
		}

		paymentRepo := repoFactory.PaymentRepo()
		payment, err := findPayment(ctx, paymentRepo, paymentID)
		if err != nil {
			return err
		}
		if err := payment.Confirm(admin.ID, now); err != nil {
			return err
		}
		if err := paymentRepo.Update(ctx, payment); err != nil {
			return versionConflict(err, "failed to update payment")
		}

		post, err := findPost(ctx, repoFactory.PostRepo(), payment.PostID)
		if err != nil {
			return err
		}

		tr := entity.Transition{Actor: &admin.ID, Reason: reasonPaymentConfirmed, At: now}
		switch {
		case post.Status == entity.PostStatusDraft:
			entry, err = post.Publish(payment.DurationDays, tr)
		case post.Status.Renewable():
			entry, err = post.Renew(payment.DurationDays, tr)
		default:
			err = errors.WithStack(domainerrors.ErrPostAlreadyPublished)
		}
		if err != nil {
			return err
		}
		if err := saveTransition(ctx, repoFactory, post, entry); err != nil {
			return err
		}

		result.Payment, result.Post = payment, post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to confirm pending payment", slog.Any("paymentID", paymentID), slog.Any("error", err))

		return nil, err
	}

	srv.afterLedgerWrite(ctx)
	srv.metrics.PaymentRecorded(entity.PaymentStatusCompleted, result.Payment.Method, result.Payment.Amount)
	srv.notifier.notify(ctx, &paymentID, entry)

	return result, nil
}

// Refund marks a COMPLETED payment as refunded and takes its post offline.
func (srv *paymentService) Refund(ctx context.Context, ac entity.AuthContext, paymentID uuid.UUID, notes string) (*usecase.PaymentResult, error) {
	now := srv.clock()
	var (
		result = &usecase.PaymentResult{}
		entry  *entity.StatusHistory
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		admin, err := requireAdmin(ctx, repoFactory.UserRepo(), ac)
		if err != nil {
			return err
		}

		paymentRepo := repoFactory.PaymentRepo()
		payment, err := findPayment(ctx, paymentRepo, paymentID)
		if err != nil {
			return err
		}
		if err := payment.Refund(admin.ID, now, notes); err != nil {
			return err
		}
		if err := paymentRepo.Update(ctx, payment); err != nil {
			return versionConflict(err, "failed to update payment")
		}

		post, err := findPost(ctx, repoFactory.PostRepo(), payment.PostID)
		if err != nil {
			return err
		}
		if post.Status != entity.PostStatusDisabled {
			entry, err = post.Disable(entity.Transition{Actor: &admin.ID, Reason: reasonPaymentRefunded, At: now})
			if err != nil {
				return err
			}
			if err := saveTransition(ctx, repoFactory, post, entry); err != nil {
				return err
			}
		}

		result.Payment, result.Post = payment, post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refund payment", slog.Any("paymentID", paymentID), slog.Any("error", err))

		return nil, err
	}

	srv.afterLedgerWrite(ctx)
	srv.metrics.PaymentRefunded(result.Payment.Method, result.Payment.Amount)
	srv.notifier.notify(ctx, &paymentID, entry)
	srv.log(ctx).Info("Payment refunded", slog.Any("paymentID", paymentID), slog.Any("postID", result.Post.ID))

	return result, nil
}

// Renew records a COMPLETED renewal payment and republishes an expired or disabled post.
func (srv *paymentService) Renew(ctx context.Context, ac entity.AuthContext, input usecase.RenewPostInput) (*usecase.PaymentResult, error) {
	if err := validatePaymentTerms(input.Amount, input.Method, input.DurationDays); err != nil {
		return nil, err
	}

	now := srv.clock()
	var (
		result = &usecase.PaymentResult{}
		entry  *entity.StatusHistory
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		admin, err := requireAdmin(ctx, repoFactory.UserRepo(), ac)
		if err != nil {
			return err
		}

		post, err := findPost(ctx, repoFactory.PostRepo(), input.PostID)
		if err != nil {
			return err
		}

		entry, err = post.Renew(input.DurationDays, entity.Transition{Actor: &admin.ID, Reason: reasonPostRenewed, At: now})
		if err != nil {
			return err
		}

		payment := newPayment(input.PostID, input.Amount, input.Method, input.DurationDays, entity.PaymentStatusCompleted, admin.ID, now)
		payment.Notes = input.Notes
		payment.AddEvent(entity.PaymentEventRenewal, admin.ID, now, "")

		if err := repoFactory.PaymentRepo().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create renewal payment")
		}
		if err := saveTransition(ctx, repoFactory, post, entry); err != nil {
			return err
		}

		result.Payment, result.Post = payment, post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to renew post", slog.Any("postID", input.PostID), slog.Any("error", err))

		return nil, err
	}

	srv.afterLedgerWrite(ctx)
	srv.metrics.PaymentRecorded(entity.PaymentStatusCompleted, input.Method, input.Amount)
	srv.notifier.notify(ctx, &result.Payment.ID, entry)

	return result, nil
}

// GetStats aggregates the whole ledger, served from the stats cache when possible.
func (srv *paymentService) GetStats(ctx context.Context, ac entity.AuthContext) (*entity.PaymentStats, error) {
	var stats *entity.PaymentStats
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		cached, ok, err := srv.statsCache.Get(ctx)
		if err != nil {
			srv.log(ctx).Warn("Failed to read ledger stats cache", slog.Any("error", err))
		}
		if ok {
			stats = cached

			return nil
		}

		payments, err := repoFactory.PaymentRepo().List(ctx, repository.PaymentFilter{})
		if err != nil {
			return errors.Wrap(err, "failed to list payments")
		}
		stats = entity.AggregatePayments(payments)

		if err := srv.statsCache.Set(ctx, stats); err != nil {
			srv.log(ctx).Warn("Failed to write ledger stats cache", slog.Any("error", err))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (srv *paymentService) GetByPost(ctx context.Context, ac entity.AuthContext, postID uuid.UUID) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}
		if _, err := findPost(ctx, repoFactory.PostRepo(), postID); err != nil {
			return err
		}

		var err error
		payments, err = repoFactory.PaymentRepo().FindByPost(ctx, postID)

		return errors.Wrap(err, "failed to find payments by post")
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (srv *paymentService) List(ctx context.Context, ac entity.AuthContext, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	if err := validatePaymentFilter(filter); err != nil {
		return nil, err
	}

	var payments []*entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		var err error
		payments, err = repoFactory.PaymentRepo().List(ctx, filter)

		return errors.Wrap(err, "failed to list payments")
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// Export writes the filtered ledger as a CSV object and returns its key.
func (srv *paymentService) Export(ctx context.Context, ac entity.AuthContext, filter repository.PaymentFilter) (*usecase.ExportResult, error) {
	payments, err := srv.List(ctx, ac, filter)
	if err != nil {
		return nil, err
	}

	key, err := srv.exporter.Export(ctx, payments)
	if err != nil {
		srv.log(ctx).Error("Failed to export ledger", slog.Int("count", len(payments)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to export ledger")
	}

	srv.log(ctx).Info("Ledger exported", slog.String("key", key), slog.Int("count", len(payments)))

	return &usecase.ExportResult{Key: key, Count: len(payments)}, nil
}

// afterLedgerWrite drops cached stats once a ledger write has been committed.
func (srv *paymentService) afterLedgerWrite(ctx context.Context) {
	if err := srv.statsCache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Failed to invalidate ledger stats cache", slog.Any("error", err))
	}
}

func newPayment(
	postID uuid.UUID,
	amount int64,
	method entity.PaymentMethod,
	durationDays int,
	status entity.PaymentStatus,
	recordedBy uuid.UUID,
	now time.Time,
) *entity.Payment {
	payment := &entity.Payment{
		ID:           uuid.New(),
		PostID:       postID,
		Amount:       amount,
		Method:       method,
		DurationDays: durationDays,
		Status:       status,
		PaymentDate:  now,
		RecordedBy:   recordedBy,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	payment.AddEvent(entity.PaymentEventRecorded, recordedBy, now, "")

	return payment
}

func findPayment(ctx context.Context, paymentRepo repository.PaymentRepository, id uuid.UUID) (*entity.Payment, error) {
	payment, err := paymentRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, errors.WithStack(domainerrors.ErrPaymentNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

func validatePaymentTerms(amount int64, method entity.PaymentMethod, durationDays int) error {
	if err := validation.ValidateAmount(amount); err != nil {
		return err
	}
	if !method.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown payment method " + method.String()))
	}

	return validation.ValidateDurationDays(durationDays)
}

func validatePaymentFilter(filter repository.PaymentFilter) error {
	if filter.Status != nil && !filter.Status.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown payment status " + filter.Status.String()))
	}
	if filter.Method != nil && !filter.Method.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown payment method " + filter.Method.String()))
	}

	return nil
}
