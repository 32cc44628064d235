package impl

import (
	"context"
	"log/slog"

	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// lifecycleNotifier reports committed status transitions. It must only be called after commit.
type lifecycleNotifier struct {
	publisher service.EventPublisher
	metrics   service.LedgerMetrics
	logger    *slog.Logger
}

func (n *lifecycleNotifier) notify(ctx context.Context, paymentID *uuid.UUID, entries ...*entity.StatusHistory) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		n.metrics.StatusChanged(entry.PreviousStatus, entry.NewStatus)

		event := &service.LifecycleEvent{
			RequestID:  requestID,
			PostID:     entry.PostID.String(),
			NewStatus:  entry.NewStatus.String(),
			Reason:     entry.Reason,
			OccurredAt: entry.CreatedAt,
		}
		if entry.PreviousStatus != nil {
			event.PreviousStatus = entry.PreviousStatus.String()
		}
		if entry.ChangedBy != nil {
			event.ChangedBy = entry.ChangedBy.String()
		}
		if paymentID != nil {
			event.PaymentID = paymentID.String()
		}

		// The transition is already committed; a lost event is logged, not returned.
		if err := n.publisher.PublishLifecycleEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish lifecycle event",
				slog.String("postID", event.PostID),
				slog.String("newStatus", event.NewStatus),
				slog.Any("error", err),
			)
		}
	}
}

func findPost(ctx context.Context, postRepo repository.PostRepository, id uuid.UUID) (*entity.Post, error) {
	post, err := postRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, errors.WithStack(domainerrors.ErrPostNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// saveTransition writes the post and its history entry within the caller's transaction.
func saveTransition(ctx context.Context, repoFactory repository.RepositoryFactory, post *entity.Post, entry *entity.StatusHistory) error {
	if err := repoFactory.PostRepo().Update(ctx, post); err != nil {
		return versionConflict(err, "failed to update post")
	}

	return errors.Wrap(repoFactory.StatusHistoryRepo().Append(ctx, entry), "failed to append status history")
}

// versionConflict maps an optimistic locking failure to ErrConcurrentModification.
func versionConflict(err error, message string) error {
	if errors.Is(err, repository.ErrVersionConflict) {
		return errors.WithStack(domainerrors.ErrConcurrentModification)
	}

	return errors.Wrap(err, message)
}
