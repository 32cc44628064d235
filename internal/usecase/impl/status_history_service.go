package impl

import (
	"context"
	"log/slog"

	"mescontacts/internal/domain/entity"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// statusHistoryService implements the StatusHistoryUsecase interface.
type statusHistoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewStatusHistoryService creates a new status history service.
func NewStatusHistoryService(txManager repository.TransactionManager, logger *slog.Logger) usecase.StatusHistoryUsecase {
	return &statusHistoryService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *statusHistoryService) GetByPost(ctx context.Context, ac entity.AuthContext, postID uuid.UUID) ([]*entity.StatusHistory, error) {
	var entries []*entity.StatusHistory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}
		if _, err := findPost(ctx, repoFactory.PostRepo(), postID); err != nil {
			return err
		}

		var err error
		entries, err = repoFactory.StatusHistoryRepo().FindByPost(ctx, postID)

		return errors.Wrap(err, "failed to find status history")
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// GetRecent clamps limit to [1, MaxRecentHistoryLimit], defaulting to DefaultRecentHistoryLimit.
func (srv *statusHistoryService) GetRecent(ctx context.Context, ac entity.AuthContext, limit int) ([]*entity.StatusHistory, error) {
	if limit <= 0 {
		limit = usecase.DefaultRecentHistoryLimit
	}
	limit = min(limit, usecase.MaxRecentHistoryLimit)

	var entries []*entity.StatusHistory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		var err error
		entries, err = repoFactory.StatusHistoryRepo().FindRecent(ctx, limit)

		return errors.Wrap(err, "failed to find recent status history")
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
