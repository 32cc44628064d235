package usecase

import (
	"context"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
)

// Limits for the activity feed.
const (
	DefaultRecentHistoryLimit = 20
	MaxRecentHistoryLimit     = 100
)

// StatusHistoryUsecase reads the listing audit trail. Admin only.
type StatusHistoryUsecase interface {
	GetByPost(ctx context.Context, ac entity.AuthContext, postID uuid.UUID) ([]*entity.StatusHistory, error)
	GetRecent(ctx context.Context, ac entity.AuthContext, limit int) ([]*entity.StatusHistory, error)
}
