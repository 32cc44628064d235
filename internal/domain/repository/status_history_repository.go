// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
)

// StatusHistoryRepository is append-only: there is no update or delete.
type StatusHistoryRepository interface {
	Append(ctx context.Context, entry *entity.StatusHistory) error

	// FindByPost returns entries of a post, oldest first.
	FindByPost(ctx context.Context, postID uuid.UUID) ([]*entity.StatusHistory, error)

	// FindRecent returns the latest entries across all posts, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.StatusHistory, error)
}
