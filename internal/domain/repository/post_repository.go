// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Domain-specific errors for post persistence.
var (
	ErrPostNotFound = errors.New("post not found")
	// ErrVersionConflict is returned when an update races with another writer.
	ErrVersionConflict = errors.New("version conflict")
)

// PostFilter narrows post listings. Zero fields are ignored.
type PostFilter struct {
	Status   *entity.PostStatus
	Category string
	Province string
	City     string
	Within   *orb.Bound // geo bounding box prefilter
	Limit    int
	Offset   int
}

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// Update writes the post if its stored version still equals post.Version,
	// then increments post.Version. Returns ErrVersionConflict otherwise.
	Update(ctx context.Context, post *entity.Post) error

	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter PostFilter) ([]*entity.Post, error)

	// FindByOwners returns posts owned by the user or any of the organizations.
	FindByOwners(ctx context.Context, userID uuid.UUID, organizationIDs []uuid.UUID) ([]*entity.Post, error)

	// FindDueForExpiry returns PUBLISHED posts whose expiresAt is at or before now.
	FindDueForExpiry(ctx context.Context, now time.Time, limit int) ([]*entity.Post, error)
}
