package usecase

import (
	"context"
	"time"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
)

// PostFields are the editable attributes of a listing.
type PostFields struct {
	BusinessName   string
	Category       string
	Description    string
	Phone          string
	Email          string
	Website        string
	Address        string
	City           string
	Province       string
	PostalCode     string
	Geo            *entity.GeoPoint
	UserID         *uuid.UUID
	OrganizationID *uuid.UUID
}

// UpdatePostInput carries the full replacement of a listing's fields and the version it was read at.
type UpdatePostInput struct {
	PostFields
	Version int
}

// ChangeStatusInput drives the admin status selector.
type ChangeStatusInput struct {
	Status entity.PostStatus
	Reason string
	// DurationDays, when set with PUBLISHED, restarts the publication window.
	DurationDays int
}

// SearchPostsInput filters the public directory. Only PUBLISHED listings are returned.
type SearchPostsInput struct {
	Category string
	Province string
	City     string
	Near     *entity.GeoPoint
	RadiusKm float64
	Limit    int
	Offset   int
}

// PostUsecase defines listing operations.
type PostUsecase interface {
	// Create stores a DRAFT listing. Admin only.
	Create(ctx context.Context, ac entity.AuthContext, input PostFields) (*entity.Post, error)
	// Update replaces listing fields, re-validating ownership. Admin only.
	Update(ctx context.Context, ac entity.AuthContext, id uuid.UUID, input UpdatePostInput) (*entity.Post, error)
	// Delete removes a listing. Admin only.
	Delete(ctx context.Context, ac entity.AuthContext, id uuid.UUID) error

	// GetByID returns PUBLISHED listings to anyone and any listing to admins.
	GetByID(ctx context.Context, ac entity.AuthContext, id uuid.UUID) (*entity.Post, error)
	// GetMyPosts returns the caller's listings, empty when anonymous.
	GetMyPosts(ctx context.Context, ac entity.AuthContext) ([]*entity.Post, error)
	// Search lists PUBLISHED listings.
	Search(ctx context.Context, input SearchPostsInput) ([]*entity.Post, error)
	// QRCode renders the PNG QR code of a PUBLISHED listing.
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ChangeStatus sets any status and logs it. Admin only.
	ChangeStatus(ctx context.Context, ac entity.AuthContext, id uuid.UUID, input ChangeStatusInput) (*entity.Post, error)
	// Disable takes a listing offline. Admin only.
	Disable(ctx context.Context, ac entity.AuthContext, id uuid.UUID, reason string) (*entity.Post, error)

	// ExpireDue moves PUBLISHED listings past their expiry to EXPIRED and returns how many moved.
	ExpireDue(ctx context.Context, now time.Time) (int, error)
}
