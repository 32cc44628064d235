// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPaymentNotFound is returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentFilter narrows ledger listings. Nil fields are ignored.
type PaymentFilter struct {
	Status *entity.PaymentStatus
	Method *entity.PaymentMethod
}

// PaymentRepository defines the interface for the payment ledger.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// Update follows the same optimistic versioning contract as PostRepository.Update.
	Update(ctx context.Context, payment *entity.Payment) error

	// FindByPost returns payments of a post, newest first.
	FindByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Payment, error)

	// List returns payments matching the filter, newest first.
	List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)
}
