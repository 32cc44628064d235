package usecase

import (
	"context"
	"time"

	"mescontacts/internal/domain/entity"
	"mescontacts/internal/domain/repository"

	"github.com/google/uuid"
)

// RecordPaymentInput defines a payment recorded by an administrator.
type RecordPaymentInput struct {
	PostID            uuid.UUID
	Amount            int64
	Method            entity.PaymentMethod
	DurationDays      int
	Notes             string
	ExternalReference string
	PaymentDate       *time.Time // defaults to now
	AutoPublish       *bool      // defaults to true; ignored by RecordPending
}

// ShouldPublish applies the autoPublish default.
func (in RecordPaymentInput) ShouldPublish() bool {
	return in.AutoPublish == nil || *in.AutoPublish
}

// RenewPostInput defines a renewal payment.
type RenewPostInput struct {
	PostID       uuid.UUID
	Amount       int64
	Method       entity.PaymentMethod
	DurationDays int
	Notes        string
}

// PaymentResult is the payment written by an operation and the listing it affected.
type PaymentResult struct {
	Payment *entity.Payment `json:"payment"`
	Post    *entity.Post    `json:"post"`
}

// ExportResult locates a ledger export.
type ExportResult struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// PaymentUsecase is the payment ledger. Every operation is admin only.
type PaymentUsecase interface {
	Record(ctx context.Context, ac entity.AuthContext, input RecordPaymentInput) (*PaymentResult, error)
	RecordPending(ctx context.Context, ac entity.AuthContext, input RecordPaymentInput) (*PaymentResult, error)
	ConfirmPending(ctx context.Context, ac entity.AuthContext, paymentID uuid.UUID) (*PaymentResult, error)
	Refund(ctx context.Context, ac entity.AuthContext, paymentID uuid.UUID, notes string) (*PaymentResult, error)
	Renew(ctx context.Context, ac entity.AuthContext, input RenewPostInput) (*PaymentResult, error)

	GetStats(ctx context.Context, ac entity.AuthContext) (*entity.PaymentStats, error)
	GetByPost(ctx context.Context, ac entity.AuthContext, postID uuid.UUID) ([]*entity.Payment, error)
	List(ctx context.Context, ac entity.AuthContext, filter repository.PaymentFilter) ([]*entity.Payment, error)
	Export(ctx context.Context, ac entity.AuthContext, filter repository.PaymentFilter) (*ExportResult, error)
}
