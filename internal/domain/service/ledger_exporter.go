package service

import (
	"context"

	"mescontacts/internal/domain/entity"
)

// LedgerExporter writes a snapshot of the payment ledger to durable storage.
type LedgerExporter interface {
	// Export stores the payments and returns the object key it wrote.
	Export(ctx context.Context, payments []*entity.Payment) (string, error)
}
