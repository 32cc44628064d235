package service

import (
	"context"

	"mescontacts/internal/domain/entity"
)

// StatsCache stores the last computed ledger statistics.
type StatsCache interface {
	// Get returns the cached stats and whether they were present.
	Get(ctx context.Context) (*entity.PaymentStats, bool, error)
	Set(ctx context.Context, stats *entity.PaymentStats) error
	// Invalidate drops the cached stats after a ledger write.
	Invalidate(ctx context.Context) error
}
