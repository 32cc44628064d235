package service

import "mescontacts/internal/domain/entity"

// LedgerMetrics records business counters for the payment ledger and listing lifecycle.
type LedgerMetrics interface {
	PaymentRecorded(status entity.PaymentStatus, method entity.PaymentMethod, amount int64)
	PaymentRefunded(method entity.PaymentMethod, amount int64)
	StatusChanged(from *entity.PostStatus, to entity.PostStatus)
}
