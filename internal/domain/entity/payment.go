// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	domainerrors "mescontacts/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PaymentMethod is how a payment was settled.
type PaymentMethod string

const (
	PaymentMethodCash      PaymentMethod = "CASH"
	PaymentMethodETransfer PaymentMethod = "E_TRANSFER"
	PaymentMethodVirement  PaymentMethod = "VIREMENT"
	PaymentMethodCard      PaymentMethod = "CARD"
	PaymentMethodOther     PaymentMethod = "OTHER"
)

// PaymentMethods lists every method in reporting order.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodETransfer,
	PaymentMethodVirement,
	PaymentMethodCard,
	PaymentMethodOther,
}

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodETransfer, PaymentMethodVirement, PaymentMethodCard, PaymentMethodOther:
		return true
	default:
		return false
	}
}

// PaymentStatus only moves forward: PENDING -> COMPLETED -> REFUNDED.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// PaymentEventKind tags an entry of a payment's audit events.
type PaymentEventKind string

const (
	PaymentEventRecorded  PaymentEventKind = "RECORDED"
	PaymentEventConfirmed PaymentEventKind = "CONFIRMED"
	PaymentEventRefunded  PaymentEventKind = "REFUNDED"
	PaymentEventRenewal   PaymentEventKind = "RENEWAL"
)

// PaymentEvent is one structured audit entry on a payment.
type PaymentEvent struct {
	Kind    PaymentEventKind `json:"kind"`
	At      time.Time        `json:"at"`
	ActorID *uuid.UUID       `json:"actorId,omitempty"`
	Detail  string           `json:"detail,omitempty"`
}

// Payment is a manually reconciled payment recorded against a listing.
type Payment struct {
	ID                uuid.UUID      `json:"id"`
	PostID            uuid.UUID      `json:"postId"`
	Amount            int64          `json:"amount"` // cents
	Method            PaymentMethod  `json:"method"`
	DurationDays      int            `json:"durationDays"`
	Status            PaymentStatus  `json:"status"`
	Notes             string         `json:"notes,omitempty"`
	ExternalReference string         `json:"externalReference,omitempty"`
	PaymentDate       time.Time      `json:"paymentDate"`
	RecordedBy        uuid.UUID      `json:"recordedBy"`
	Events            []PaymentEvent `json:"events"`
	Version           int            `json:"version"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// Confirm settles a PENDING payment.
func (p *Payment) Confirm(actor uuid.UUID, at time.Time) error {
	if p.Status != PaymentStatusPending {
		return errors.WithStack(domainerrors.ErrPaymentNotPending)
	}

	p.Status = PaymentStatusCompleted
	p.UpdatedAt = at
	p.addEvent(PaymentEventConfirmed, actor, at, "")

	return nil
}

// Refund reverses a COMPLETED payment. The detail is kept on the REFUNDED event.
func (p *Payment) Refund(actor uuid.UUID, at time.Time, detail string) error {
	if p.Status != PaymentStatusCompleted {
		return errors.WithStack(domainerrors.ErrPaymentNotCompleted)
	}

	p.Status = PaymentStatusRefunded
	p.UpdatedAt = at
	p.addEvent(PaymentEventRefunded, actor, at, detail)

	return nil
}

// HasEvent reports whether an event of the given kind was recorded.
func (p *Payment) HasEvent(kind PaymentEventKind) bool {
	for _, e := range p.Events {
		if e.Kind == kind {
			return true
		}
	}

	return false
}

// DisplayNotes renders events as bracketed markers ahead of the free-text notes,
// e.g. "[RENEWAL] [REFUNDED] customer cancelled | paid at desk".
func (p *Payment) DisplayNotes() string {
	parts := make([]string, 0, len(p.Events)+1)
	for _, e := range p.Events {
		switch e.Kind {
		case PaymentEventRefunded, PaymentEventRenewal:
			marker := "[" + string(e.Kind) + "]"
			if e.Detail != "" {
				marker += " " + e.Detail
			}
			parts = append(parts, marker)
		case PaymentEventRecorded, PaymentEventConfirmed:
		}
	}

	if p.Notes != "" {
		parts = append(parts, p.Notes)
	}

	return strings.Join(parts, " | ")
}

// AddEvent appends an audit event.
func (p *Payment) AddEvent(kind PaymentEventKind, actor uuid.UUID, at time.Time, detail string) {
	p.addEvent(kind, actor, at, detail)
}

func (p *Payment) addEvent(kind PaymentEventKind, actor uuid.UUID, at time.Time, detail string) {
	p.Events = append(p.Events, PaymentEvent{
		Kind:    kind,
		At:      at,
		ActorID: &actor,
		Detail:  detail,
	})
}

// PaymentStats aggregates the ledger. All amounts are cents.
type PaymentStats struct {
	TotalCount     int                     `json:"totalCount"`
	CompletedCount int                     `json:"completedCount"`
	PendingCount   int                     `json:"pendingCount"`
	RefundedCount  int                     `json:"refundedCount"`
	TotalRevenue   int64                   `json:"totalRevenue"`
	PendingAmount  int64                   `json:"pendingAmount"`
	RefundedAmount int64                   `json:"refundedAmount"`
	ByMethod       map[PaymentMethod]int64 `json:"byMethod"`
}

// AggregatePayments computes ledger statistics. byMethod sums COMPLETED payments only.
func AggregatePayments(payments []*Payment) *PaymentStats {
	stats := &PaymentStats{ByMethod: make(map[PaymentMethod]int64, len(PaymentMethods))}
	for _, m := range PaymentMethods {
		stats.ByMethod[m] = 0
	}

	for _, p := range payments {
		stats.TotalCount++
		switch p.Status {
		case PaymentStatusCompleted:
			stats.CompletedCount++
			stats.TotalRevenue += p.Amount
			stats.ByMethod[p.Method] += p.Amount
		case PaymentStatusPending:
			stats.PendingCount++
			stats.PendingAmount += p.Amount
		case PaymentStatusRefunded:
			stats.RefundedCount++
			stats.RefundedAmount += p.Amount
		}
	}

	return stats
}
