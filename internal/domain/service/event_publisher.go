package service

import (
	"context"
	"time"
)

// LifecycleEvent is emitted after a listing status transition has been committed.
type LifecycleEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	PostID         string    `json:"post_id"`
	PaymentID      string    `json:"payment_id,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status"`
	Reason         string    `json:"reason,omitempty"`
	ChangedBy      string    `json:"changed_by,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes a listing lifecycle event
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
