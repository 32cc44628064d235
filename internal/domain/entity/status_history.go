// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistory is one immutable entry of a listing's status audit trail.
type StatusHistory struct {
	ID             uuid.UUID   `json:"id"`
	PostID         uuid.UUID   `json:"postId"`
	PreviousStatus *PostStatus `json:"previousStatus"` // nil for the first transition
	NewStatus      PostStatus  `json:"newStatus"`
	Reason         string      `json:"reason,omitempty"`
	ChangedBy      *uuid.UUID  `json:"changedBy,omitempty"` // nil when the system made the change
	CreatedAt      time.Time   `json:"createdAt"`
}
