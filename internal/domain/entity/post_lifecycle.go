// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Transition describes who triggers a status change and why.
type Transition struct {
	Actor  *uuid.UUID
	Reason string
	At     time.Time
}

// Publish moves a DRAFT listing to PUBLISHED for the given number of days.
func (p *Post) Publish(days int, tr Transition) (*StatusHistory, error) {
	if err := validation.ValidateDurationDays(days); err != nil {
		return nil, err
	}
	if p.Status != PostStatusDraft {
		return nil, errors.WithStack(domainerrors.ErrPostNotDraft.WithDetails("current status is " + p.Status.String()))
	}

	p.schedule(days, tr.At)

	return p.apply(PostStatusPublished, tr), nil
}

// Renew brings an EXPIRED or DISABLED listing back to PUBLISHED, counting days from now.
func (p *Post) Renew(days int, tr Transition) (*StatusHistory, error) {
	if err := validation.ValidateDurationDays(days); err != nil {
		return nil, err
	}
	if !p.Status.Renewable() {
		return nil, errors.WithStack(domainerrors.ErrPostNotRenewable)
	}

	p.schedule(days, tr.At)

	return p.apply(PostStatusPublished, tr), nil
}

// Disable takes a listing offline. Publication timestamps are kept for the audit trail.
func (p *Post) Disable(tr Transition) (*StatusHistory, error) {
	if p.Status == PostStatusDisabled {
		return nil, errors.WithStack(domainerrors.ErrPostAlreadyDisabled)
	}

	return p.apply(PostStatusDisabled, tr), nil
}

// Expire marks a PUBLISHED listing whose expiry has passed as EXPIRED.
func (p *Post) Expire(tr Transition) (*StatusHistory, error) {
	if !p.IsPastExpiry(tr.At) {
		return nil, errors.WithStack(domainerrors.ErrPostNotExpirable)
	}

	return p.apply(PostStatusExpired, tr), nil
}

// ChangeStatus sets any status without lifecycle guards. Used by the admin
// status selector. Moving to PUBLISHED with days > 0 schedules a fresh
// publication window. With days == 0 an expiry that is missing or already
// past is cleared, so the listing stays up until an admin or a renewal
// changes it instead of being expired again by the next sweep.
func (p *Post) ChangeStatus(to PostStatus, days int, tr Transition) (*StatusHistory, error) {
	if !to.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown status " + to.String()))
	}
	if days != 0 {
		if to != PostStatusPublished {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("durationDays only applies when publishing"))
		}
		if err := validation.ValidateDurationDays(days); err != nil {
			return nil, err
		}
	}

	if to == PostStatusPublished {
		switch {
		case days > 0:
			p.schedule(days, tr.At)
		case p.ExpiresAt != nil && !tr.At.Before(*p.ExpiresAt):
			p.ExpiresAt = nil
		}
		if p.PublishedAt == nil {
			publishedAt := tr.At
			p.PublishedAt = &publishedAt
		}
	}

	return p.apply(to, tr), nil
}

func (p *Post) schedule(days int, now time.Time) {
	publishedAt := now
	expiresAt := validation.CalculateExpiresAt(now, days)
	p.PublishedAt = &publishedAt
	p.ExpiresAt = &expiresAt
}

func (p *Post) apply(to PostStatus, tr Transition) *StatusHistory {
	previous := p.Status
	p.Status = to
	p.UpdatedAt = tr.At

	return &StatusHistory{
		ID:             uuid.New(),
		PostID:         p.ID,
		PreviousStatus: &previous,
		NewStatus:      to,
		Reason:         tr.Reason,
		ChangedBy:      tr.Actor,
		CreatedAt:      tr.At,
	}
}

// InitialHistory is the entry recorded when a listing is created in DRAFT.
func (p *Post) InitialHistory(tr Transition) *StatusHistory {
	return &StatusHistory{
		ID:        uuid.New(),
		PostID:    p.ID,
		NewStatus: p.Status,
		Reason:    tr.Reason,
		ChangedBy: tr.Actor,
		CreatedAt: tr.At,
	}
}
