// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PostStatus is the lifecycle state of a listing.
type PostStatus string

const (
	// PostStatusDraft is the initial state of every listing.
	PostStatusDraft PostStatus = "DRAFT"
	// PostStatusPublished is visible to the public until it expires.
	PostStatusPublished PostStatus = "PUBLISHED"
	// PostStatusExpired is reached once expiresAt has passed.
	PostStatusExpired PostStatus = "EXPIRED"
	// PostStatusDisabled is set by an administrator or by a refund.
	PostStatusDisabled PostStatus = "DISABLED"
)

// String returns the string representation of the PostStatus.
func (s PostStatus) String() string {
	return string(s)
}

// IsValid checks if the PostStatus is a valid value.
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusExpired, PostStatusDisabled:
		return true
	default:
		return false
	}
}

// Renewable reports whether a new payment may bring the listing back to PUBLISHED.
func (s PostStatus) Renewable() bool {
	switch s {
	case PostStatusExpired, PostStatusDisabled:
		return true
	case PostStatusDraft, PostStatusPublished:
		return false
	default:
		return false
	}
}

// GeoPoint is a WGS84 longitude/latitude pair.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Point converts the pair to an orb.Point.
func (g GeoPoint) Point() orb.Point {
	return orb.Point{g.Longitude, g.Latitude}
}

// Post is a business directory listing.
// Exactly one of UserID and OrganizationID is set.
type Post struct {
	ID             uuid.UUID  `json:"id"`
	BusinessName   string     `json:"businessName"`
	Category       string     `json:"category"`
	Description    string     `json:"description,omitempty"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	Website        string     `json:"website,omitempty"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	Province       string     `json:"province"`
	PostalCode     string     `json:"postalCode"`
	Geo            *GeoPoint  `json:"geo,omitempty"`
	Status         PostStatus `json:"status"`
	UserID         *uuid.UUID `json:"userId,omitempty"`
	OrganizationID *uuid.UUID `json:"organizationId,omitempty"`
	CreatedBy      uuid.UUID  `json:"createdBy"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// IsPastExpiry reports whether a published listing has reached its expiry.
func (p *Post) IsPastExpiry(now time.Time) bool {
	return p.Status == PostStatusPublished && p.ExpiresAt != nil && !now.Before(*p.ExpiresAt)
}

// OwnedBy reports whether the listing belongs to the user directly or to one of the organizations.
func (p *Post) OwnedBy(userID uuid.UUID, organizationIDs []uuid.UUID) bool {
	if p.UserID != nil && *p.UserID == userID {
		return true
	}
	if p.OrganizationID == nil {
		return false
	}
	for _, id := range organizationIDs {
		if id == *p.OrganizationID {
			return true
		}
	}

	return false
}
