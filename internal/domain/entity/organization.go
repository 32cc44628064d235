// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a business that can own listings on behalf of its members.
type Organization struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Website    string    `json:"website,omitempty"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	Province   string    `json:"province,omitempty"`
	PostalCode string    `json:"postalCode,omitempty"`
	Sector     string    `json:"sector,omitempty"`
	Logo       string    `json:"logo,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OrganizationMember links a user to an organization.
type OrganizationMember struct {
	OrganizationID uuid.UUID  `json:"organizationId"`
	UserID         uuid.UUID  `json:"userId"`
	Role           MemberRole `json:"role"`
	JoinedAt       time.Time  `json:"joinedAt"`
}

// NextOwner returns the earliest-joined OWNER other than leaving, or nil
// when leaving is the only one. members must be in join order.
func NextOwner(members []*OrganizationMember, leaving uuid.UUID) *OrganizationMember {
	for _, m := range members {
		if m.Role == MemberRoleOwner && m.UserID != leaving {
			return m
		}
	}

	return nil
}
