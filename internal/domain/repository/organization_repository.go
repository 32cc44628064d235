// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for organization persistence.
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMemberNotFound       = errors.New("organization member not found")
	ErrDuplicateMember      = errors.New("organization member already exists")
)

// OrganizationRepository defines persistence for organizations and their members.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
	// LockByID is FindByID holding a row lock until the transaction ends.
	// Membership changes that may move ownership take it first so that two
	// of them on one organization run one after the other.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
	// UpdateOwner points the organization at another OWNER member.
	UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error
	List(ctx context.Context) ([]*entity.Organization, error)

	AddMember(ctx context.Context, member *entity.OrganizationMember) error
	FindMember(ctx context.Context, organizationID, userID uuid.UUID) (*entity.OrganizationMember, error)
	// ListMembers returns members in join order.
	ListMembers(ctx context.Context, organizationID uuid.UUID) ([]*entity.OrganizationMember, error)
	UpdateMemberRole(ctx context.Context, organizationID, userID uuid.UUID, role entity.MemberRole) error
	RemoveMember(ctx context.Context, organizationID, userID uuid.UUID) error
	// ListOrganizationIDsByUser returns every organization the user belongs to.
	ListOrganizationIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
