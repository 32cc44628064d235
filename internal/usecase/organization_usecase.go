package usecase

import (
	"context"

	"mescontacts/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrganizationInput defines the data required to create an organization.
type CreateOrganizationInput struct {
	Name       string
	OwnerID    uuid.UUID
	Email      string
	Phone      string
	Website    string
	Address    string
	City       string
	Province   string
	PostalCode string
	Sector     string
	Logo       string
}

// OrganizationUsecase manages organizations and their membership. All operations are admin only.
type OrganizationUsecase interface {
	Create(ctx context.Context, ac entity.AuthContext, input CreateOrganizationInput) (*entity.Organization, error)
	Get(ctx context.Context, ac entity.AuthContext, id uuid.UUID) (*entity.Organization, error)
	List(ctx context.Context, ac entity.AuthContext) ([]*entity.Organization, error)

	ListMembers(ctx context.Context, ac entity.AuthContext, organizationID uuid.UUID) ([]*entity.OrganizationMember, error)
	AddMember(ctx context.Context, ac entity.AuthContext, organizationID, userID uuid.UUID, role entity.MemberRole) (*entity.OrganizationMember, error)
	// UpdateMemberRole rejects demoting the last OWNER.
	UpdateMemberRole(ctx context.Context, ac entity.AuthContext, organizationID, userID uuid.UUID, role entity.MemberRole) (*entity.OrganizationMember, error)
	// RemoveMember rejects removing the last OWNER.
	RemoveMember(ctx context.Context, ac entity.AuthContext, organizationID, userID uuid.UUID) error
}
