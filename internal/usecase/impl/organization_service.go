package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mescontacts/internal/delivery/context"
	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/domain/service"
	"mescontacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// organizationService implements the OrganizationUsecase interface.
type organizationService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(txManager repository.TransactionManager, clock service.Clock, logger *slog.Logger) usecase.OrganizationUsecase {
	return &organizationService{
		txManager: txManager,
		clock:     clock,
		logger:    logger,
	}
}

func (srv *organizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores the organization and registers its owner as the first OWNER member.
func (srv *organizationService) Create(ctx context.Context, ac entity.AuthContext, input usecase.CreateOrganizationInput) (*entity.Organization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	}

	now := srv.clock()
	org := &entity.Organization{
		ID:         uuid.New(),
		Name:       name,
		OwnerID:    input.OwnerID,
		Email:      input.Email,
		Phone:      input.Phone,
		Website:    input.Website,
		Address:    input.Address,
		City:       input.City,
		Province:   input.Province,
		PostalCode: input.PostalCode,
		Sector:     input.Sector,
		Logo:       input.Logo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		if err := ensureUserExists(ctx, repoFactory.UserRepo(), input.OwnerID); err != nil {
			return err
		}

		orgRepo := repoFactory.OrganizationRepo()
		if err := orgRepo.Create(ctx, org); err != nil {
			return errors.Wrap(err, "failed to create organization")
		}

		owner := &entity.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         input.OwnerID,
			Role:           entity.MemberRoleOwner,
			JoinedAt:       now,
		}

		return errors.Wrap(orgRepo.AddMember(ctx, owner), "failed to add organization owner")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Organization created", slog.Any("organizationID", org.ID), slog.Any("ownerID", org.OwnerID))

	return org, nil
}

func (srv *organizationService) Get(ctx context.Context, ac entity.AuthContext, id uuid.UUID) (*entity.Organization, error) {
	var org *entity.Organization
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		var err error
		org, err = findOrganization(ctx, repoFactory.OrganizationRepo(), id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

func (srv *organizationService) List(ctx context.Context, ac entity.AuthContext) ([]*entity.Organization, error) {
	var orgs []*entity.Organization
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		var err error
		orgs, err = repoFactory.OrganizationRepo().List(ctx)

		return errors.Wrap(err, "failed to list organizations")
	})
	if err != nil {
		return nil, err
	}

	return orgs, nil
}

func (srv *organizationService) ListMembers(ctx context.Context, ac entity.AuthContext, organizationID uuid.UUID) ([]*entity.OrganizationMember, error) {
	var members []*entity.OrganizationMember
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		orgRepo := repoFactory.OrganizationRepo()
		if _, err := findOrganization(ctx, orgRepo, organizationID); err != nil {
			return err
		}

		var err error
		members, err = orgRepo.ListMembers(ctx, organizationID)

		return errors.Wrap(err, "failed to list organization members")
	})
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (srv *organizationService) AddMember(
	ctx context.Context,
	ac entity.AuthContext,
	organizationID, userID uuid.UUID,
	role entity.MemberRole,
) (*entity.OrganizationMember, error) {
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown member role " + role.String()))
	}

	member := &entity.OrganizationMember{
		OrganizationID: organizationID,
		UserID:         userID,
		Role:           role,
		JoinedAt:       srv.clock(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		orgRepo := repoFactory.OrganizationRepo()
		if _, err := findOrganization(ctx, orgRepo, organizationID); err != nil {
			return err
		}
		if err := ensureUserExists(ctx, repoFactory.UserRepo(), userID); err != nil {
			return err
		}

		err := orgRepo.AddMember(ctx, member)
		if errors.Is(err, repository.ErrDuplicateMember) {
			return errors.WithStack(domainerrors.ErrMemberAlreadyExists)
		}

		return errors.Wrap(err, "failed to add organization member")
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (srv *organizationService) UpdateMemberRole(
	ctx context.Context,
	ac entity.AuthContext,
	organizationID, userID uuid.UUID,
	role entity.MemberRole,
) (*entity.OrganizationMember, error) {
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown member role " + role.String()))
	}

	var member *entity.OrganizationMember
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		orgRepo := repoFactory.OrganizationRepo()

		org, err := lockOrganization(ctx, orgRepo, organizationID)
		if err != nil {
			return err
		}

		member, err = findMember(ctx, orgRepo, organizationID, userID)
		if err != nil {
			return err
		}

		if member.Role == entity.MemberRoleOwner && role != entity.MemberRoleOwner {
			if err := srv.handOverOwnership(ctx, orgRepo, org, userID); err != nil {
				return err
			}
		}

		if err := orgRepo.UpdateMemberRole(ctx, organizationID, userID, role); err != nil {
			return errors.Wrap(err, "failed to update member role")
		}
		member.Role = role

		return nil
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (srv *organizationService) RemoveMember(ctx context.Context, ac entity.AuthContext, organizationID, userID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory.UserRepo(), ac); err != nil {
			return err
		}

		orgRepo := repoFactory.OrganizationRepo()

		org, err := lockOrganization(ctx, orgRepo, organizationID)
		if err != nil {
			return err
		}

		member, err := findMember(ctx, orgRepo, organizationID, userID)
		if err != nil {
			return err
		}

		if member.Role == entity.MemberRoleOwner {
			if err := srv.handOverOwnership(ctx, orgRepo, org, userID); err != nil {
				return err
			}
		}

		return errors.Wrap(orgRepo.RemoveMember(ctx, organizationID, userID), "failed to remove organization member")
	})
}

// handOverOwnership rejects a change that would leave the organization
// without an OWNER. When the leaving owner is the organization's OwnerID,
// the earliest remaining owner takes that place.
func (srv *organizationService) handOverOwnership(ctx context.Context, orgRepo repository.OrganizationRepository, org *entity.Organization, leaving uuid.UUID) error {
	members, err := orgRepo.ListMembers(ctx, org.ID)
	if err != nil {
		return errors.Wrap(err, "failed to list organization members")
	}

	next := entity.NextOwner(members, leaving)
	if next == nil {
		return errors.WithStack(domainerrors.ErrLastOwner)
	}
	if org.OwnerID != leaving {
		return nil
	}

	if err := orgRepo.UpdateOwner(ctx, org.ID, next.UserID); err != nil {
		return errors.Wrap(err, "failed to hand over organization ownership")
	}
	org.OwnerID = next.UserID

	srv.log(ctx).InfoContext(ctx, "Organization ownership handed over",
		slog.Any("organizationID", org.ID),
		slog.Any("from", leaving),
		slog.Any("to", next.UserID),
	)

	return nil
}

// lockOrganization serializes membership changes on one organization.
func lockOrganization(ctx context.Context, orgRepo repository.OrganizationRepository, id uuid.UUID) (*entity.Organization, error) {
	org, err := orgRepo.LockByID(ctx, id)
	if errors.Is(err, repository.ErrOrganizationNotFound) {
		return nil, errors.WithStack(domainerrors.ErrOrganizationNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock organization")
	}

	return org, nil
}

func findOrganization(ctx context.Context, orgRepo repository.OrganizationRepository, id uuid.UUID) (*entity.Organization, error) {
	org, err := orgRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrganizationNotFound) {
		return nil, errors.WithStack(domainerrors.ErrOrganizationNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organization")
	}

	return org, nil
}

func findMember(ctx context.Context, orgRepo repository.OrganizationRepository, organizationID, userID uuid.UUID) (*entity.OrganizationMember, error) {
	member, err := orgRepo.FindMember(ctx, organizationID, userID)
	if errors.Is(err, repository.ErrMemberNotFound) {
		return nil, errors.WithStack(domainerrors.ErrMemberNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find organization member")
	}

	return member, nil
}

func ensureUserExists(ctx context.Context, userRepo repository.UserRepository, id uuid.UUID) error {
	_, err := userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrUserNotFound.WithDetails("user " + id.String() + " does not exist"))
	}

	return errors.Wrap(err, "failed to find user")
}
