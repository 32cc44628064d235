package postgres

import (
	"context"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// organizationRepository implements the repository.OrganizationRepository interface.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{
		db: db,
	}
}

func (repo *organizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	if err := repo.db.WithContext(ctx).Omit("Owner", "Members").Create(orgM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid organization owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create organization")
	}

	org.CreatedAt = orgM.CreatedAt
	org.UpdatedAt = orgM.UpdatedAt

	return nil
}

func (repo *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var orgM model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by id")
	}

	return toOrganizationDomain(&orgM), nil
}

func (repo *organizationRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var orgM model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&orgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to lock organization")
	}

	return toOrganizationDomain(&orgM), nil
}

func (repo *organizationRepository) UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrganizationModel{}).
		Where("id = ?", id).
		Update("owner_id", ownerID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update organization owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

func (repo *organizationRepository) List(ctx context.Context) ([]*entity.Organization, error) {
	var orgModels []*model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&orgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list organizations")
	}

	orgs := make([]*entity.Organization, 0, len(orgModels))
	for _, orgM := range orgModels {
		orgs = append(orgs, toOrganizationDomain(orgM))
	}

	return orgs, nil
}

func (repo *organizationRepository) AddMember(ctx context.Context, member *entity.OrganizationMember) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Omit("User").Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMember
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid member reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add organization member")
	}

	return nil
}

func (repo *organizationRepository) FindMember(ctx context.Context, organizationID, userID uuid.UUID) (*entity.OrganizationMember, error) {
	var memberM model.OrganizationMemberModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization member")
	}

	return toMemberDomain(&memberM), nil
}

func (repo *organizationRepository) ListMembers(ctx context.Context, organizationID uuid.UUID) ([]*entity.OrganizationMember, error) {
	var memberModels []*model.OrganizationMemberModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("joined_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list organization members")
	}

	members := make([]*entity.OrganizationMember, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}

func (repo *organizationRepository) UpdateMemberRole(ctx context.Context, organizationID, userID uuid.UUID, role entity.MemberRole) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrganizationMemberModel{}).
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		Update("role", role.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update member role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func (repo *organizationRepository) RemoveMember(ctx context.Context, organizationID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		Delete(&model.OrganizationMemberModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove organization member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func (repo *organizationRepository) ListOrganizationIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.OrganizationMemberModel{}).
		Where("user_id = ?", userID).
		Pluck("organization_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list organizations of user")
	}

	return ids, nil
}

// --- Mapper Functions ---

func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	return &entity.Organization{
		ID:         data.ID,
		Name:       data.Name,
		OwnerID:    data.OwnerID,
		Email:      data.Email,
		Phone:      data.Phone,
		Website:    data.Website,
		Address:    data.Address,
		City:       data.City,
		Province:   data.Province,
		PostalCode: data.PostalCode,
		Sector:     data.Sector,
		Logo:       data.Logo,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromOrganizationDomain(data *entity.Organization) *model.OrganizationModel {
	if data == nil {
		return nil
	}

	return &model.OrganizationModel{
		ID:         data.ID,
		Name:       data.Name,
		OwnerID:    data.OwnerID,
		Email:      data.Email,
		Phone:      data.Phone,
		Website:    data.Website,
		Address:    data.Address,
		City:       data.City,
		Province:   data.Province,
		PostalCode: data.PostalCode,
		Sector:     data.Sector,
		Logo:       data.Logo,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toMemberDomain(data *model.OrganizationMemberModel) *entity.OrganizationMember {
	if data == nil {
		return nil
	}

	return &entity.OrganizationMember{
		OrganizationID: data.OrganizationID,
		UserID:         data.UserID,
		Role:           entity.MemberRole(data.Role),
		JoinedAt:       data.JoinedAt,
	}
}

func fromMemberDomain(data *entity.OrganizationMember) *model.OrganizationMemberModel {
	if data == nil {
		return nil
	}

	return &model.OrganizationMemberModel{
		OrganizationID: data.OrganizationID,
		UserID:         data.UserID,
		Role:           data.Role.String(),
		JoinedAt:       data.JoinedAt,
	}
}
