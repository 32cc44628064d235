package postgres

import (
	"context"
	"time"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Omit("User", "Organization").Create(postM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrOwnershipInvalid)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("post owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.Version = postM.Version
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// Update is a compare-and-swap on the version column.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)
	postM.Version = post.Version + 1

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ? AND version = ?", post.ID, post.Version).
		Select("*").
		Omit("id", "created_at", "created_by", "User", "Organization").
		Updates(postM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.WithStack(domainerrors.ErrOwnershipInvalid)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repo.missingOrConflict(ctx, post.ID)
	}

	post.Version = postM.Version
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

func (repo *postRepository) missingOrConflict(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check post existence")
	}
	if count == 0 {
		return repository.ErrPostNotFound
	}

	return repository.ErrVersionConflict
}

func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (repo *postRepository) List(ctx context.Context, filter repository.PostFilter) ([]*entity.Post, error) {
	query := repo.db.WithContext(ctx).Model(&model.PostModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Province != "" {
		query = query.Where("province = ?", filter.Province)
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.Within != nil {
		query = query.
			Where("longitude BETWEEN ? AND ?", filter.Within.Min.Lon(), filter.Within.Max.Lon()).
			Where("latitude BETWEEN ? AND ?", filter.Within.Min.Lat(), filter.Within.Max.Lat())
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var postModels []*model.PostModel
	if err := query.Order("published_at DESC NULLS LAST, id").Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return toPostDomains(postModels), nil
}

func (repo *postRepository) FindByOwners(ctx context.Context, userID uuid.UUID, organizationIDs []uuid.UUID) ([]*entity.Post, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(organizationIDs) > 0 {
		query = query.Or("organization_id IN ?", organizationIDs)
	}

	var postModels []*model.PostModel
	if err := query.Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by owners")
	}

	return toPostDomains(postModels), nil
}

// FindDueForExpiry reads from the primary so the sweeper never acts on replica lag.
func (repo *postRepository) FindDueForExpiry(ctx context.Context, now time.Time, limit int) ([]*entity.Post, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", entity.PostStatusPublished.String(), now).
		Order("expires_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var postModels []*model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts due for expiry")
	}

	return toPostDomains(postModels), nil
}

// --- Mapper Functions ---

func toPostDomains(data []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for _, postM := range data {
		posts = append(posts, toPostDomain(postM))
	}

	return posts
}

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	post := &entity.Post{
		ID:             data.ID,
		BusinessName:   data.BusinessName,
		Category:       data.Category,
		Description:    data.Description,
		Phone:          data.Phone,
		Email:          data.Email,
		Website:        data.Website,
		Address:        data.Address,
		City:           data.City,
		Province:       data.Province,
		PostalCode:     data.PostalCode,
		Status:         entity.PostStatus(data.Status),
		UserID:         data.UserID,
		OrganizationID: data.OrganizationID,
		CreatedBy:      data.CreatedBy,
		PublishedAt:    data.PublishedAt,
		ExpiresAt:      data.ExpiresAt,
		Version:        data.Version,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.Longitude != nil && data.Latitude != nil {
		post.Geo = &entity.GeoPoint{Longitude: *data.Longitude, Latitude: *data.Latitude}
	}

	return post
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	postM := &model.PostModel{
		ID:             data.ID,
		BusinessName:   data.BusinessName,
		Category:       data.Category,
		Description:    data.Description,
		Phone:          data.Phone,
		Email:          data.Email,
		Website:        data.Website,
		Address:        data.Address,
		City:           data.City,
		Province:       data.Province,
		PostalCode:     data.PostalCode,
		Status:         data.Status.String(),
		UserID:         data.UserID,
		OrganizationID: data.OrganizationID,
		CreatedBy:      data.CreatedBy,
		PublishedAt:    data.PublishedAt,
		ExpiresAt:      data.ExpiresAt,
		Version:        data.Version,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.Geo != nil {
		lon, lat := data.Geo.Longitude, data.Geo.Latitude
		postM.Longitude = &lon
		postM.Latitude = &lat
	}

	return postM
}
