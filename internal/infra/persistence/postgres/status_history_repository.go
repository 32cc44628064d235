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
)

// statusHistoryRepository implements repository.StatusHistoryRepository. Rows are never updated.
type statusHistoryRepository struct {
	db *gorm.DB
}

// NewStatusHistoryRepository is the constructor for statusHistoryRepository.
func NewStatusHistoryRepository(db *gorm.DB) repository.StatusHistoryRepository {
	return &statusHistoryRepository{
		db: db,
	}
}

func (repo *statusHistoryRepository) Append(ctx context.Context, entry *entity.StatusHistory) error {
	entryM := fromStatusHistoryDomain(entry)

	if err := repo.db.WithContext(ctx).Omit("Post").Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrPostNotFound)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append status history")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

func (repo *statusHistoryRepository) FindByPost(ctx context.Context, postID uuid.UUID) ([]*entity.StatusHistory, error) {
	var entryModels []*model.StatusHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find status history by post")
	}

	return toStatusHistoryDomains(entryModels), nil
}

func (repo *statusHistoryRepository) FindRecent(ctx context.Context, limit int) ([]*entity.StatusHistory, error) {
	var entryModels []*model.StatusHistoryModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent status history")
	}

	return toStatusHistoryDomains(entryModels), nil
}

// --- Mapper Functions ---

func toStatusHistoryDomains(data []*model.StatusHistoryModel) []*entity.StatusHistory {
	entries := make([]*entity.StatusHistory, 0, len(data))
	for _, entryM := range data {
		entries = append(entries, toStatusHistoryDomain(entryM))
	}

	return entries
}

func toStatusHistoryDomain(data *model.StatusHistoryModel) *entity.StatusHistory {
	if data == nil {
		return nil
	}

	entry := &entity.StatusHistory{
		ID:        data.ID,
		PostID:    data.PostID,
		NewStatus: entity.PostStatus(data.NewStatus),
		Reason:    data.Reason,
		ChangedBy: data.ChangedBy,
		CreatedAt: data.CreatedAt,
	}
	if data.PreviousStatus != nil {
		previous := entity.PostStatus(*data.PreviousStatus)
		entry.PreviousStatus = &previous
	}

	return entry
}

func fromStatusHistoryDomain(data *entity.StatusHistory) *model.StatusHistoryModel {
	if data == nil {
		return nil
	}

	entryM := &model.StatusHistoryModel{
		ID:        data.ID,
		PostID:    data.PostID,
		NewStatus: data.NewStatus.String(),
		Reason:    data.Reason,
		ChangedBy: data.ChangedBy,
		CreatedAt: data.CreatedAt,
	}
	if data.PreviousStatus != nil {
		previous := data.PreviousStatus.String()
		entryM.PreviousStatus = &previous
	}

	return entryM
}
