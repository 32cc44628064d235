package postgres

import (
	"context"

	"mescontacts/internal/domain/entity"
	domainerrors "mescontacts/internal/domain/errors"
	"mescontacts/internal/domain/repository"
	"mescontacts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Omit("Post").Create(paymentM).Error; err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return errors.WithStack(domainerrors.ErrPostNotFound)
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("payment amount or duration out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.Version = paymentM.Version
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)
	paymentM.Version = payment.Version + 1

	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ? AND version = ?", payment.ID, payment.Version).
		Select("*").
		Omit("id", "post_id", "recorded_by", "created_at", "Post").
		Updates(paymentM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment")
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.PaymentModel{}).
			Where("id = ?", payment.ID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check payment existence")
		}
		if count == 0 {
			return repository.ErrPaymentNotFound
		}

		return repository.ErrVersionConflict
	}

	payment.Version = paymentM.Version
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

func (repo *paymentRepository) FindByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payments by post")
	}

	return toPaymentDomains(paymentModels), nil
}

func (repo *paymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	query := repo.db.WithContext(ctx).Model(&model.PaymentModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Method != nil {
		query = query.Where("method = ?", filter.Method.String())
	}

	var paymentModels []*model.PaymentModel
	if err := query.Order("created_at DESC").Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return toPaymentDomains(paymentModels), nil
}

// --- Mapper Functions ---

func toPaymentDomains(data []*model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(data))
	for _, paymentM := range data {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	events := make([]entity.PaymentEvent, 0, len(data.Events))
	for _, e := range data.Events {
		events = append(events, entity.PaymentEvent{
			Kind:    entity.PaymentEventKind(e.Kind),
			At:      e.At,
			ActorID: e.ActorID,
			Detail:  e.Detail,
		})
	}

	return &entity.Payment{
		ID:                data.ID,
		PostID:            data.PostID,
		Amount:            data.Amount,
		Method:            entity.PaymentMethod(data.Method),
		DurationDays:      data.DurationDays,
		Status:            entity.PaymentStatus(data.Status),
		Notes:             data.Notes,
		ExternalReference: data.ExternalReference,
		PaymentDate:       data.PaymentDate,
		RecordedBy:        data.RecordedBy,
		Events:            events,
		Version:           data.Version,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	events := make(datatypes.JSONSlice[model.PaymentEventModel], 0, len(data.Events))
	for _, e := range data.Events {
		events = append(events, model.PaymentEventModel{
			Kind:    string(e.Kind),
			At:      e.At,
			ActorID: e.ActorID,
			Detail:  e.Detail,
		})
	}

	return &model.PaymentModel{
		ID:                data.ID,
		PostID:            data.PostID,
		Amount:            data.Amount,
		Method:            data.Method.String(),
		DurationDays:      data.DurationDays,
		Status:            data.Status.String(),
		Notes:             data.Notes,
		ExternalReference: data.ExternalReference,
		PaymentDate:       data.PaymentDate,
		RecordedBy:        data.RecordedBy,
		Events:            events,
		Version:           data.Version,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
