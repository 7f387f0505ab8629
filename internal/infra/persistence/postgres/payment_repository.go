package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("payment reference already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

func (repo *paymentRepository) FindByReference(ctx context.Context, reference string) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).Where("reference = ?", reference).First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *paymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		payments = append(payments, toPaymentDomain(&paymentModels[i]))
	}

	return payments, nil
}

// CompareAndSetStatus writes the new status only while the stored status equals from.
// Replayed webhooks therefore change nothing.
func (repo *paymentRepository) CompareAndSetStatus(ctx context.Context, payment *entity.Payment, from entity.PaymentStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("reference = ? AND status = ?", payment.Reference, string(from)).
		Updates(map[string]any{
			"status":            string(payment.Status),
			"provider_event_id": payment.ProviderEventID,
			"paid_at":           payment.PaidAt,
			"updated_at":        payment.UpdatedAt,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update payment status")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:              data.ID,
		OrderID:         data.OrderID,
		UserID:          data.UserID,
		Reference:       data.Reference,
		Amount:          data.Amount,
		FeeCollected:    data.FeeCollected,
		AdminEarning:    data.AdminEarning,
		Status:          entity.PaymentStatus(data.Status),
		ProviderEventID: data.ProviderEventID,
		PaidAt:          data.PaidAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		UserID:          data.UserID,
		Reference:       data.Reference,
		Amount:          data.Amount,
		FeeCollected:    data.FeeCollected,
		AdminEarning:    data.AdminEarning,
		Status:          string(data.Status),
		ProviderEventID: data.ProviderEventID,
		PaidAt:          data.PaidAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
