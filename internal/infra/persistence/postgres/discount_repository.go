package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{db: db}
}

func (repo *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	discount.Code = entity.NormalizeDiscountCode(discount.Code)
	discountM := fromDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDiscountCodeExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount")
	}

	discount.CreatedAt = discountM.CreatedAt
	discount.UpdatedAt = discountM.UpdatedAt

	return nil
}

// Update saves the editable fields. The usage count is only changed by IncrementUsage.
func (repo *discountRepository) Update(ctx context.Context, discount *entity.Discount) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("id = ?", discount.ID).
		Updates(map[string]any{
			"value":        discount.Value,
			"min_purchase": discount.MinPurchase,
			"max_uses":     discount.MaxUses,
			"valid_from":   discount.ValidFrom,
			"valid_to":     discount.ValidTo,
			"is_active":    discount.IsActive,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update discount")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

func (repo *discountRepository) FindByCode(ctx context.Context, code string) (*entity.Discount, error) {
	var discountM model.DiscountModel
	err := repo.db.WithContext(ctx).
		Where("code = ?", entity.NormalizeDiscountCode(code)).
		First(&discountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount")
	}

	return toDiscountDomain(&discountM), nil
}

func (repo *discountRepository) List(ctx context.Context) ([]*entity.Discount, error) {
	var discountModels []model.DiscountModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list discounts")
	}

	discounts := make([]*entity.Discount, 0, len(discountModels))
	for i := range discountModels {
		discounts = append(discounts, toDiscountDomain(&discountModels[i]))
	}

	return discounts, nil
}

// IncrementUsage is guarded by the cap in the WHERE clause, so concurrent checkouts
// cannot push usage_count past max_uses.
func (repo *discountRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("id = ? AND (max_uses IS NULL OR usage_count < max_uses)", id).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment discount usage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiscountUsageExhausted
	}

	return nil
}

func (repo *discountRepository) HasRedeemed(ctx context.Context, userID, discountID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserDiscountModel{}).
		Where("user_id = ? AND discount_id = ?", userID, discountID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check discount redemption")
	}

	return count > 0, nil
}

func (repo *discountRepository) RecordRedemption(ctx context.Context, redemption *entity.UserDiscount) error {
	if redemption.ID == uuid.Nil {
		redemption.ID = uuid.New()
	}

	redemptionM := &model.UserDiscountModel{
		ID:         redemption.ID,
		UserID:     redemption.UserID,
		DiscountID: redemption.DiscountID,
		OrderID:    redemption.OrderID,
		CreatedAt:  redemption.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDiscountAlreadyRedeemed
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record discount redemption")
	}

	return nil
}

func (repo *discountRepository) ReleaseRedemption(ctx context.Context, orderID uuid.UUID) error {
	var redemptions []model.UserDiscountModel
	if err := repo.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&redemptions).Error; err != nil {
		return errors.Wrap(err, "failed to find order redemption")
	}

	for _, redemption := range redemptions {
		deleted := repo.db.WithContext(ctx).Where("id = ?", redemption.ID).Delete(&model.UserDiscountModel{})
		if deleted.Error != nil {
			return errors.Wrap(deleted.Error, "failed to delete discount redemption")
		}
		// Another release got there first.
		if deleted.RowsAffected == 0 {
			continue
		}

		err := repo.db.WithContext(ctx).
			Model(&model.DiscountModel{}).
			Where("id = ? AND usage_count > 0", redemption.DiscountID).
			Updates(map[string]any{
				"usage_count": gorm.Expr("usage_count - 1"),
				"updated_at":  time.Now().UTC(),
			}).Error
		if err != nil {
			return errors.Wrap(err, "failed to release discount usage")
		}
	}

	return nil
}

// --- Mapper Functions ---

func toDiscountDomain(data *model.DiscountModel) *entity.Discount {
	if data == nil {
		return nil
	}

	return &entity.Discount{
		ID:          data.ID,
		Code:        data.Code,
		Type:        entity.DiscountType(data.Type),
		Value:       data.Value,
		MinPurchase: data.MinPurchase,
		MaxUses:     data.MaxUses,
		UsageCount:  data.UsageCount,
		ValidFrom:   data.ValidFrom,
		ValidTo:     data.ValidTo,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromDiscountDomain(data *entity.Discount) *model.DiscountModel {
	if data == nil {
		return nil
	}

	return &model.DiscountModel{
		ID:          data.ID,
		Code:        data.Code,
		Type:        string(data.Type),
		Value:       data.Value,
		MinPurchase: data.MinPurchase,
		MaxUses:     data.MaxUses,
		UsageCount:  data.UsageCount,
		ValidFrom:   data.ValidFrom,
		ValidTo:     data.ValidTo,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
