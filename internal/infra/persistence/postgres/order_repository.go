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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the header and items. GORM writes the Items association in the same statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, item := range order.Items {
		item.ID = orderM.Items[i].ID
		item.OrderID = order.ID
	}

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	filter.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []model.OrderModel
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, total, nil
}

// UpdateStatus is guarded by the expected current status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check order")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderStatusChanged
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:            itemM.ID,
			OrderID:       itemM.OrderID,
			ProductID:     itemM.ProductID,
			ProductName:   itemM.ProductName,
			Quantity:      itemM.Quantity,
			PriceSnapshot: itemM.PriceSnapshot,
			LineTotal:     itemM.LineTotal,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Subtotal:        data.Subtotal,
		Discount:        data.Discount,
		DiscountCode:    data.DiscountCode,
		Shipping:        data.Shipping,
		Total:           data.Total,
		PlatformFee:     data.PlatformFee,
		AdminRevenue:    data.AdminRevenue,
		DeliveryAddress: data.DeliveryAddress,
		Status:          entity.OrderStatus(data.Status),
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		id := item.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		items = append(items, model.OrderItemModel{
			ID:            id,
			OrderID:       data.ID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			PriceSnapshot: item.PriceSnapshot,
			LineTotal:     item.LineTotal,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Subtotal:        data.Subtotal,
		Discount:        data.Discount,
		DiscountCode:    data.DiscountCode,
		Shipping:        data.Shipping,
		Total:           data.Total,
		PlatformFee:     data.PlatformFee,
		AdminRevenue:    data.AdminRevenue,
		DeliveryAddress: data.DeliveryAddress,
		Status:          string(data.Status),
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
