package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/swapline/usdt-uah-bot/internal/domain"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/mappers"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) (int64, error) {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	order.ID = orderModel.ID
	return orderModel.ID, nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID int64) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

// UpdateOrderStatusIf serializes racing transitions through a row lock:
// the status is re-read inside the transaction, so the first committed
// writer wins and the loser sees ErrOrderNotModifiable.
func (r *DefaultOrderRepository) UpdateOrderStatusIf(orderID int64, allowedFrom []domain.OrderStatus, to domain.OrderStatus, change *domain.StatusChange) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var order models.OrderModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}

		allowed := false
		for _, from := range allowedFrom {
			if order.Status == from {
				allowed = true
				break
			}
		}
		if !allowed {
			return domain.ErrOrderNotModifiable
		}

		updates := map[string]interface{}{"status": to}
		if change != nil {
			if change.ProofFileID != nil {
				updates["proof_file_id"] = *change.ProofFileID
			}
			if change.PaidAt != nil {
				updates["paid_at"] = *change.PaidAt
			}
		}

		if err := tx.Model(&models.OrderModel{}).Where("id = ?", orderID).Updates(updates).Error; err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
}

func (r *DefaultOrderRepository) ListOrdersPage(page, perPage int) ([]*domain.Order, int64, error) {
	return r.listPage(r.DB.Model(&models.OrderModel{}), page, perPage)
}

func (r *DefaultOrderRepository) ListUserOrdersPage(userID int64, page, perPage int) ([]*domain.Order, int64, error) {
	return r.listPage(r.DB.Model(&models.OrderModel{}).Where("user_id = ?", userID), page, perPage)
}

func (r *DefaultOrderRepository) listPage(baseQuery *gorm.DB, page, perPage int) ([]*domain.Order, int64, error) {
	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	var orderModels []models.OrderModel
	if err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(perPage).
		Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) FindStalePendingOrders(olderThan time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Where("status = ?", domain.StatusPendingPayment).
		Where("created_at < ?", olderThan).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}
