package usecase

import (
	"log/slog"

	"github.com/swapline/usdt-uah-bot/internal/domain"
)

// CompleteOrder marks the order as paid out. Administrators only. The
// usual path is from awaiting confirmation, but an administrator may
// also close an order the user never confirmed.
func (uc *DefaultOrderUsecase) CompleteOrder(orderID, adminID int64) (*domain.Order, error) {
	if !uc.isAdmin(adminID) {
		return nil, domain.ErrNotAuthorized
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	err = uc.OrderRepo.UpdateOrderStatusIf(
		orderID,
		[]domain.OrderStatus{domain.StatusAwaitingConfirmation, domain.StatusPendingPayment},
		domain.StatusCompleted,
		nil,
	)
	if err != nil {
		return nil, err
	}

	order.Status = domain.StatusCompleted

	uc.recordOrderCompleted(order)
	uc.publishOrderEvent(order)

	slog.Info("order completed", "order_id", orderID, "admin_id", adminID)

	return order, nil
}
