package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/swapline/usdt-uah-bot/internal/domain"
)

// CancelOrder applies the role-specific cancellation rules. A user may
// cancel only their own order, an administrator any order; both are
// allowed while the order has not reached a terminal status yet.
func (uc *DefaultOrderUsecase) CancelOrder(orderID, actorID int64, role domain.ActorRole) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	var allowedFrom []domain.OrderStatus
	var target domain.OrderStatus

	switch role {
	case domain.RoleUser:
		if order.UserID != actorID {
			return nil, domain.ErrNotAuthorized
		}
		allowedFrom = []domain.OrderStatus{
			domain.StatusPendingPayment,
			domain.StatusAwaitingConfirmation,
		}
		target = domain.StatusCancelledByUser
	case domain.RoleAdmin:
		if !uc.isAdmin(actorID) {
			return nil, domain.ErrNotAuthorized
		}
		allowedFrom = []domain.OrderStatus{
			domain.StatusPendingPayment,
			domain.StatusAwaitingConfirmation,
		}
		target = domain.StatusCancelledByAdmin
	default:
		return nil, domain.ErrNotAuthorized
	}

	if err := uc.OrderRepo.UpdateOrderStatusIf(orderID, allowedFrom, target, nil); err != nil {
		return nil, err
	}

	order.Status = target

	uc.recordOrderCancelled(order, role)
	uc.publishOrderEvent(order)

	slog.Info("order cancelled", "order_id", orderID, "actor_id", actorID, "role", string(role))

	return order, nil
}

// CancelStaleOrders cancels pending orders older than the configured TTL.
// Disabled when no TTL is set.
func (uc *DefaultOrderUsecase) CancelStaleOrders(ctx context.Context) (int, error) {
	if uc.PendingTTL <= 0 {
		return 0, nil
	}

	stale, err := uc.OrderRepo.FindStalePendingOrders(time.Now().Add(-uc.PendingTTL))
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, order := range stale {
		select {
		case <-ctx.Done():
			return cancelled, ctx.Err()
		default:
		}

		err := uc.OrderRepo.UpdateOrderStatusIf(
			order.ID,
			[]domain.OrderStatus{domain.StatusPendingPayment},
			domain.StatusCancelledByAdmin,
			nil,
		)
		if errors.Is(err, domain.ErrOrderNotModifiable) {
			continue
		}
		if err != nil {
			slog.Error("failed to cancel stale order", "order_id", order.ID, "error", err.Error())
			continue
		}

		order.Status = domain.StatusCancelledByAdmin
		uc.recordOrderCancelled(order, domain.RoleAdmin)
		uc.publishOrderEvent(order)
		cancelled++
	}

	if cancelled > 0 {
		slog.Info("stale orders cancelled", "count", cancelled)
	}

	return cancelled, nil
}
