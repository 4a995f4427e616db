package usecase

import "github.com/swapline/usdt-uah-bot/internal/domain"

func (uc *DefaultOrderUsecase) recordOrderCreated(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCreatedTotal.WithLabelValues(order.Network).Inc()
	value, _ := order.Value.Float64()
	uc.Metrics.OrdersCreatedAmountTotal.WithLabelValues(order.Network).Add(value)
}

func (uc *DefaultOrderUsecase) recordOrderPaid(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersPaidTotal.WithLabelValues(order.Network).Inc()
}

func (uc *DefaultOrderUsecase) recordOrderCompleted(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCompletedTotal.WithLabelValues(order.Network).Inc()
}

func (uc *DefaultOrderUsecase) recordOrderCancelled(order *domain.Order, role domain.ActorRole) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCancelledTotal.WithLabelValues(order.Network, string(role)).Inc()
}

func (uc *DefaultOrderUsecase) recordError(operation string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrderErrorsTotal.WithLabelValues(operation).Inc()
}
