package usecase

import (
	"log/slog"
	"time"

	"github.com/swapline/usdt-uah-bot/internal/domain"
)

// SubmitPaymentProof records the user's payment confirmation and moves the
// order to awaiting confirmation. Only the order owner may confirm, and
// only while the order still waits for payment.
func (uc *DefaultOrderUsecase) SubmitPaymentProof(orderID, userID int64, proofFileID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrNotOwner
	}

	paidAt := time.Now()
	err = uc.OrderRepo.UpdateOrderStatusIf(
		orderID,
		[]domain.OrderStatus{domain.StatusPendingPayment},
		domain.StatusAwaitingConfirmation,
		&domain.StatusChange{ProofFileID: &proofFileID, PaidAt: &paidAt},
	)
	if err != nil {
		return nil, err
	}

	order.Status = domain.StatusAwaitingConfirmation
	order.ProofFileID = proofFileID
	order.PaidAt = &paidAt

	uc.recordOrderPaid(order)
	uc.publishOrderEvent(order)

	slog.Info("payment proof submitted", "order_id", orderID, "user_id", userID)

	return order, nil
}
