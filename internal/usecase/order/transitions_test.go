package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapline/usdt-uah-bot/internal/domain"
)

const adminID = int64(42)

func pendingOrder(id, userID int64) *domain.Order {
	return &domain.Order{
		ID:           id,
		UserID:       userID,
		Currency:     "USDT",
		Value:        decimal.RequireFromString("100"),
		ExchangeRate: decimal.RequireFromString("41.72"),
		Network:      "TRC20",
		Status:       domain.StatusPendingPayment,
	}
}

// applyTransition mimics the repository's compare-and-set: the write
// succeeds only while the current status is still in allowedFrom.
func applyTransition(current domain.OrderStatus) func(int64, []domain.OrderStatus, domain.OrderStatus, *domain.StatusChange) error {
	return func(_ int64, allowedFrom []domain.OrderStatus, _ domain.OrderStatus, _ *domain.StatusChange) error {
		for _, from := range allowedFrom {
			if from == current {
				return nil
			}
		}
		return domain.ErrOrderNotModifiable
	}
}

func newTransitionUsecase(orderRepo *mockOrderRepo) *DefaultOrderUsecase {
	return NewDefaultOrderUsecase(orderRepo, &mockUserRepo{}, &mockWalletRepo{}, &mockSettingsRepo{}, nil, nil, []int64{adminID})
}

func TestSubmitPaymentProof(t *testing.T) {
	var gotChange *domain.StatusChange
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(orderID int64) (*domain.Order, error) {
			return pendingOrder(orderID, 100), nil
		},
		updateOrderStatusIfFn: func(_ int64, allowedFrom []domain.OrderStatus, to domain.OrderStatus, change *domain.StatusChange) error {
			gotChange = change
			assert.Equal(t, []domain.OrderStatus{domain.StatusPendingPayment}, allowedFrom)
			assert.Equal(t, domain.StatusAwaitingConfirmation, to)
			return nil
		},
	}

	uc := newTransitionUsecase(orderRepo)
	order, err := uc.SubmitPaymentProof(7, 100, "file-abc")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusAwaitingConfirmation, order.Status)
	assert.Equal(t, "file-abc", order.ProofFileID)
	assert.NotNil(t, order.PaidAt)
	require.NotNil(t, gotChange)
	assert.Equal(t, "file-abc", *gotChange.ProofFileID)
	assert.NotNil(t, gotChange.PaidAt)
}

func TestSubmitPaymentProofNotOwner(t *testing.T) {
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(orderID int64) (*domain.Order, error) {
			return pendingOrder(orderID, 100), nil
		},
	}

	uc := newTransitionUsecase(orderRepo)
	_, err := uc.SubmitPaymentProof(7, 200, "file-abc")
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestSubmitPaymentProofAlreadyConfirmed(t *testing.T) {
	order := pendingOrder(7, 100)
	order.Status = domain.StatusAwaitingConfirmation
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(int64) (*domain.Order, error) { return order, nil },
		updateOrderStatusIfFn: applyTransition(domain.StatusAwaitingConfirmation),
	}

	uc := newTransitionUsecase(orderRepo)
	_, err := uc.SubmitPaymentProof(7, 100, "file-abc")
	assert.ErrorIs(t, err, domain.ErrOrderNotModifiable)
}

func TestUserCancelOwnPendingOrder(t *testing.T) {
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(orderID int64) (*domain.Order, error) {
			return pendingOrder(orderID, 100), nil
		},
		updateOrderStatusIfFn: applyTransition(domain.StatusPendingPayment),
	}

	uc := newTransitionUsecase(orderRepo)
	order, err := uc.CancelOrder(7, 100, domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, order.Status)
}

func TestUserCannotCancelForeignOrder(t *testing.T) {
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(orderID int64) (*domain.Order, error) {
			return pendingOrder(orderID, 100), nil
		},
	}

	uc := newTransitionUsecase(orderRepo)
	_, err := uc.CancelOrder(7, 200, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestUserCancelAwaitingOrder(t *testing.T) {
	order := pendingOrder(7, 100)
	order.Status = domain.StatusAwaitingConfirmation
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(int64) (*domain.Order, error) { return order, nil },
		updateOrderStatusIfFn: applyTransition(domain.StatusAwaitingConfirmation),
	}

	uc := newTransitionUsecase(orderRepo)
	cancelled, err := uc.CancelOrder(7, 100, domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, cancelled.Status)
}

func TestUserCannotCancelCompletedOrder(t *testing.T) {
	order := pendingOrder(7, 100)
	order.Status = domain.StatusCompleted
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(int64) (*domain.Order, error) { return order, nil },
		updateOrderStatusIfFn: applyTransition(domain.StatusCompleted),
	}

	uc := newTransitionUsecase(orderRepo)
	_, err := uc.CancelOrder(7, 100, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrOrderNotModifiable)
}

func TestAdminCancelAwaitingOrder(t *testing.T) {
	order := pendingOrder(7, 100)
	order.Status = domain.StatusAwaitingConfirmation
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(int64) (*domain.Order, error) { return order, nil },
		updateOrderStatusIfFn: applyTransition(domain.StatusAwaitingConfirmation),
	}

	uc := newTransitionUsecase(orderRepo)
	cancelled, err := uc.CancelOrder(7, adminID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByAdmin, cancelled.Status)
}

func TestAdminCancelRequiresAllowList(t *testing.T) {
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(orderID int64) (*domain.Order, error) {
			return pendingOrder(orderID, 100), nil
		},
	}

	uc := newTransitionUsecase(orderRepo)
	_, err := uc.CancelOrder(7, 999, domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestAdminCancelTerminalOrder(t *testing.T) {
	order := pendingOrder(7, 100)
	order.Status = domain.StatusCompleted
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(int64) (*domain.Order, error) { return order, nil },
		updateOrderStatusIfFn: applyTransition(domain.StatusCompleted),
	}

	uc := newTransitionUsecase(orderRepo)
	_, err := uc.CancelOrder(7, adminID, domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrOrderNotModifiable)
}

func TestCompleteOrder(t *testing.T) {
	order := pendingOrder(7, 100)
	order.Status = domain.StatusAwaitingConfirmation
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(int64) (*domain.Order, error) { return order, nil },
		updateOrderStatusIfFn: applyTransition(domain.StatusAwaitingConfirmation),
	}

	uc := newTransitionUsecase(orderRepo)
	completed, err := uc.CompleteOrder(7, adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)
}

func TestCompleteOrderBeforeProofStillWorks(t *testing.T) {
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(orderID int64) (*domain.Order, error) {
			return pendingOrder(orderID, 100), nil
		},
		updateOrderStatusIfFn: applyTransition(domain.StatusPendingPayment),
	}

	uc := newTransitionUsecase(orderRepo)
	completed, err := uc.CompleteOrder(7, adminID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)
}

func TestCompleteOrderNotAuthorized(t *testing.T) {
	uc := newTransitionUsecase(&mockOrderRepo{})
	_, err := uc.CompleteOrder(7, 100)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestCompleteCancelledOrder(t *testing.T) {
	order := pendingOrder(7, 100)
	order.Status = domain.StatusCancelledByUser
	orderRepo := &mockOrderRepo{
		getOrderByIDFn: func(int64) (*domain.Order, error) { return order, nil },
		updateOrderStatusIfFn: applyTransition(domain.StatusCancelledByUser),
	}

	uc := newTransitionUsecase(orderRepo)
	_, err := uc.CompleteOrder(7, adminID)
	assert.ErrorIs(t, err, domain.ErrOrderNotModifiable)
}

func TestCancelStaleOrders(t *testing.T) {
	stale := []*domain.Order{pendingOrder(1, 100), pendingOrder(2, 101)}
	cancelledIDs := []int64{}
	orderRepo := &mockOrderRepo{
		findStalePendingOrdersFn: func(olderThan time.Time) ([]*domain.Order, error) {
			return stale, nil
		},
		updateOrderStatusIfFn: func(orderID int64, allowedFrom []domain.OrderStatus, to domain.OrderStatus, _ *domain.StatusChange) error {
			assert.Equal(t, domain.StatusCancelledByAdmin, to)
			cancelledIDs = append(cancelledIDs, orderID)
			return nil
		},
	}

	uc := newTransitionUsecase(orderRepo)
	uc.PendingTTL = time.Hour

	count, err := uc.CancelStaleOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []int64{1, 2}, cancelledIDs)
}

func TestCancelStaleOrdersDisabledWithoutTTL(t *testing.T) {
	called := false
	orderRepo := &mockOrderRepo{
		findStalePendingOrdersFn: func(time.Time) ([]*domain.Order, error) {
			called = true
			return nil, nil
		},
	}

	uc := newTransitionUsecase(orderRepo)
	count, err := uc.CancelStaleOrders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.False(t, called)
}
