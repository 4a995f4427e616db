package usecase

import (
	"context"
	"time"

	"github.com/swapline/usdt-uah-bot/internal/domain"
	publisher "github.com/swapline/usdt-uah-bot/internal/infrastructure/kafka"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/metrics"
	orderdto "github.com/swapline/usdt-uah-bot/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)

	SubmitPaymentProof(orderID, userID int64, proofFileID string) (*domain.Order, error)
	CancelOrder(orderID, actorID int64, role domain.ActorRole) (*domain.Order, error)
	CompleteOrder(orderID, adminID int64) (*domain.Order, error)
	CancelStaleOrders(ctx context.Context) (int, error)

	GetOrderByID(orderID int64) (*domain.Order, error)
	ListOrders(input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error)
	ListUserOrders(userID int64, input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error)
}

type DefaultOrderUsecase struct {
	OrderRepo    domain.OrderRepository
	UserRepo     domain.UserRepository
	WalletRepo   domain.WalletRepository
	SettingsRepo domain.SettingsRepository
	Publisher    publisher.OrderEventPublisher
	Metrics      *metrics.OrderMetrics
	AdminIDs     map[int64]bool

	// PendingTTL enables automatic cancellation of unpaid orders when
	// positive. Zero keeps them open until someone acts.
	PendingTTL time.Duration
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	userRepo domain.UserRepository,
	walletRepo domain.WalletRepository,
	settingsRepo domain.SettingsRepository,
	eventPublisher publisher.OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
	adminIDs []int64) *DefaultOrderUsecase {

	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	return &DefaultOrderUsecase{
		OrderRepo:    orderRepo,
		UserRepo:     userRepo,
		WalletRepo:   walletRepo,
		SettingsRepo: settingsRepo,
		Publisher:    eventPublisher,
		Metrics:      orderMetrics,
		AdminIDs:     admins,
	}
}

func (uc *DefaultOrderUsecase) isAdmin(actorID int64) bool {
	return uc.AdminIDs[actorID]
}
