package usecase

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/swapline/usdt-uah-bot/internal/domain"
	publisher "github.com/swapline/usdt-uah-bot/internal/infrastructure/kafka"
	orderdto "github.com/swapline/usdt-uah-bot/internal/usecase/dto/order"
)

// maxAmountDecimals bounds user input to what the numeric column stores.
const maxAmountDecimals = 8

func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	user, err := uc.UserRepo.GetUserByID(input.UserID)
	if err != nil {
		uc.recordError("create")
		return nil, err
	}
	if !user.ProfileComplete() {
		return nil, domain.ErrProfileIncomplete
	}

	if err := validateAmount(input.Value); err != nil {
		return nil, err
	}

	rate, err := uc.SettingsRepo.GetRate()
	if err != nil {
		if !errors.Is(err, domain.ErrRateNotSet) {
			uc.recordError("create")
		}
		return nil, err
	}

	// a UAH amount converts against the same rate snapshot the order
	// freezes, so value and rate never come from different moments
	value := input.Value
	switch input.Currency {
	case "", orderdto.CurrencyUSDT:
	case orderdto.CurrencyUAH:
		value = input.Value.DivRound(rate, maxAmountDecimals)
		if value.IsZero() {
			return nil, domain.ErrInvalidAmount
		}
	default:
		return nil, domain.ErrInvalidAmount
	}

	wallet, err := uc.pickWallet(input.Network)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		UserID:       user.TgID,
		Currency:     "USDT",
		Value:        value,
		ExchangeRate: rate,
		Network:      input.Network,
		BankCard:     user.BankCard,
		Wallet:       wallet.Address,
		Status:       domain.StatusPendingPayment,
	}

	orderID, err := uc.OrderRepo.CreateOrder(&order)
	if err != nil {
		uc.recordError("create")
		return nil, err
	}
	order.ID = orderID

	uc.recordOrderCreated(&order)
	uc.publishOrderEvent(&order)

	slog.Info("order created",
		"order_id", order.ID,
		"user_id", order.UserID,
		"network", order.Network,
		"value", order.Value.String())

	return &orderdto.OrderOutput{
		Order:     order,
		AmountUAH: order.AmountUAH(),
	}, nil
}

// pickWallet draws a random receiving address for the network so that
// deposits spread across the pool.
func (uc *DefaultOrderUsecase) pickWallet(network string) (*domain.Wallet, error) {
	wallets, err := uc.WalletRepo.ListWalletsByNetwork(network)
	if err != nil {
		uc.recordError("create")
		return nil, err
	}
	if len(wallets) == 0 {
		if uc.Metrics != nil {
			uc.Metrics.WalletPoolMisses.Inc()
		}
		return nil, domain.ErrNoWalletAvailable
	}
	return wallets[rand.Intn(len(wallets))], nil
}

func validateAmount(value decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if value.Exponent() < -maxAmountDecimals {
		return domain.ErrInvalidAmount
	}
	return nil
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish order event", "order_id", event.OrderID, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:      order.ID,
		UserID:       order.UserID,
		Status:       string(order.Status),
		ValueUSDT:    order.Value.String(),
		ExchangeRate: order.ExchangeRate.String(),
		Network:      order.Network,
		Wallet:       order.Wallet,
		BankCard:     order.BankCard,
	})
}
