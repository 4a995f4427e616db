package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapline/usdt-uah-bot/internal/domain"
	orderdto "github.com/swapline/usdt-uah-bot/internal/usecase/dto/order"
)

func newCreateUsecase(orderRepo *mockOrderRepo, userRepo *mockUserRepo, walletRepo *mockWalletRepo, settingsRepo *mockSettingsRepo) *DefaultOrderUsecase {
	return NewDefaultOrderUsecase(orderRepo, userRepo, walletRepo, settingsRepo, nil, nil, []int64{42})
}

func TestCreateOrderHappyPath(t *testing.T) {
	rate := decimal.RequireFromString("41.72")

	var stored *domain.Order
	orderRepo := &mockOrderRepo{
		createOrderFn: func(order *domain.Order) (int64, error) {
			stored = order
			return 7, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFn: func(tgID int64) (*domain.User, error) {
			return completeUser(tgID), nil
		},
	}
	walletRepo := &mockWalletRepo{
		listWalletsByNetworkFn: func(network string) ([]*domain.Wallet, error) {
			return []*domain.Wallet{{ID: 1, Network: network, Address: "TXkVAddr1"}}, nil
		},
	}
	settingsRepo := &mockSettingsRepo{
		getRateFn: func() (decimal.Decimal, error) { return rate, nil },
	}

	uc := newCreateUsecase(orderRepo, userRepo, walletRepo, settingsRepo)
	out, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		UserID:  100,
		Network: "TRC20",
		Value:   decimal.RequireFromString("100"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.Order.ID)
	assert.Equal(t, domain.StatusPendingPayment, out.Order.Status)
	assert.Equal(t, "USDT", out.Order.Currency)
	assert.Equal(t, "TXkVAddr1", out.Order.Wallet)
	assert.Equal(t, "4532015112830366", out.Order.BankCard)
	assert.True(t, rate.Equal(out.Order.ExchangeRate))
	assert.Equal(t, "4172.00", out.AmountUAH.StringFixed(2))

	require.NotNil(t, stored)
	assert.True(t, rate.Equal(stored.ExchangeRate))
}

func TestCreateOrderUAHEntryConvertsAtFrozenRate(t *testing.T) {
	rate := decimal.RequireFromString("41.72")

	var stored *domain.Order
	orderRepo := &mockOrderRepo{
		createOrderFn: func(order *domain.Order) (int64, error) {
			stored = order
			return 8, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFn: func(tgID int64) (*domain.User, error) { return completeUser(tgID), nil },
	}
	walletRepo := &mockWalletRepo{
		listWalletsByNetworkFn: func(network string) ([]*domain.Wallet, error) {
			return []*domain.Wallet{{Address: "addr"}}, nil
		},
	}
	settingsRepo := &mockSettingsRepo{
		getRateFn: func() (decimal.Decimal, error) { return rate, nil },
	}

	uc := newCreateUsecase(orderRepo, userRepo, walletRepo, settingsRepo)
	out, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		UserID:   100,
		Network:  "TRC20",
		Currency: orderdto.CurrencyUAH,
		Value:    decimal.RequireFromString("4172"),
	})
	require.NoError(t, err)

	usdt := decimal.RequireFromString("100")
	assert.True(t, usdt.Equal(out.Order.Value), "got %s", out.Order.Value)
	assert.Equal(t, "USDT", out.Order.Currency)
	assert.True(t, rate.Equal(out.Order.ExchangeRate))
	assert.Equal(t, "4172.00", out.AmountUAH.StringFixed(2))

	require.NotNil(t, stored)
	assert.True(t, usdt.Equal(stored.Value))
}

func TestCreateOrderUnknownCurrency(t *testing.T) {
	userRepo := &mockUserRepo{
		getUserByIDFn: func(tgID int64) (*domain.User, error) { return completeUser(tgID), nil },
	}
	settingsRepo := &mockSettingsRepo{
		getRateFn: func() (decimal.Decimal, error) { return decimal.RequireFromString("41.72"), nil },
	}

	uc := newCreateUsecase(&mockOrderRepo{}, userRepo, &mockWalletRepo{}, settingsRepo)
	_, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		UserID:   100,
		Network:  "TRC20",
		Currency: "EUR",
		Value:    decimal.RequireFromString("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCreateOrderRateFrozenAtCreation(t *testing.T) {
	rate := decimal.RequireFromString("41.72")

	orderRepo := &mockOrderRepo{
		createOrderFn: func(order *domain.Order) (int64, error) { return 1, nil },
	}
	userRepo := &mockUserRepo{
		getUserByIDFn: func(tgID int64) (*domain.User, error) { return completeUser(tgID), nil },
	}
	walletRepo := &mockWalletRepo{
		listWalletsByNetworkFn: func(network string) ([]*domain.Wallet, error) {
			return []*domain.Wallet{{Address: "addr"}}, nil
		},
	}
	settingsRepo := &mockSettingsRepo{
		getRateFn: func() (decimal.Decimal, error) { return rate, nil },
	}

	uc := newCreateUsecase(orderRepo, userRepo, walletRepo, settingsRepo)
	out, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		UserID:  100,
		Network: "TRC20",
		Value:   decimal.RequireFromString("10"),
	})
	require.NoError(t, err)

	// the rate moves after creation, the order keeps the one it was born with
	rate = decimal.RequireFromString("45.00")
	assert.Equal(t, "417.20", out.Order.AmountUAH().StringFixed(2))
}

func TestCreateOrderProfileIncomplete(t *testing.T) {
	userRepo := &mockUserRepo{
		getUserByIDFn: func(tgID int64) (*domain.User, error) {
			return &domain.User{TgID: tgID, PhoneNumber: "+380991234567"}, nil
		},
	}

	uc := newCreateUsecase(&mockOrderRepo{}, userRepo, &mockWalletRepo{}, &mockSettingsRepo{})
	_, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		UserID:  100,
		Network: "TRC20",
		Value:   decimal.RequireFromString("10"),
	})
	assert.ErrorIs(t, err, domain.ErrProfileIncomplete)
}

func TestCreateOrderInvalidAmount(t *testing.T) {
	userRepo := &mockUserRepo{
		getUserByIDFn: func(tgID int64) (*domain.User, error) { return completeUser(tgID), nil },
	}
	uc := newCreateUsecase(&mockOrderRepo{}, userRepo, &mockWalletRepo{}, &mockSettingsRepo{})

	for _, raw := range []string{"0", "-5", "1.000000001"} {
		_, err := uc.CreateOrder(&orderdto.CreateOrderInput{
			UserID:  100,
			Network: "TRC20",
			Value:   decimal.RequireFromString(raw),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %s", raw)
	}
}

func TestCreateOrderRateNotSet(t *testing.T) {
	userRepo := &mockUserRepo{
		getUserByIDFn: func(tgID int64) (*domain.User, error) { return completeUser(tgID), nil },
	}
	settingsRepo := &mockSettingsRepo{
		getRateFn: func() (decimal.Decimal, error) { return decimal.Zero, domain.ErrRateNotSet },
	}

	uc := newCreateUsecase(&mockOrderRepo{}, userRepo, &mockWalletRepo{}, settingsRepo)
	_, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		UserID:  100,
		Network: "TRC20",
		Value:   decimal.RequireFromString("10"),
	})
	assert.ErrorIs(t, err, domain.ErrRateNotSet)
}

func TestCreateOrderNoWalletPersistsNothing(t *testing.T) {
	created := false
	orderRepo := &mockOrderRepo{
		createOrderFn: func(order *domain.Order) (int64, error) {
			created = true
			return 1, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFn: func(tgID int64) (*domain.User, error) { return completeUser(tgID), nil },
	}
	walletRepo := &mockWalletRepo{
		listWalletsByNetworkFn: func(network string) ([]*domain.Wallet, error) {
			return nil, nil
		},
	}
	settingsRepo := &mockSettingsRepo{
		getRateFn: func() (decimal.Decimal, error) { return decimal.RequireFromString("41.72"), nil },
	}

	uc := newCreateUsecase(orderRepo, userRepo, walletRepo, settingsRepo)
	_, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		UserID:  100,
		Network: "BEP20",
		Value:   decimal.RequireFromString("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNoWalletAvailable)
	assert.False(t, created)
}
