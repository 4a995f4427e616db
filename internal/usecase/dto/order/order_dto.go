package orderdto

import (
	"github.com/shopspring/decimal"
	"github.com/swapline/usdt-uah-bot/internal/domain"
)

// Currencies the order amount may be entered in. The stored order value
// is always canonical USDT.
const (
	CurrencyUSDT = "USDT"
	CurrencyUAH  = "UAH"
)

type CreateOrderInput struct {
	UserID  int64
	Network string

	// Currency names the unit of Value. Empty means USDT. A UAH amount
	// is converted to USDT by the engine at the rate it freezes.
	Currency string
	Value    decimal.Decimal
}

type OrderOutput struct {
	Order     domain.Order
	AmountUAH decimal.Decimal
}

type ListOrdersInput struct {
	Page    int
	PerPage int
}

type ListOrdersOutput struct {
	Orders []*domain.Order
	Total  int64
	Page   int
	Pages  int
}
