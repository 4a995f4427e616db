package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPendingPayment       OrderStatus = "PENDING_PAYMENT"
	StatusAwaitingConfirmation OrderStatus = "AWAITING_CONFIRMATION"
	StatusCompleted            OrderStatus = "COMPLETED"
	StatusCancelledByUser      OrderStatus = "CANCELLED_BY_USER"
	StatusCancelledByAdmin     OrderStatus = "CANCELLED_BY_ADMIN"
)

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelledByUser, StatusCancelledByAdmin:
		return true
	}
	return false
}

type ActorRole string

const (
	RoleUser  ActorRole = "user"
	RoleAdmin ActorRole = "admin"
)

type Order struct {
	ID           int64
	UserID       int64
	Currency     string
	Value        decimal.Decimal // canonical amount, always USDT
	ExchangeRate decimal.Decimal // frozen at creation, never recomputed
	Network      string
	BankCard     string
	Wallet       string
	Status       OrderStatus
	ProofFileID  string
	CreatedAt    time.Time
	PaidAt       *time.Time
}

// AmountUAH returns the fiat side at the frozen rate, full precision.
// Rounding to 2 places happens only at display time.
func (o *Order) AmountUAH() decimal.Decimal {
	return o.Value.Mul(o.ExchangeRate)
}
