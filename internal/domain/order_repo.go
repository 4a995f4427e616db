package domain

import (
	"time"
)

// StatusChange carries the extra columns written together with a status
// transition. Nil fields are left untouched.
type StatusChange struct {
	ProofFileID *string
	PaidAt      *time.Time
}

type OrderRepository interface {
	CreateOrder(order *Order) (int64, error)
	GetOrderByID(orderID int64) (*Order, error)

	// UpdateOrderStatusIf re-reads the row under a row lock and writes the new
	// status only while the current one is still in allowedFrom. Returns
	// ErrOrderNotModifiable when a concurrent transition won the race.
	UpdateOrderStatusIf(orderID int64, allowedFrom []OrderStatus, to OrderStatus, change *StatusChange) error

	ListOrdersPage(page, perPage int) ([]*Order, int64, error)
	ListUserOrdersPage(userID int64, page, perPage int) ([]*Order, int64, error)
	FindStalePendingOrders(olderThan time.Time) ([]*Order, error)
}

type UserRepository interface {
	// UpsertUser creates the row on first contact. Reports whether the user
	// already existed.
	UpsertUser(tgID int64, username, fullName string) (existed bool, err error)
	GetUserByID(tgID int64) (*User, error)
	UpdatePhoneNumber(tgID int64, phone string) error
	UpdateNickname(tgID int64, nickname string) error
	UpdateBankCard(tgID int64, card string) error
	ListUsers() ([]*User, error)
}

type WalletRepository interface {
	AddWallet(network, address string) error
	DeleteWalletByAddress(address string) error
	ListWallets() ([]*Wallet, error)
	ListWalletsByNetwork(network string) ([]*Wallet, error)
}
