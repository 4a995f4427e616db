package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swapline/usdt-uah-bot/internal/domain"
)

type mockOrderRepo struct {
	createOrderFn            func(order *domain.Order) (int64, error)
	getOrderByIDFn           func(orderID int64) (*domain.Order, error)
	updateOrderStatusIfFn    func(orderID int64, allowedFrom []domain.OrderStatus, to domain.OrderStatus, change *domain.StatusChange) error
	listOrdersPageFn         func(page, perPage int) ([]*domain.Order, int64, error)
	listUserOrdersPageFn     func(userID int64, page, perPage int) ([]*domain.Order, int64, error)
	findStalePendingOrdersFn func(olderThan time.Time) ([]*domain.Order, error)
}

func (m *mockOrderRepo) CreateOrder(order *domain.Order) (int64, error) {
	return m.createOrderFn(order)
}
func (m *mockOrderRepo) GetOrderByID(orderID int64) (*domain.Order, error) {
	return m.getOrderByIDFn(orderID)
}
func (m *mockOrderRepo) UpdateOrderStatusIf(orderID int64, allowedFrom []domain.OrderStatus, to domain.OrderStatus, change *domain.StatusChange) error {
	return m.updateOrderStatusIfFn(orderID, allowedFrom, to, change)
}
func (m *mockOrderRepo) ListOrdersPage(page, perPage int) ([]*domain.Order, int64, error) {
	return m.listOrdersPageFn(page, perPage)
}
func (m *mockOrderRepo) ListUserOrdersPage(userID int64, page, perPage int) ([]*domain.Order, int64, error) {
	return m.listUserOrdersPageFn(userID, page, perPage)
}
func (m *mockOrderRepo) FindStalePendingOrders(olderThan time.Time) ([]*domain.Order, error) {
	return m.findStalePendingOrdersFn(olderThan)
}

type mockUserRepo struct {
	upsertUserFn        func(tgID int64, username, fullName string) (bool, error)
	getUserByIDFn       func(tgID int64) (*domain.User, error)
	updatePhoneNumberFn func(tgID int64, phone string) error
	updateNicknameFn    func(tgID int64, nickname string) error
	updateBankCardFn    func(tgID int64, card string) error
	listUsersFn         func() ([]*domain.User, error)
}

func (m *mockUserRepo) UpsertUser(tgID int64, username, fullName string) (bool, error) {
	return m.upsertUserFn(tgID, username, fullName)
}
func (m *mockUserRepo) GetUserByID(tgID int64) (*domain.User, error) {
	return m.getUserByIDFn(tgID)
}
func (m *mockUserRepo) UpdatePhoneNumber(tgID int64, phone string) error {
	return m.updatePhoneNumberFn(tgID, phone)
}
func (m *mockUserRepo) UpdateNickname(tgID int64, nickname string) error {
	return m.updateNicknameFn(tgID, nickname)
}
func (m *mockUserRepo) UpdateBankCard(tgID int64, card string) error {
	return m.updateBankCardFn(tgID, card)
}
func (m *mockUserRepo) ListUsers() ([]*domain.User, error) {
	return m.listUsersFn()
}

type mockWalletRepo struct {
	addWalletFn             func(network, address string) error
	deleteWalletByAddressFn func(address string) error
	listWalletsFn           func() ([]*domain.Wallet, error)
	listWalletsByNetworkFn  func(network string) ([]*domain.Wallet, error)
}

func (m *mockWalletRepo) AddWallet(network, address string) error {
	return m.addWalletFn(network, address)
}
func (m *mockWalletRepo) DeleteWalletByAddress(address string) error {
	return m.deleteWalletByAddressFn(address)
}
func (m *mockWalletRepo) ListWallets() ([]*domain.Wallet, error) {
	return m.listWalletsFn()
}
func (m *mockWalletRepo) ListWalletsByNetwork(network string) ([]*domain.Wallet, error) {
	return m.listWalletsByNetworkFn(network)
}

type mockSettingsRepo struct {
	getRateFn           func() (decimal.Decimal, error)
	setRateFn           func(rate decimal.Decimal) error
	getSupportContactFn func() (string, error)
	setSupportContactFn func(contact string) error
}

func (m *mockSettingsRepo) GetRate() (decimal.Decimal, error) {
	return m.getRateFn()
}
func (m *mockSettingsRepo) SetRate(rate decimal.Decimal) error {
	return m.setRateFn(rate)
}
func (m *mockSettingsRepo) GetSupportContact() (string, error) {
	return m.getSupportContactFn()
}
func (m *mockSettingsRepo) SetSupportContact(contact string) error {
	return m.setSupportContactFn(contact)
}

func completeUser(tgID int64) *domain.User {
	return &domain.User{
		TgID:        tgID,
		Username:    "buyer",
		FullName:    "Test Buyer",
		PhoneNumber: "+380991234567",
		Nickname:    "buyer",
		BankCard:    "4532015112830366",
	}
}
