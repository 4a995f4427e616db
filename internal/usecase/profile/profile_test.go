package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapline/usdt-uah-bot/internal/domain"
)

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

func TestRegisterNewUser(t *testing.T) {
	repo := &mockUserRepo{
		upsertUserFn: func(tgID int64, username, fullName string) (bool, error) {
			return false, nil
		},
	}

	uc := NewDefaultProfileUsecase(repo)
	isNew, err := uc.Register(100, "buyer", "Test Buyer")
	require.NoError(t, err)
	assert.True(t, isNew)
}

func TestRegisterReturningUser(t *testing.T) {
	repo := &mockUserRepo{
		upsertUserFn: func(tgID int64, username, fullName string) (bool, error) {
			return true, nil
		},
	}

	uc := NewDefaultProfileUsecase(repo)
	isNew, err := uc.Register(100, "buyer", "Test Buyer")
	require.NoError(t, err)
	assert.False(t, isNew)
}

func TestSetBankCardValid(t *testing.T) {
	var stored string
	repo := &mockUserRepo{
		updateBankCardFn: func(tgID int64, card string) error {
			stored = card
			return nil
		},
	}

	uc := NewDefaultProfileUsecase(repo)
	err := uc.SetBankCard(100, "4532 0151 1283 0366")
	require.NoError(t, err)
	assert.Equal(t, "4532015112830366", stored)
}

func TestSetBankCardInvalidChecksum(t *testing.T) {
	called := false
	repo := &mockUserRepo{
		updateBankCardFn: func(int64, string) error {
			called = true
			return nil
		},
	}

	uc := NewDefaultProfileUsecase(repo)
	err := uc.SetBankCard(100, "1234567890123456")
	assert.ErrorIs(t, err, domain.ErrInvalidCardNumber)
	assert.False(t, called)
}

func TestSetBankCardWrongLength(t *testing.T) {
	uc := NewDefaultProfileUsecase(&mockUserRepo{})
	err := uc.SetBankCard(100, "453201511283")
	assert.ErrorIs(t, err, domain.ErrInvalidCardNumber)
}
