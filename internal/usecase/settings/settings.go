package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/swapline/usdt-uah-bot/internal/domain"
)

// RateSuggester provides a market rate hint for the admin rate dialog.
type RateSuggester interface {
	SuggestRate(ctx context.Context) (decimal.Decimal, error)
}

type SettingsUsecase interface {
	GetRate() (decimal.Decimal, error)
	SetRate(adminID int64, rate decimal.Decimal) error
	SuggestMarketRate(ctx context.Context) (decimal.Decimal, error)

	GetSupportContact() (string, error)
	SetSupportContact(adminID int64, contact string) error

	AddWallet(adminID int64, network, address string) error
	DeleteWallet(adminID int64, address string) error
	ListWallets() ([]*domain.Wallet, error)
}

type DefaultSettingsUsecase struct {
	SettingsRepo domain.SettingsRepository
	WalletRepo   domain.WalletRepository
	RateSource   RateSuggester
	AdminIDs     map[int64]bool
}

func NewDefaultSettingsUsecase(
	settingsRepo domain.SettingsRepository,
	walletRepo domain.WalletRepository,
	rateSource RateSuggester,
	adminIDs []int64) *DefaultSettingsUsecase {

	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	return &DefaultSettingsUsecase{
		SettingsRepo: settingsRepo,
		WalletRepo:   walletRepo,
		RateSource:   rateSource,
		AdminIDs:     admins,
	}
}

func (uc *DefaultSettingsUsecase) GetRate() (decimal.Decimal, error) {
	return uc.SettingsRepo.GetRate()
}

func (uc *DefaultSettingsUsecase) SetRate(adminID int64, rate decimal.Decimal) error {
	if !uc.AdminIDs[adminID] {
		return domain.ErrNotAuthorized
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if err := uc.SettingsRepo.SetRate(rate); err != nil {
		return err
	}
	slog.Info("exchange rate updated", "admin_id", adminID, "rate", rate.String())
	return nil
}

func (uc *DefaultSettingsUsecase) SuggestMarketRate(ctx context.Context) (decimal.Decimal, error) {
	if uc.RateSource == nil {
		return decimal.Zero, domain.ErrRateNotSet
	}
	return uc.RateSource.SuggestRate(ctx)
}

func (uc *DefaultSettingsUsecase) GetSupportContact() (string, error) {
	return uc.SettingsRepo.GetSupportContact()
}

func (uc *DefaultSettingsUsecase) SetSupportContact(adminID int64, contact string) error {
	if !uc.AdminIDs[adminID] {
		return domain.ErrNotAuthorized
	}
	contact = strings.TrimSpace(contact)
	if !strings.HasPrefix(contact, "@") {
		return fmt.Errorf("support contact must start with @")
	}
	return uc.SettingsRepo.SetSupportContact(contact)
}

func (uc *DefaultSettingsUsecase) AddWallet(adminID int64, network, address string) error {
	if !uc.AdminIDs[adminID] {
		return domain.ErrNotAuthorized
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("empty wallet address")
	}
	if err := uc.WalletRepo.AddWallet(network, address); err != nil {
		return err
	}
	slog.Info("wallet added", "admin_id", adminID, "network", network)
	return nil
}

func (uc *DefaultSettingsUsecase) DeleteWallet(adminID int64, address string) error {
	if !uc.AdminIDs[adminID] {
		return domain.ErrNotAuthorized
	}
	return uc.WalletRepo.DeleteWalletByAddress(strings.TrimSpace(address))
}

func (uc *DefaultSettingsUsecase) ListWallets() ([]*domain.Wallet, error) {
	return uc.WalletRepo.ListWallets()
}
