package repository

import (
	"fmt"

	"github.com/swapline/usdt-uah-bot/internal/domain"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/mappers"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{DB: db}
}

func (r *DefaultWalletRepository) AddWallet(network, address string) error {
	wallet := models.WalletModel{
		Network: network,
		Address: address,
	}
	if err := r.DB.Create(&wallet).Error; err != nil {
		return fmt.Errorf("add wallet: %w", err)
	}
	return nil
}

func (r *DefaultWalletRepository) DeleteWalletByAddress(address string) error {
	res := r.DB.Where("address = ?", address).Delete(&models.WalletModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}

func (r *DefaultWalletRepository) ListWallets() ([]*domain.Wallet, error) {
	var walletModels []models.WalletModel
	if err := r.DB.Find(&walletModels).Error; err != nil {
		return nil, err
	}
	return toDomainWallets(walletModels), nil
}

func (r *DefaultWalletRepository) ListWalletsByNetwork(network string) ([]*domain.Wallet, error) {
	var walletModels []models.WalletModel
	if err := r.DB.Where("network = ?", network).Find(&walletModels).Error; err != nil {
		return nil, err
	}
	return toDomainWallets(walletModels), nil
}

func toDomainWallets(walletModels []models.WalletModel) []*domain.Wallet {
	wallets := make([]*domain.Wallet, len(walletModels))
	for i, walletModel := range walletModels {
		wallets[i] = mappers.ToDomainWallet(&walletModel)
	}
	return wallets
}
