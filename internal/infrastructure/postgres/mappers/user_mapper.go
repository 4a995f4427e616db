package mappers

import (
	"github.com/swapline/usdt-uah-bot/internal/domain"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		TgID:        model.TgID,
		Username:    model.Username,
		FullName:    model.FullName,
		PhoneNumber: model.PhoneNumber,
		Nickname:    model.Nickname,
		BankCard:    model.BankCard,
	}
}

func ToDomainWallet(model *models.WalletModel) *domain.Wallet {
	return &domain.Wallet{
		ID:      model.ID,
		Network: model.Network,
		Address: model.Address,
	}
}
