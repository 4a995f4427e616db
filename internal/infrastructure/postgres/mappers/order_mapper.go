package mappers

import (
	"github.com/swapline/usdt-uah-bot/internal/domain"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:           model.ID,
		UserID:       model.UserID,
		Currency:     model.Currency,
		Value:        model.Value,
		ExchangeRate: model.ExchangeRate,
		Network:      model.Network,
		BankCard:     model.BankCard,
		Wallet:       model.Wallet,
		Status:       model.Status,
		ProofFileID:  model.ProofFileID,
		CreatedAt:    model.CreatedAt,
		PaidAt:       model.PaidAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:           order.ID,
		UserID:       order.UserID,
		Currency:     order.Currency,
		Value:        order.Value,
		ExchangeRate: order.ExchangeRate,
		Network:      order.Network,
		BankCard:     order.BankCard,
		Wallet:       order.Wallet,
		Status:       order.Status,
		ProofFileID:  order.ProofFileID,
		CreatedAt:    order.CreatedAt,
		PaidAt:       order.PaidAt,
	}
}
