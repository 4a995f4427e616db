package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swapline/usdt-uah-bot/internal/domain"
)

type OrderModel struct {
	ID           int64              `gorm:"primaryKey;autoIncrement"`
	UserID       int64              `gorm:"not null;index:idx_orders_user"`
	User         UserModel          `gorm:"foreignKey:UserID;references:TgID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Currency     string             `gorm:"not null"`
	Value        decimal.Decimal    `gorm:"type:numeric(20,8);not null"`
	ExchangeRate decimal.Decimal    `gorm:"type:numeric(20,8);not null"`
	Network      string
	BankCard     string             `gorm:"not null"`
	Wallet       string
	Status       domain.OrderStatus `gorm:"index:idx_orders_status"`
	ProofFileID  string
	CreatedAt    time.Time          `gorm:"index:idx_orders_created_at"`
	UpdatedAt    time.Time
	PaidAt       *time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
