package models

import "github.com/shopspring/decimal"

// Singleton rows, always id = 1.

type RateModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement:false"`
	RateValue decimal.Decimal `gorm:"type:numeric(20,8)"`
}

func (RateModel) TableName() string {
	return "rates"
}

type SupportModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	SupportValue string
}

func (SupportModel) TableName() string {
	return "support"
}
