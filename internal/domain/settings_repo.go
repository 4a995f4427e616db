package domain

import "github.com/shopspring/decimal"

// SettingsRepository owns the two singleton rows: current USDT->UAH rate
// and the support contact shown to users.
type SettingsRepository interface {
	GetRate() (decimal.Decimal, error)
	SetRate(rate decimal.Decimal) error
	GetSupportContact() (string, error)
	SetSupportContact(contact string) error
}
