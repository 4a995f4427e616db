package models

type WalletModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Network string `gorm:"index:idx_wallets_network"`
	Address string `gorm:"uniqueIndex:idx_wallets_address"`
}

func (WalletModel) TableName() string {
	return "wallets"
}
