package models

import "time"

type UserModel struct {
	TgID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Username    string
	FullName    string
	PhoneNumber string
	Nickname    string
	BankCard    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserModel) TableName() string {
	return "users"
}
