package postgres

import (
	"log"

	"github.com/swapline/usdt-uah-bot/internal/config"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.BotConfig) *gorm.DB {
	dsn := cfg.BotDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.UserModel{}, &models.OrderModel{}, &models.WalletModel{}, &models.RateModel{}, &models.SupportModel{})

	return db
}
