package repository

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/swapline/usdt-uah-bot/internal/domain"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const singletonID = 1

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{DB: db}
}

func (r *DefaultSettingsRepository) GetRate() (decimal.Decimal, error) {
	var rate models.RateModel
	if err := r.DB.First(&rate, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, domain.ErrRateNotSet
		}
		return decimal.Zero, err
	}
	return rate.RateValue, nil
}

func (r *DefaultSettingsRepository) SetRate(rate decimal.Decimal) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate_value"}),
	}).Create(&models.RateModel{ID: singletonID, RateValue: rate}).Error
}

func (r *DefaultSettingsRepository) GetSupportContact() (string, error) {
	var support models.SupportModel
	if err := r.DB.First(&support, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return support.SupportValue, nil
}

func (r *DefaultSettingsRepository) SetSupportContact(contact string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"support_value"}),
	}).Create(&models.SupportModel{ID: singletonID, SupportValue: contact}).Error
}
