package repository

import (
	"errors"
	"fmt"

	"github.com/swapline/usdt-uah-bot/internal/domain"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/mappers"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) UpsertUser(tgID int64, username, fullName string) (bool, error) {
	var user models.UserModel
	err := r.DB.First(&user, "tg_id = ?", tgID).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	newUser := models.UserModel{
		TgID:     tgID,
		Username: username,
		FullName: fullName,
	}
	if err := r.DB.Create(&newUser).Error; err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}
	return false, nil
}

func (r *DefaultUserRepository) GetUserByID(tgID int64) (*domain.User, error) {
	var user models.UserModel
	if err := r.DB.First(&user, "tg_id = ?", tgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return mappers.ToDomainUser(&user), nil
}

func (r *DefaultUserRepository) UpdatePhoneNumber(tgID int64, phone string) error {
	return r.updateField(tgID, "phone_number", phone)
}

func (r *DefaultUserRepository) UpdateNickname(tgID int64, nickname string) error {
	return r.updateField(tgID, "nickname", nickname)
}

func (r *DefaultUserRepository) UpdateBankCard(tgID int64, card string) error {
	return r.updateField(tgID, "bank_card", card)
}

func (r *DefaultUserRepository) updateField(tgID int64, field string, value string) error {
	res := r.DB.Model(&models.UserModel{}).Where("tg_id = ?", tgID).Update(field, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *DefaultUserRepository) ListUsers() ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, len(userModels))
	for i, userModel := range userModels {
		users[i] = mappers.ToDomainUser(&userModel)
	}

	return users, nil
}
