package usecase

import (
	"log/slog"
	"strings"

	"github.com/swapline/usdt-uah-bot/internal/domain"
	"github.com/swapline/usdt-uah-bot/internal/util/luhn"
)

type ProfileUsecase interface {
	Register(tgID int64, username, fullName string) (isNew bool, err error)
	GetProfile(tgID int64) (*domain.User, error)
	SetPhoneNumber(tgID int64, phone string) error
	SetNickname(tgID int64, nickname string) error
	SetBankCard(tgID int64, card string) error
}

type DefaultProfileUsecase struct {
	UserRepo domain.UserRepository
}

func NewDefaultProfileUsecase(userRepo domain.UserRepository) *DefaultProfileUsecase {
	return &DefaultProfileUsecase{UserRepo: userRepo}
}

// Register creates the user row on first contact and reports whether
// this chat is new to the bot.
func (uc *DefaultProfileUsecase) Register(tgID int64, username, fullName string) (bool, error) {
	existed, err := uc.UserRepo.UpsertUser(tgID, username, fullName)
	if err != nil {
		return false, err
	}
	if !existed {
		slog.Info("new user registered", "tg_id", tgID, "username", username)
	}
	return !existed, nil
}

func (uc *DefaultProfileUsecase) GetProfile(tgID int64) (*domain.User, error) {
	return uc.UserRepo.GetUserByID(tgID)
}

func (uc *DefaultProfileUsecase) SetPhoneNumber(tgID int64, phone string) error {
	return uc.UserRepo.UpdatePhoneNumber(tgID, strings.TrimSpace(phone))
}

func (uc *DefaultProfileUsecase) SetNickname(tgID int64, nickname string) error {
	return uc.UserRepo.UpdateNickname(tgID, strings.TrimSpace(nickname))
}

// SetBankCard stores the payout card after a checksum pass. Spaces are
// tolerated since users paste cards in groups of four.
func (uc *DefaultProfileUsecase) SetBankCard(tgID int64, card string) error {
	normalized := strings.ReplaceAll(strings.TrimSpace(card), " ", "")
	if !luhn.Valid(normalized) {
		return domain.ErrInvalidCardNumber
	}
	return uc.UserRepo.UpdateBankCard(tgID, normalized)
}
