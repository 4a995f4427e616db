package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/swapline/usdt-uah-bot/internal/domain"
	"github.com/swapline/usdt-uah-bot/internal/infrastructure/metrics"
)

// MessageSender delivers one broadcast message to one chat.
type MessageSender interface {
	SendText(chatID int64, text string) error
}

type MailingResult struct {
	CampaignID string
	Delivered  int
	Failed     int
	Elapsed    time.Duration
}

type MailingUsecase interface {
	Broadcast(ctx context.Context, adminID int64, text string) (*MailingResult, error)
}

type DefaultMailingUsecase struct {
	UserRepo domain.UserRepository
	Sender   MessageSender
	Metrics  *metrics.OrderMetrics
	AdminIDs map[int64]bool

	// Throttle keeps the fan-out under the Telegram per-second send limit.
	Throttle time.Duration
}

const defaultThrottle = 50 * time.Millisecond

func NewDefaultMailingUsecase(
	userRepo domain.UserRepository,
	sender MessageSender,
	orderMetrics *metrics.OrderMetrics,
	adminIDs []int64) *DefaultMailingUsecase {

	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	return &DefaultMailingUsecase{
		UserRepo: userRepo,
		Sender:   sender,
		Metrics:  orderMetrics,
		AdminIDs: admins,
		Throttle: defaultThrottle,
	}
}

// Broadcast sends text to every known user and tallies the outcome.
// Blocked bots and dead chats count as failures, the fan-out keeps going.
func (uc *DefaultMailingUsecase) Broadcast(ctx context.Context, adminID int64, text string) (*MailingResult, error) {
	if !uc.AdminIDs[adminID] {
		return nil, domain.ErrNotAuthorized
	}

	users, err := uc.UserRepo.ListUsers()
	if err != nil {
		return nil, err
	}

	result := &MailingResult{CampaignID: uuid.New().String()}
	start := time.Now()

	slog.Info("mailing started",
		"campaign_id", result.CampaignID,
		"admin_id", adminID,
		"recipients", len(users))

	for _, user := range users {
		select {
		case <-ctx.Done():
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		if err := uc.Sender.SendText(user.TgID, text); err != nil {
			result.Failed++
			uc.recordDelivery("failed")
			slog.Warn("mailing delivery failed",
				"campaign_id", result.CampaignID,
				"tg_id", user.TgID,
				"error", err.Error())
		} else {
			result.Delivered++
			uc.recordDelivery("delivered")
		}

		if uc.Throttle > 0 {
			time.Sleep(uc.Throttle)
		}
	}

	result.Elapsed = time.Since(start)
	if uc.Metrics != nil {
		uc.Metrics.MailingDuration.Observe(result.Elapsed.Seconds())
	}

	slog.Info("mailing finished",
		"campaign_id", result.CampaignID,
		"delivered", result.Delivered,
		"failed", result.Failed,
		"elapsed", result.Elapsed)

	return result, nil
}

func (uc *DefaultMailingUsecase) recordDelivery(outcome string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.MailingDeliveredTotal.WithLabelValues(outcome).Inc()
}
