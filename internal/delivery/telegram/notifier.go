package telegram

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/swapline/usdt-uah-bot/internal/domain"
)

func (b *Bot) notifyAdminsNewOrder(order *domain.Order) {
	text := fmt.Sprintf(
		"🔥 Новая заявка №%d\n\nПользователь: %d\nСумма: %s USDT\nК выплате: %s UAH\nКурс: %s\nСеть: %s\nКошелёк: %s\nКарта: %s",
		order.ID,
		order.UserID,
		order.Value.String(),
		order.AmountUAH().StringFixed(2),
		order.ExchangeRate.String(),
		order.Network,
		order.Wallet,
		order.BankCard,
	)
	markup := adminOrderKeyboard(order.ID)
	b.notifyAdmins(text, &markup)
}

// notifyAdminsProof forwards the payment screenshot with the action
// buttons attached, so confirmation is one tap away from the evidence.
func (b *Bot) notifyAdminsProof(order *domain.Order) {
	caption := fmt.Sprintf(
		"💸 Оплата по заявке №%d\n\nСумма: %s USDT\nК выплате: %s UAH на карту %s",
		order.ID,
		order.Value.String(),
		order.AmountUAH().StringFixed(2),
		order.BankCard,
	)
	markup := adminOrderKeyboard(order.ID)

	for adminID := range b.adminIDs {
		photo := tgbotapi.NewPhoto(adminID, tgbotapi.FileID(order.ProofFileID))
		photo.Caption = caption
		photo.ReplyMarkup = markup
		if _, err := b.api.Send(photo); err != nil {
			// the proof may be a document rather than a photo
			doc := tgbotapi.NewDocument(adminID, tgbotapi.FileID(order.ProofFileID))
			doc.Caption = caption
			doc.ReplyMarkup = markup
			if _, err := b.api.Send(doc); err != nil {
				slog.Warn("failed to forward payment proof", "admin_id", adminID, "error", err.Error())
			}
		}
	}
}

func (b *Bot) notifyUserOrderClosed(order *domain.Order) {
	var text string
	switch order.Status {
	case domain.StatusCompleted:
		text = fmt.Sprintf("✅ Заявка №%d выполнена. %s UAH отправлены на карту %s.",
			order.ID, order.AmountUAH().StringFixed(2), order.BankCard)
	case domain.StatusCancelledByAdmin:
		text = fmt.Sprintf("❌ Заявка №%d отменена администратором.", order.ID)
	default:
		return
	}
	b.sendText(order.UserID, text)
}
