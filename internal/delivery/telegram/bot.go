package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/swapline/usdt-uah-bot/internal/domain"
	mailinguc "github.com/swapline/usdt-uah-bot/internal/usecase/mailing"
	orderuc "github.com/swapline/usdt-uah-bot/internal/usecase/order"
	profileuc "github.com/swapline/usdt-uah-bot/internal/usecase/profile"
	settingsuc "github.com/swapline/usdt-uah-bot/internal/usecase/settings"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	sessions *Sessions

	orders   orderuc.OrderUsecase
	profile  profileuc.ProfileUsecase
	settings settingsuc.SettingsUsecase
	mailing  mailinguc.MailingUsecase

	adminIDs map[int64]bool
}

func NewBot(
	api *tgbotapi.BotAPI,
	sessions *Sessions,
	orders orderuc.OrderUsecase,
	profile profileuc.ProfileUsecase,
	settings settingsuc.SettingsUsecase,
	adminIDs []int64) *Bot {

	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	return &Bot{
		api:      api,
		sessions: sessions,
		orders:   orders,
		profile:  profile,
		settings: settings,
		adminIDs: admins,
	}
}

// SetMailing breaks the construction cycle: the mailing usecase sends
// through the bot, so it is wired after the bot exists.
func (b *Bot) SetMailing(mailing mailinguc.MailingUsecase) {
	b.mailing = mailing
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	slog.Info("bot started", "account", b.api.Self.UserName)

	for update := range updates {
		b.handleUpdate(ctx, update)
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in update handler", "panic", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	session := b.sessions.Load(ctx, chatID)

	if b.isAdmin(chatID) && b.handleAdminStep(ctx, message, session) {
		return
	}
	if b.handleUserStep(ctx, message, session) {
		return
	}

	if b.isAdmin(chatID) && b.handleAdminButton(ctx, message) {
		return
	}
	b.handleUserButton(ctx, message)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.sessions.Reset(ctx, chatID)
		b.handleStart(ctx, message)
	case "admin":
		if !b.isAdmin(chatID) {
			b.sendText(chatID, "Команда недоступна.")
			return
		}
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Панель администратора.", adminKeyboard())
	case "cancel":
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Действие отменено.", mainKeyboard())
	default:
		b.sendText(chatID, "Неизвестная команда. Используйте меню.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// always answer so the button stops spinning
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
			slog.Warn("failed to answer callback", "error", err.Error())
		}
	}()

	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	action, arg, err := parseCallback(query.Data)
	if err != nil {
		slog.Warn("bad callback payload", "data", query.Data, "chat_id", chatID)
		return
	}

	switch action {
	case cbCurrency, cbNetwork, cbOrderBack, cbEditProfile,
		cbOrderConfirm, cbOrderAbort, cbOrderPaid, cbOrderCancel, cbMyOrdersPage:
		b.handleUserCallback(ctx, chatID, action, arg)
	case cbAdmComplete, cbAdmCompleteGo, cbAdmCancel, cbAdmCancelGo,
		cbAdmDismiss, cbAdmOrdersPage, cbMailGo, cbMailAbort:
		if !b.isAdmin(chatID) {
			return
		}
		b.handleAdminCallback(ctx, chatID, action, arg)
	default:
		slog.Warn("unknown callback action", "action", action, "chat_id", chatID)
	}
}

func (b *Bot) isAdmin(chatID int64) bool {
	return b.adminIDs[chatID]
}

func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		slog.Warn("failed to send message", "chat_id", chatID, "error", err.Error())
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		slog.Warn("failed to send message", "chat_id", chatID, "error", err.Error())
	}
}

// SendText implements the mailing sender. Unlike sendText it reports
// the failure so the broadcast can tally it.
func (b *Bot) SendText(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) notifyAdmins(text string, markup *tgbotapi.InlineKeyboardMarkup) {
	for adminID := range b.adminIDs {
		msg := tgbotapi.NewMessage(adminID, text)
		if markup != nil {
			msg.ReplyMarkup = *markup
		}
		if _, err := b.api.Send(msg); err != nil {
			slog.Warn("failed to notify admin", "admin_id", adminID, "error", err.Error())
		}
	}
}

func statusLabel(status domain.OrderStatus) string {
	switch status {
	case domain.StatusPendingPayment:
		return "⏳ Ожидает оплаты"
	case domain.StatusAwaitingConfirmation:
		return "🔎 На проверке"
	case domain.StatusCompleted:
		return "✅ Завершена"
	case domain.StatusCancelledByUser:
		return "❌ Отменена вами"
	case domain.StatusCancelledByAdmin:
		return "❌ Отменена администратором"
	}
	return string(status)
}

func orderSummary(order *domain.Order) string {
	return fmt.Sprintf(
		"Заявка №%d\n\nСумма: %s USDT\nК оплате: %s UAH\nКурс: %s\nСеть: %s\nСтатус: %s",
		order.ID,
		order.Value.String(),
		order.AmountUAH().StringFixed(2),
		order.ExchangeRate.String(),
		order.Network,
		statusLabel(order.Status),
	)
}
