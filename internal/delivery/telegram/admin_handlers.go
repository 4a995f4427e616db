package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/swapline/usdt-uah-bot/internal/domain"
	orderdto "github.com/swapline/usdt-uah-bot/internal/usecase/dto/order"
)

func (b *Bot) handleAdminButton(ctx context.Context, message *tgbotapi.Message) bool {
	chatID := message.Chat.ID

	switch message.Text {
	case btnAdmOrders:
		b.sendAdminOrdersPage(ctx, chatID, 1)
	case btnAdmUser:
		b.sessions.Save(ctx, chatID, &Session{Step: StepAdminUserLookup})
		b.sendText(chatID, "Telegram ID пользователя:")
	case btnAdmRate:
		b.promptRate(ctx, chatID)
	case btnAdmWallets:
		b.showWallets(chatID)
	case btnWalletAdd:
		b.sessions.Save(ctx, chatID, &Session{Step: StepAdminWalletNetwork})
		b.sendText(chatID, "Сеть нового кошелька ("+strings.Join(supportedNetworks, ", ")+"):")
	case btnWalletDelete:
		b.sessions.Save(ctx, chatID, &Session{Step: StepAdminWalletDelete})
		b.sendText(chatID, "Адрес кошелька, который нужно удалить:")
	case btnAdmMailing:
		b.sessions.Save(ctx, chatID, &Session{Step: StepAdminMailing})
		b.sendText(chatID, "Текст рассылки одним сообщением:")
	case btnAdmSupport:
		b.sessions.Save(ctx, chatID, &Session{Step: StepAdminSupport})
		b.sendText(chatID, "Новый контакт поддержки (например @username):")
	case btnBack:
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Главное меню.", mainKeyboard())
	default:
		return false
	}
	return true
}

func (b *Bot) promptRate(ctx context.Context, chatID int64) {
	text := "Текущий курс: "
	if rate, err := b.settings.GetRate(); err == nil {
		text += rate.String()
	} else {
		text += "не установлен"
	}

	if suggested, err := b.settings.SuggestMarketRate(ctx); err == nil {
		text += fmt.Sprintf("\nБиржевой ориентир: %s", suggested.StringFixed(2))
	}

	text += "\n\nВведите новый курс USDT/UAH:"
	b.sessions.Save(ctx, chatID, &Session{Step: StepAdminRate})
	b.sendText(chatID, text)
}

func (b *Bot) showWallets(chatID int64) {
	wallets, err := b.settings.ListWallets()
	if err != nil {
		b.sendText(chatID, "Не удалось получить список кошельков.")
		return
	}

	var sb strings.Builder
	if len(wallets) == 0 {
		sb.WriteString("Кошельков пока нет.")
	} else {
		sb.WriteString("Кошельки:\n")
		for _, w := range wallets {
			sb.WriteString(fmt.Sprintf("\n%s — %s", w.Network, w.Address))
		}
	}
	b.sendWithKeyboard(chatID, sb.String(), walletsKeyboard())
}

// handleAdminStep consumes the message when an admin dialog expects input.
func (b *Bot) handleAdminStep(ctx context.Context, message *tgbotapi.Message, session *Session) bool {
	chatID := message.Chat.ID

	switch session.Step {
	case StepAdminRate:
		rate, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(message.Text), ",", ".", 1))
		if err != nil {
			b.sendText(chatID, "Введите курс числом, например 41.72:")
			return true
		}
		if err := b.settings.SetRate(chatID, rate); err != nil {
			if errors.Is(err, domain.ErrInvalidAmount) {
				b.sendText(chatID, "Курс должен быть положительным числом:")
				return true
			}
			b.sendText(chatID, "Не удалось сохранить курс.")
			return true
		}
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Курс обновлён: "+rate.String(), adminKeyboard())
		return true

	case StepAdminSupport:
		if err := b.settings.SetSupportContact(chatID, message.Text); err != nil {
			b.sendText(chatID, "Контакт должен начинаться с @, попробуйте ещё раз:")
			return true
		}
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Контакт поддержки обновлён.", adminKeyboard())
		return true

	case StepAdminWalletNetwork:
		network := strings.ToUpper(strings.TrimSpace(message.Text))
		if !isSupportedNetwork(network) {
			b.sendText(chatID, "Неизвестная сеть. Доступны: "+strings.Join(supportedNetworks, ", "))
			return true
		}
		session.Network = network
		session.Step = StepAdminWalletAddress
		b.sessions.Save(ctx, chatID, session)
		b.sendText(chatID, "Адрес кошелька:")
		return true

	case StepAdminWalletAddress:
		if err := b.settings.AddWallet(chatID, session.Network, message.Text); err != nil {
			b.sendText(chatID, "Не удалось добавить кошелёк: "+err.Error())
			return true
		}
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Кошелёк добавлен.", walletsKeyboard())
		return true

	case StepAdminWalletDelete:
		err := b.settings.DeleteWallet(chatID, message.Text)
		if errors.Is(err, domain.ErrWalletNotFound) {
			b.sendText(chatID, "Кошелёк с таким адресом не найден.")
			return true
		}
		if err != nil {
			b.sendText(chatID, "Не удалось удалить кошелёк.")
			return true
		}
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Кошелёк удалён.", walletsKeyboard())
		return true

	case StepAdminMailing:
		if strings.TrimSpace(message.Text) == "" {
			b.sendText(chatID, "Текст рассылки не может быть пустым:")
			return true
		}
		session.Text = message.Text
		session.Step = StepAdminMailingConfirm
		b.sessions.Save(ctx, chatID, session)
		b.sendWithKeyboard(chatID, "Так увидят сообщение пользователи:\n\n"+message.Text, mailingConfirmKeyboard())
		return true

	case StepAdminMailingConfirm:
		b.sendText(chatID, "Подтвердите или отмените рассылку кнопками выше.")
		return true

	case StepAdminOrderLookup:
		return b.handleAdminOrderLookup(ctx, chatID, message.Text)

	case StepAdminUserLookup:
		return b.handleAdminUserLookup(ctx, chatID, message.Text)
	}

	return false
}

// Non-numeric text clears the lookup step and falls back to menu
// routing, same as the user-side lookup.
func (b *Bot) handleAdminOrderLookup(ctx context.Context, chatID int64, text string) bool {
	orderID, ok := parseOrderRef(text)
	if !ok {
		b.sessions.Reset(ctx, chatID)
		return false
	}

	order, err := b.orders.GetOrderByID(orderID)
	if err != nil {
		b.sendText(chatID, adminErrorText(err))
		return true
	}

	b.sessions.Reset(ctx, chatID)
	if order.Status.Terminal() {
		b.sendText(chatID, orderSummary(order))
		return true
	}
	b.sendWithKeyboard(chatID, orderSummary(order), adminOrderKeyboard(order.ID))
	return true
}

func (b *Bot) handleAdminUserLookup(ctx context.Context, chatID int64, text string) bool {
	userID, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		b.sessions.Reset(ctx, chatID)
		return false
	}

	user, err := b.profile.GetProfile(userID)
	if err != nil {
		b.sendText(chatID, "Пользователь не найден.")
		return true
	}

	b.sessions.Reset(ctx, chatID)
	b.sendText(chatID, fmt.Sprintf(
		"Пользователь %d\n\nUsername: @%s\nИмя: %s\nТелефон: %s\nНикнейм: %s\nКарта: %s",
		user.TgID, orDash(user.Username), orDash(user.FullName),
		orDash(user.PhoneNumber), orDash(user.Nickname), orDash(user.BankCard)))
	return true
}

func (b *Bot) runMailing(ctx context.Context, chatID int64, text string) {
	if b.mailing == nil {
		b.sendText(chatID, "Рассылка недоступна.")
		return
	}
	if strings.TrimSpace(text) == "" {
		b.sendText(chatID, "Текст рассылки не может быть пустым:")
		return
	}

	b.sessions.Reset(ctx, chatID)
	b.sendText(chatID, "Рассылка запущена...")

	go func() {
		result, err := b.mailing.Broadcast(context.Background(), chatID, text)
		if err != nil {
			slog.Error("mailing failed", "admin_id", chatID, "error", err.Error())
			b.sendText(chatID, "Рассылка завершилась с ошибкой.")
			return
		}
		b.sendText(chatID, fmt.Sprintf(
			"Рассылка завершена.\nДоставлено: %d\nНе доставлено: %d\nВремя: %s",
			result.Delivered, result.Failed, result.Elapsed.Round(time.Second)))
	}()
}

func (b *Bot) handleAdminCallback(ctx context.Context, chatID int64, action, arg string) {
	switch action {
	case cbAdmComplete:
		orderID, err := parseCallbackID(arg)
		if err != nil {
			return
		}
		b.sendWithKeyboard(chatID,
			fmt.Sprintf("Завершить заявку №%d?", orderID),
			adminConfirmKeyboard(cbAdmCompleteGo, orderID))

	case cbAdmCompleteGo:
		orderID, err := parseCallbackID(arg)
		if err != nil {
			return
		}
		order, err := b.orders.CompleteOrder(orderID, chatID)
		if err != nil {
			b.sendText(chatID, adminErrorText(err))
			return
		}
		b.sendText(chatID, fmt.Sprintf("Заявка №%d завершена.", order.ID))
		b.notifyUserOrderClosed(order)

	case cbAdmCancel:
		orderID, err := parseCallbackID(arg)
		if err != nil {
			return
		}
		b.sendWithKeyboard(chatID,
			fmt.Sprintf("Отменить заявку №%d?", orderID),
			adminConfirmKeyboard(cbAdmCancelGo, orderID))

	case cbAdmCancelGo:
		orderID, err := parseCallbackID(arg)
		if err != nil {
			return
		}
		order, err := b.orders.CancelOrder(orderID, chatID, domain.RoleAdmin)
		if err != nil {
			b.sendText(chatID, adminErrorText(err))
			return
		}
		b.sendText(chatID, fmt.Sprintf("Заявка №%d отменена.", order.ID))
		b.notifyUserOrderClosed(order)

	case cbAdmDismiss:
		b.sendText(chatID, "Действие отменено.")

	case cbAdmOrdersPage:
		page, err := strconv.Atoi(arg)
		if err != nil || page < 1 {
			return
		}
		b.sendAdminOrdersPage(ctx, chatID, page)

	case cbMailGo:
		session := b.sessions.Load(ctx, chatID)
		if session.Step != StepAdminMailingConfirm || session.Text == "" {
			b.sendText(chatID, "Рассылка устарела, начните заново.")
			return
		}
		b.runMailing(ctx, chatID, session.Text)

	case cbMailAbort:
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Рассылка отменена.", adminKeyboard())
	}
}

func (b *Bot) sendAdminOrdersPage(ctx context.Context, chatID int64, page int) {
	out, err := b.orders.ListOrders(&orderdto.ListOrdersInput{Page: page})
	if err != nil {
		b.sendText(chatID, "Не удалось получить список заявок.")
		return
	}
	if len(out.Orders) == 0 {
		b.sendText(chatID, "Заявок пока нет.")
		return
	}

	// a plain number in the next message opens that order
	b.sessions.Save(ctx, chatID, &Session{Step: StepAdminOrderLookup})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Заявки (всего %d, номер сообщением — поиск):\n", out.Total))
	for _, order := range out.Orders {
		sb.WriteString(fmt.Sprintf("\n№%d — %d — %s USDT (%s UAH)\n%s — %s\n",
			order.ID, order.UserID,
			order.Value.String(), order.AmountUAH().StringFixed(2),
			order.CreatedAt.Format("02.01.2006 15:04"),
			statusLabel(order.Status)))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	if pager := pagerKeyboard(cbAdmOrdersPage, out.Page, out.Pages); pager != nil {
		msg.ReplyMarkup = *pager
	}
	if _, err := b.api.Send(msg); err != nil {
		slog.Warn("failed to send admin orders page", "chat_id", chatID, "error", err.Error())
	}

	// active orders get their own action buttons
	for _, order := range out.Orders {
		if order.Status.Terminal() {
			continue
		}
		b.sendWithKeyboard(chatID, orderSummary(order), adminOrderKeyboard(order.ID))
	}
}

func adminErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrOrderNotModifiable):
		return "Статус заявки уже изменился."
	case errors.Is(err, domain.ErrOrderNotFound):
		return "Заявка не найдена."
	case errors.Is(err, domain.ErrNotAuthorized):
		return "Недостаточно прав."
	}
	return "Операция не удалась, попробуйте ещё раз."
}
