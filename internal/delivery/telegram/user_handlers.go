package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
	"github.com/swapline/usdt-uah-bot/internal/domain"
	orderdto "github.com/swapline/usdt-uah-bot/internal/usecase/dto/order"
)

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	fullName := strings.TrimSpace(message.From.FirstName + " " + message.From.LastName)
	isNew, err := b.profile.Register(chatID, message.From.UserName, fullName)
	if err != nil {
		slog.Error("registration failed", "chat_id", chatID, "error", err.Error())
		b.sendText(chatID, "Что-то пошло не так, попробуйте позже.")
		return
	}

	if isNew {
		b.sendText(chatID, "Добро пожаловать! Это сервис обмена USDT на гривну.\n\nДля начала заполним профиль.")
		b.askNextProfileField(ctx, chatID)
		return
	}
	b.sendWithKeyboard(chatID, "С возвращением! Выберите действие:", mainKeyboard())
}

// askNextProfileField walks the user through the missing profile fields
// one at a time. Returns false when the profile is already complete.
func (b *Bot) askNextProfileField(ctx context.Context, chatID int64) bool {
	user, err := b.profile.GetProfile(chatID)
	if err != nil {
		b.sendText(chatID, "Что-то пошло не так, попробуйте позже.")
		return true
	}

	session := &Session{}
	switch {
	case user.PhoneNumber == "":
		session.Step = StepPhone
		b.sendText(chatID, "Укажите ваш номер телефона:")
	case user.Nickname == "":
		session.Step = StepNickname
		b.sendText(chatID, "Придумайте никнейм:")
	case user.BankCard == "":
		session.Step = StepCard
		b.sendText(chatID, "Укажите номер карты для получения гривны (16 цифр):")
	default:
		return false
	}
	b.sessions.Save(ctx, chatID, session)
	return true
}

func (b *Bot) handleUserButton(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Text {
	case btnSellUSDT:
		b.startOrderFlow(ctx, chatID)
	case btnMyOrders:
		b.sendUserOrdersPage(ctx, chatID, 1)
	case btnProfile:
		b.showProfile(ctx, chatID)
	case btnSupport:
		contact, err := b.settings.GetSupportContact()
		if err != nil || contact == "" {
			b.sendText(chatID, "Контакт поддержки пока не указан.")
			return
		}
		b.sendText(chatID, "По всем вопросам: "+contact)
	default:
		b.sendWithKeyboard(chatID, "Выберите действие:", mainKeyboard())
	}
}

func (b *Bot) startOrderFlow(ctx context.Context, chatID int64) {
	if b.askNextProfileField(ctx, chatID) {
		return
	}

	session := &Session{Step: StepOrderCurrency}
	b.sessions.Save(ctx, chatID, session)
	b.sendWithKeyboard(chatID, "В какой валюте укажете сумму?", currencyKeyboard())
}

func (b *Bot) showProfile(ctx context.Context, chatID int64) {
	user, err := b.profile.GetProfile(chatID)
	if err != nil {
		b.sendText(chatID, "Что-то пошло не так, попробуйте позже.")
		return
	}

	text := fmt.Sprintf("Ваш профиль:\n\nТелефон: %s\nНикнейм: %s\nКарта: %s",
		orDash(user.PhoneNumber), orDash(user.Nickname), orDash(user.BankCard))
	b.sendWithKeyboard(chatID, text, profileEditKeyboard())

	b.askNextProfileField(ctx, chatID)
}

func orDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}

// handleUserStep consumes the message when the session expects input.
func (b *Bot) handleUserStep(ctx context.Context, message *tgbotapi.Message, session *Session) bool {
	chatID := message.Chat.ID

	switch session.Step {
	case StepPhone:
		phone := message.Text
		if message.Contact != nil {
			phone = message.Contact.PhoneNumber
		}
		if strings.TrimSpace(phone) == "" {
			b.sendText(chatID, "Отправьте номер телефона текстом или контактом.")
			return true
		}
		if err := b.profile.SetPhoneNumber(chatID, phone); err != nil {
			b.sendText(chatID, "Не удалось сохранить номер, попробуйте ещё раз.")
			return true
		}
		if !b.askNextProfileField(ctx, chatID) {
			b.finishRegistration(ctx, chatID)
		}
		return true

	case StepNickname:
		if err := b.profile.SetNickname(chatID, message.Text); err != nil {
			b.sendText(chatID, "Не удалось сохранить никнейм, попробуйте ещё раз.")
			return true
		}
		if !b.askNextProfileField(ctx, chatID) {
			b.finishRegistration(ctx, chatID)
		}
		return true

	case StepCard:
		err := b.profile.SetBankCard(chatID, message.Text)
		if errors.Is(err, domain.ErrInvalidCardNumber) {
			b.sendText(chatID, "Номер карты не прошёл проверку. Введите 16 цифр без ошибок:")
			return true
		}
		if err != nil {
			b.sendText(chatID, "Не удалось сохранить карту, попробуйте ещё раз.")
			return true
		}
		if !b.askNextProfileField(ctx, chatID) {
			b.finishRegistration(ctx, chatID)
		}
		return true

	case StepOrderAmount:
		b.handleOrderAmount(ctx, chatID, message.Text, session)
		return true

	case StepOrderConfirm:
		b.sendText(chatID, "Подтвердите или отмените заявку кнопками выше.")
		return true

	case StepProofUpload:
		b.handleProofUpload(ctx, message, session)
		return true

	case StepOrderLookup:
		return b.handleOrderLookup(ctx, chatID, message.Text)
	}

	return false
}

// handleOrderLookup opens the user's order by the number they typed.
// Non-numeric text clears the step and falls back to menu routing, so a
// menu button press is never swallowed by the lookup prompt.
func (b *Bot) handleOrderLookup(ctx context.Context, chatID int64, text string) bool {
	orderID, ok := parseOrderRef(text)
	if !ok {
		b.sessions.Reset(ctx, chatID)
		return false
	}

	order, err := b.orders.GetOrderByID(orderID)
	if err != nil || order.UserID != chatID {
		b.sendText(chatID, "Заявка не найдена.")
		return true
	}

	b.sessions.Reset(ctx, chatID)
	switch order.Status {
	case domain.StatusPendingPayment:
		b.sendWithKeyboard(chatID, orderSummary(order), orderActionsKeyboard(order.ID))
	case domain.StatusAwaitingConfirmation:
		b.sendWithKeyboard(chatID, orderSummary(order), orderCancelKeyboard(order.ID))
	default:
		b.sendText(chatID, orderSummary(order))
	}
	return true
}

// parseOrderRef accepts an order number as typed, with or without the
// leading "№" the bot prints in summaries.
func parseOrderRef(text string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(text), "№"), 10, 64)
	return id, err == nil
}

func (b *Bot) finishRegistration(ctx context.Context, chatID int64) {
	b.sessions.Reset(ctx, chatID)
	b.sendWithKeyboard(chatID, "Профиль заполнен! Теперь можно создавать заявки.", mainKeyboard())
}

// handleOrderAmount stores the amount as typed, in the entry currency.
// Conversion to canonical USDT happens at creation, against the rate the
// order freezes.
func (b *Bot) handleOrderAmount(ctx context.Context, chatID int64, text string, session *Session) {
	value, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(text), ",", ".", 1))
	if err != nil || value.LessThanOrEqual(decimal.Zero) {
		b.sendText(chatID, "Введите сумму числом, например 150 или 99.5:")
		return
	}

	session.Amount = value.String()
	session.Step = StepOrderNetwork
	b.sessions.Save(ctx, chatID, session)
	b.sendWithKeyboard(chatID, "Выберите сеть, из которой отправите USDT:", networksKeyboard())
}

// currentRate fetches the rate and reports the failure to the user.
func (b *Bot) currentRate(ctx context.Context, chatID int64) (decimal.Decimal, error) {
	rate, err := b.settings.GetRate()
	if errors.Is(err, domain.ErrRateNotSet) {
		b.sessions.Reset(ctx, chatID)
		b.sendText(chatID, "Курс временно не установлен, попробуйте позже.")
		return decimal.Zero, err
	}
	if err != nil {
		b.sendText(chatID, "Что-то пошло не так, попробуйте позже.")
		return decimal.Zero, err
	}
	return rate, nil
}

func (b *Bot) sendOrderPreview(ctx context.Context, chatID int64, session *Session) {
	value, err := decimal.NewFromString(session.Amount)
	if err != nil {
		b.sessions.Reset(ctx, chatID)
		b.sendText(chatID, "Заявка устарела, начните заново.")
		return
	}
	rate, err := b.currentRate(ctx, chatID)
	if err != nil {
		return
	}

	session.Step = StepOrderConfirm
	b.sessions.Save(ctx, chatID, session)

	// estimate at the current rate; the binding figures come from the
	// rate the order freezes at creation
	usdt := value
	if session.EntryCurrency == entryUAH {
		usdt = value.DivRound(rate, 8)
	}

	preview := fmt.Sprintf(
		"Проверьте заявку:\n\nСумма: %s USDT\nСеть: %s\nКурс: %s\nВы получите: %s UAH",
		usdt.String(), session.Network, rate.String(), usdt.Mul(rate).StringFixed(2))
	b.sendWithKeyboard(chatID, preview, orderConfirmKeyboard())
}

func (b *Bot) handleUserCallback(ctx context.Context, chatID int64, action, arg string) {
	session := b.sessions.Load(ctx, chatID)

	switch action {
	case cbCurrency:
		if session.Step != StepOrderCurrency {
			return
		}
		if arg != entryUSDT && arg != entryUAH {
			return
		}
		session.EntryCurrency = arg
		session.Step = StepOrderAmount
		b.sessions.Save(ctx, chatID, session)
		if arg == entryUAH {
			b.sendText(chatID, "Введите сумму в гривне:")
		} else {
			b.sendText(chatID, "Введите сумму в USDT:")
		}

	case cbNetwork:
		if session.Step != StepOrderNetwork {
			return
		}
		if !isSupportedNetwork(arg) {
			b.sendText(chatID, "Эта сеть не поддерживается.")
			return
		}
		session.Network = arg
		b.sendOrderPreview(ctx, chatID, session)

	case cbOrderBack:
		b.handleOrderBack(ctx, chatID, arg, session)

	case cbEditProfile:
		b.handleProfileEdit(ctx, chatID, arg)

	case cbOrderConfirm:
		if session.Step != StepOrderConfirm {
			return
		}
		b.confirmOrder(ctx, chatID, session)

	case cbOrderAbort:
		b.sessions.Reset(ctx, chatID)
		b.sendWithKeyboard(chatID, "Заявка отменена.", mainKeyboard())

	case cbOrderPaid:
		orderID, err := parseCallbackID(arg)
		if err != nil {
			return
		}
		session.Step = StepProofUpload
		session.OrderID = orderID
		b.sessions.Save(ctx, chatID, session)
		b.sendText(chatID, "Пришлите скриншот перевода одним фото или файлом:")

	case cbOrderCancel:
		orderID, err := parseCallbackID(arg)
		if err != nil {
			return
		}
		b.cancelOwnOrder(ctx, chatID, orderID)

	case cbMyOrdersPage:
		page, err := strconv.Atoi(arg)
		if err != nil || page < 1 {
			return
		}
		b.sendUserOrdersPage(ctx, chatID, page)
	}
}

// handleOrderBack steps the order form one screen back.
func (b *Bot) handleOrderBack(ctx context.Context, chatID int64, target string, session *Session) {
	switch target {
	case "amount":
		if session.Step != StepOrderNetwork {
			return
		}
		session.Step = StepOrderAmount
		b.sessions.Save(ctx, chatID, session)
		if session.EntryCurrency == entryUAH {
			b.sendText(chatID, "Введите сумму в гривне:")
		} else {
			b.sendText(chatID, "Введите сумму в USDT:")
		}
	case "network":
		if session.Step != StepOrderConfirm {
			return
		}
		session.Step = StepOrderNetwork
		b.sessions.Save(ctx, chatID, session)
		b.sendWithKeyboard(chatID, "Выберите сеть, из которой отправите USDT:", networksKeyboard())
	}
}

func (b *Bot) handleProfileEdit(ctx context.Context, chatID int64, field string) {
	session := &Session{}
	switch field {
	case "phone":
		session.Step = StepPhone
		b.sendText(chatID, "Новый номер телефона:")
	case "nick":
		session.Step = StepNickname
		b.sendText(chatID, "Новый никнейм:")
	case "card":
		session.Step = StepCard
		b.sendText(chatID, "Новый номер карты (16 цифр):")
	default:
		return
	}
	b.sessions.Save(ctx, chatID, session)
}

func (b *Bot) confirmOrder(ctx context.Context, chatID int64, session *Session) {
	value, err := decimal.NewFromString(session.Amount)
	if err != nil {
		b.sessions.Reset(ctx, chatID)
		b.sendText(chatID, "Заявка устарела, начните заново.")
		return
	}

	out, err := b.orders.CreateOrder(&orderdto.CreateOrderInput{
		UserID:   chatID,
		Network:  session.Network,
		Currency: session.EntryCurrency,
		Value:    value,
	})
	if err != nil {
		b.sessions.Reset(ctx, chatID)
		b.sendText(chatID, orderErrorText(err))
		return
	}

	b.sessions.Reset(ctx, chatID)

	text := fmt.Sprintf(
		"Заявка №%d создана!\n\nПереведите %s USDT (%s) на кошелёк:\n\n%s\n\nПосле перевода нажмите «Я оплатил». Вы получите %s UAH на карту %s.",
		out.Order.ID,
		out.Order.Value.String(),
		out.Order.Network,
		out.Order.Wallet,
		out.AmountUAH.StringFixed(2),
		out.Order.BankCard,
	)
	b.sendWithKeyboard(chatID, text, orderActionsKeyboard(out.Order.ID))

	b.notifyAdminsNewOrder(&out.Order)
}

func (b *Bot) cancelOwnOrder(ctx context.Context, chatID, orderID int64) {
	order, err := b.orders.CancelOrder(orderID, chatID, domain.RoleUser)
	if err != nil {
		b.sendText(chatID, orderErrorText(err))
		return
	}
	b.sendText(chatID, fmt.Sprintf("Заявка №%d отменена.", order.ID))
}

func (b *Bot) handleProofUpload(ctx context.Context, message *tgbotapi.Message, session *Session) {
	chatID := message.Chat.ID

	fileID := proofFileID(message)
	if fileID == "" {
		b.sendText(chatID, "Нужен скриншот: отправьте фото или файл.")
		return
	}

	order, err := b.orders.SubmitPaymentProof(session.OrderID, chatID, fileID)
	if err != nil {
		b.sessions.Reset(ctx, chatID)
		b.sendText(chatID, orderErrorText(err))
		return
	}

	b.sessions.Reset(ctx, chatID)
	b.sendWithKeyboard(chatID, fmt.Sprintf("Заявка №%d передана на проверку. Ожидайте зачисления.", order.ID), mainKeyboard())

	b.notifyAdminsProof(order)
}

func proofFileID(message *tgbotapi.Message) string {
	if len(message.Photo) > 0 {
		// last entry is the largest resolution
		return message.Photo[len(message.Photo)-1].FileID
	}
	if message.Document != nil {
		return message.Document.FileID
	}
	return ""
}

func (b *Bot) sendUserOrdersPage(ctx context.Context, chatID int64, page int) {
	out, err := b.orders.ListUserOrders(chatID, &orderdto.ListOrdersInput{Page: page})
	if err != nil {
		b.sendText(chatID, "Что-то пошло не так, попробуйте позже.")
		return
	}
	if len(out.Orders) == 0 {
		b.sendText(chatID, "У вас пока нет заявок.")
		return
	}

	// a plain number in the next message opens that order
	b.sessions.Save(ctx, chatID, &Session{Step: StepOrderLookup})

	var sb strings.Builder
	sb.WriteString("Ваши заявки (номер сообщением — подробности):\n")
	for _, order := range out.Orders {
		sb.WriteString(fmt.Sprintf("\n№%d — %s USDT — %s\n%s\n",
			order.ID, order.Value.String(), order.CreatedAt.Format("02.01.2006 15:04"),
			statusLabel(order.Status)))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	if pager := pagerKeyboard(cbMyOrdersPage, out.Page, out.Pages); pager != nil {
		msg.ReplyMarkup = *pager
	}
	if _, err := b.api.Send(msg); err != nil {
		slog.Warn("failed to send orders page", "chat_id", chatID, "error", err.Error())
	}
}

func isSupportedNetwork(network string) bool {
	for _, n := range supportedNetworks {
		if n == network {
			return true
		}
	}
	return false
}

func orderErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrProfileIncomplete):
		return "Сначала заполните профиль."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Некорректная сумма."
	case errors.Is(err, domain.ErrNoWalletAvailable):
		return "Для этой сети сейчас нет свободных кошельков, попробуйте позже."
	case errors.Is(err, domain.ErrRateNotSet):
		return "Курс временно не установлен, попробуйте позже."
	case errors.Is(err, domain.ErrOrderNotModifiable):
		return "Статус заявки уже изменился, обновите список."
	case errors.Is(err, domain.ErrNotOwner), errors.Is(err, domain.ErrNotAuthorized):
		return "Это не ваша заявка."
	case errors.Is(err, domain.ErrOrderNotFound):
		return "Заявка не найдена."
	}
	return "Что-то пошло не так, попробуйте позже."
}
