package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Reply keyboard labels double as routing keys in the message handler.
const (
	btnSellUSDT = "💱 Продать USDT"
	btnMyOrders = "📦 Мои заявки"
	btnProfile  = "👤 Профиль"
	btnSupport  = "🆘 Поддержка"

	btnAdmOrders  = "📊 Заявки"
	btnAdmRate    = "💵 Курс"
	btnAdmWallets = "👛 Кошельки"
	btnAdmMailing = "📨 Рассылка"
	btnAdmSupport = "🛟 Контакт поддержки"
	btnAdmUser    = "👥 Пользователь"

	btnWalletAdd    = "➕ Добавить кошелёк"
	btnWalletDelete = "➖ Удалить кошелёк"
	btnBack         = "⬅️ Назад"
)

var supportedNetworks = []string{"TRC20", "ERC20", "BEP20"}

// Currencies the order amount may be entered in. The stored value is
// always canonical USDT.
const (
	entryUSDT = "USDT"
	entryUAH  = "UAH"
)

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSellUSDT),
			tgbotapi.NewKeyboardButton(btnMyOrders),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnProfile),
			tgbotapi.NewKeyboardButton(btnSupport),
		),
	)
}

func adminKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAdmOrders),
			tgbotapi.NewKeyboardButton(btnAdmRate),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAdmWallets),
			tgbotapi.NewKeyboardButton(btnAdmMailing),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAdmUser),
			tgbotapi.NewKeyboardButton(btnAdmSupport),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBack),
		),
	)
}

func walletsKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnWalletAdd),
			tgbotapi.NewKeyboardButton(btnWalletDelete),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnBack),
		),
	)
}

func currencyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("в USDT", callbackData(cbCurrency, entryUSDT)),
			tgbotapi.NewInlineKeyboardButtonData("в гривне", callbackData(cbCurrency, entryUAH)),
		),
	)
}

func networksKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(supportedNetworks))
	for _, network := range supportedNetworks {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(network, callbackData(cbNetwork, network)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnBack, callbackData(cbOrderBack, "amount")),
		),
	)
}

func orderConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Подтвердить", callbackData(cbOrderConfirm, "1")),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", callbackData(cbOrderAbort, "1")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnBack, callbackData(cbOrderBack, "network")),
		),
	)
}

func profileEditKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📱 Телефон", callbackData(cbEditProfile, "phone")),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Никнейм", callbackData(cbEditProfile, "nick")),
			tgbotapi.NewInlineKeyboardButtonData("💳 Карта", callbackData(cbEditProfile, "card")),
		),
	)
}

func adminConfirmKeyboard(action string, orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Да", callbackID(action, orderID)),
			tgbotapi.NewInlineKeyboardButtonData("↩️ Нет", callbackData(cbAdmDismiss, "1")),
		),
	)
}

func mailingConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚀 Отправить", callbackData(cbMailGo, "1")),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", callbackData(cbMailAbort, "1")),
		),
	)
}

func orderActionsKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Я оплатил", callbackID(cbOrderPaid, orderID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", callbackID(cbOrderCancel, orderID)),
		),
	)
}

// orderCancelKeyboard is shown once payment proof is in: the user can
// still back out, but "paid" no longer applies.
func orderCancelKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", callbackID(cbOrderCancel, orderID)),
		),
	)
}

func adminOrderKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Завершить", callbackID(cbAdmComplete, orderID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", callbackID(cbAdmCancel, orderID)),
		),
	)
}

func pagerKeyboard(action string, page, pages int) *tgbotapi.InlineKeyboardMarkup {
	if pages <= 1 {
		return nil
	}
	row := []tgbotapi.InlineKeyboardButton{}
	if page > 1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️", callbackID(action, int64(page-1))))
	}
	row = append(row, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("%d/%d", page, pages), callbackID(action, int64(page))))
	if page < pages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("➡️", callbackID(action, int64(page+1))))
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(row)
	return &markup
}
