package handler

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	orderButton   = "🍔 Buyurtma berish"
	historyButton = "📝 Mening buyurtmalarim"
	contactButton = "📞 Adminga bog'lanish"
)

// Статические клавиатуры без логики.

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(orderButton),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(historyButton),
			tgbotapi.NewKeyboardButton(contactButton),
		),
	)
	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false
	keyboard.InputFieldPlaceholder = "Buyurtma berish uchun tugmani bosing"
	return keyboard
}

// webAppKeyboard ведёт на сайт заказов, пробрасывая telegram_user_id
// параметром URL — сайт привязывает корзину к пользователю по нему.
func webAppKeyboard(websiteURL string, telegramUserID int64) tgbotapi.InlineKeyboardMarkup {
	webappURL := fmt.Sprintf("%s?telegram_user_id=%d", websiteURL, telegramUserID)

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(orderButton, webappURL),
		),
	)
}
