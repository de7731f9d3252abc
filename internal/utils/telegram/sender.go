package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Закрытый набор ошибок транспорта. Диспетчер уведомлений различает их
// через errors.Is, не заглядывая в типы telegram-bot-api.
var (
	ErrUserBlocked = errors.New("user blocked the bot")
	ErrBadRequest  = errors.New("bad request")
)

// Bot оборачивает Telegram Bot API: отправка сообщений с HTML-разметкой
// и канал входящих обновлений для long-poll цикла.
type Bot struct {
	api *tgbotapi.BotAPI
}

func NewBot(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api}, nil
}

func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// SendMessage отправляет текст с parse_mode=HTML и переводит ошибки API
// в закрытый набор: 403 — пользователь заблокировал бота, 400 — некорректный
// запрос, остальное отдаётся как есть.
func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		return classify(err)
	}
	return nil
}

// SendWithKeyboard — то же, но с reply- или inline-клавиатурой.
func (b *Bot) SendWithKeyboard(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	if _, err := b.api.Send(msg); err != nil {
		return classify(err)
	}
	return nil
}

func (b *Bot) Updates(timeout int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout
	return b.api.GetUpdatesChan(u)
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func classify(err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 403:
			return fmt.Errorf("%w: %s", ErrUserBlocked, apiErr.Message)
		case 400:
			return fmt.Errorf("%w: %s", ErrBadRequest, apiErr.Message)
		}
	}
	return err
}
