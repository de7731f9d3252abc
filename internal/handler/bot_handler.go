package handler

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"food-order-bot/internal/config"
	"food-order-bot/internal/services"
)

// ReplySender — часть телеграм-транспорта, нужная обработчикам сообщений.
type ReplySender interface {
	SendMessage(chatID int64, text string) error
	SendWithKeyboard(chatID int64, text string, markup interface{}) error
}

// BotHandler маршрутизирует входящие команды и нажатия кнопок.
// Обработчики stateless: одно входящее сообщение — ровно один ответ.
type BotHandler struct {
	sender  ReplySender
	history *services.OrderHistoryService
	cfg     *config.Config
}

func NewBotHandler(sender ReplySender, history *services.OrderHistoryService, cfg *config.Config) *BotHandler {
	return &BotHandler{sender: sender, history: history, cfg: cfg}
}

// Run крутит long-poll цикл до отмены контекста.
func (h *BotHandler) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			h.HandleMessage(ctx, update.Message)
		case <-ctx.Done():
			log.Println("Stopping bot update loop...")
			return
		}
	}
}

func (h *BotHandler) HandleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	var err error
	switch message.Text {
	case "/start":
		log.Printf("User %d started the bot", chatID)
		err = h.sender.SendWithKeyboard(chatID, welcomeText(firstName(message)), mainMenuKeyboard())
	case orderButton:
		log.Printf("User %d clicked order button", chatID)
		text := "🍔 <b>Buyurtma berish</b>\n\n" +
			"Pastdagi tugmani bosing va taomlarimizni ko'ring!"
		err = h.sender.SendWithKeyboard(chatID, text, webAppKeyboard(h.cfg.WebsiteURL, chatID))
	case historyButton:
		log.Printf("User %d requested order history", chatID)
		err = h.sender.SendMessage(chatID, h.history.RecentOrdersText(ctx, chatID))
	case contactButton:
		err = h.sender.SendMessage(chatID, h.contactText())
	default:
		err = h.sender.SendWithKeyboard(chatID, welcomeText(firstName(message)), mainMenuKeyboard())
	}

	if err != nil {
		log.Printf("Error replying to chat %d: %v", chatID, err)
	}
}

func (h *BotHandler) contactText() string {
	return fmt.Sprintf("📞 <b>Adminga bog'lanish</b>\n\n"+
		"Savollaringiz yoki takliflaringiz bo'lsa, quyidagi raqamga qo'ng'iroq qiling yoki yozing:\n\n"+
		"☎️ Telefon: %s\n"+
		"💬 Telegram: %s\n\n"+
		"Ish vaqti: 09:00 - 23:00", h.cfg.AdminPhone, h.cfg.AdminUser)
}

func welcomeText(name string) string {
	return fmt.Sprintf("👋 <b>Assalomu alaykum, %s!</b>\n\n"+
		"Bizning yetkazib berish botimizga xush kelibsiz! 🍔\n\n"+
		"Buyurtma berish uchun quyidagi tugmani bosing:", name)
}

func firstName(message *tgbotapi.Message) string {
	if message.From != nil && message.From.FirstName != "" {
		return message.From.FirstName
	}
	return "Foydalanuvchi"
}
