package handler

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"food-order-bot/internal/config"
	"food-order-bot/internal/models"
	"food-order-bot/internal/repository"
	"food-order-bot/internal/services"
)

// mockReplySender считает ответы — каждый хэндлер должен отвечать ровно раз.
type mockReplySender struct {
	texts   []string
	markups []interface{}
}

func (m *mockReplySender) SendMessage(chatID int64, text string) error {
	m.texts = append(m.texts, text)
	m.markups = append(m.markups, nil)
	return nil
}

func (m *mockReplySender) SendWithKeyboard(chatID int64, text string, markup interface{}) error {
	m.texts = append(m.texts, text)
	m.markups = append(m.markups, markup)
	return nil
}

type emptyOrderRepo struct{}

func (emptyOrderRepo) GetRecentByUser(ctx context.Context, telegramUserID int64, limit int64) ([]models.Order, error) {
	return nil, nil
}

var _ repository.OrderRepository = emptyOrderRepo{}

func testConfig() *config.Config {
	return &config.Config{
		WebsiteURL: "https://food.example",
		AdminPhone: "+998 90 123 45 67",
		AdminUser:  "@ajabo_admin",
	}
}

func incoming(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 100},
		From: &tgbotapi.User{ID: 100, FirstName: "Aziz"},
	}
}

func newTestBotHandler(sender ReplySender) *BotHandler {
	history := services.NewOrderHistoryService(emptyOrderRepo{})
	return NewBotHandler(sender, history, testConfig())
}

func TestHandleStart(t *testing.T) {
	sender := &mockReplySender{}
	h := newTestBotHandler(sender)

	h.HandleMessage(context.Background(), incoming("/start"))

	assert.Len(t, sender.texts, 1)
	assert.Contains(t, sender.texts[0], "Aziz")
	assert.IsType(t, tgbotapi.ReplyKeyboardMarkup{}, sender.markups[0])
}

func TestHandleOrderButton(t *testing.T) {
	sender := &mockReplySender{}
	h := newTestBotHandler(sender)

	h.HandleMessage(context.Background(), incoming(orderButton))

	assert.Len(t, sender.texts, 1)

	markup, ok := sender.markups[0].(tgbotapi.InlineKeyboardMarkup)
	assert.True(t, ok)
	button := markup.InlineKeyboard[0][0]
	assert.NotNil(t, button.URL)
	assert.Equal(t, "https://food.example?telegram_user_id=100", *button.URL)
}

func TestHandleHistoryButtonEmpty(t *testing.T) {
	sender := &mockReplySender{}
	h := newTestBotHandler(sender)

	h.HandleMessage(context.Background(), incoming(historyButton))

	assert.Len(t, sender.texts, 1)
	assert.Contains(t, sender.texts[0], "buyurtmalar yo'q")
}

func TestHandleContactButton(t *testing.T) {
	sender := &mockReplySender{}
	h := newTestBotHandler(sender)

	h.HandleMessage(context.Background(), incoming(contactButton))

	assert.Len(t, sender.texts, 1)
	assert.Contains(t, sender.texts[0], "+998 90 123 45 67")
	assert.Contains(t, sender.texts[0], "@ajabo_admin")
}

func TestHandleUnknownTextFallsBackToWelcome(t *testing.T) {
	sender := &mockReplySender{}
	h := newTestBotHandler(sender)

	h.HandleMessage(context.Background(), incoming("hello?"))

	assert.Len(t, sender.texts, 1)
	assert.Contains(t, sender.texts[0], "xush kelibsiz")
}
