package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"food-order-bot/internal/models"
	"food-order-bot/internal/utils"
	"food-order-bot/internal/utils/telegram"
)

const defaultProductName = "Savatcha"

// MessageSender — транспорт доставки уведомлений. Реализуется
// utils/telegram.Bot, в тестах — моком.
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

type NotifierService struct {
	sender MessageSender
}

func NewNotifierService(sender MessageSender) *NotifierService {
	return &NotifierService{sender: sender}
}

// Notify отправляет пользователю уведомление о смене статуса заказа.
// Ровно одна попытка доставки на вызов; ретраи — забота вызывающего.
// Любой исход, включая panic ниже по стеку, превращается в структурный
// результат — наружу ничего не пробрасывается.
func (s *NotifierService) Notify(req models.NotificationRequest) (result models.NotificationResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while notifying user %d: %v", req.TelegramUserID, r)
			result = models.NotificationResult{Success: false, Message: fmt.Sprintf("Error: %v", r)}
		}
	}()

	status := models.OrderStatus(req.Status)
	text, err := ResolveTemplate(status, req.OrderType)
	if err != nil {
		log.Printf("Invalid status: %s", req.Status)
		return models.NotificationResult{
			Success: false,
			Message: fmt.Sprintf("Invalid status: %s", req.Status),
		}
	}

	productName := req.ProductName
	if productName == "" {
		productName = defaultProductName
	}

	message := strings.NewReplacer(
		"{order_id}", utils.FormatOrderID(req.OrderID),
		"{product_name}", productName,
	).Replace(text)

	if err := s.sender.SendMessage(req.TelegramUserID, message); err != nil {
		switch {
		case errors.Is(err, telegram.ErrUserBlocked):
			log.Printf("User %d blocked the bot", req.TelegramUserID)
			return models.NotificationResult{Success: false, Message: "User blocked the bot"}
		case errors.Is(err, telegram.ErrBadRequest):
			log.Printf("Bad request sending notification to %d: %v", req.TelegramUserID, err)
			return models.NotificationResult{Success: false, Message: fmt.Sprintf("Bad request: %v", err)}
		default:
			log.Printf("Error sending notification to %d: %v", req.TelegramUserID, err)
			return models.NotificationResult{Success: false, Message: fmt.Sprintf("Error: %v", err)}
		}
	}

	log.Printf("Notification sent to user %d for order %s with status %s",
		req.TelegramUserID, req.OrderID, req.Status)

	return models.NotificationResult{Success: true, Message: "Notification sent successfully"}
}
