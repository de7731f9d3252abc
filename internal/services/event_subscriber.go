package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"food-order-bot/internal/models"
)

const OrderEventsChannel = "order_events"

// EventNotifier — диспетчер, которому подписчик передаёт события.
type EventNotifier interface {
	Notify(req models.NotificationRequest) models.NotificationResult
}

// EventSubscriber слушает события смены статуса заказа, которые backend
// публикует в Redis, и прогоняет каждое через диспетчер уведомлений.
type EventSubscriber struct {
	redis    *redis.Client
	notifier EventNotifier
}

func NewEventSubscriber(rdb *redis.Client, notifier EventNotifier) *EventSubscriber {
	return &EventSubscriber{redis: rdb, notifier: notifier}
}

// Start блокируется до отмены контекста.
func (s *EventSubscriber) Start(ctx context.Context) {
	pubsub := s.redis.Subscribe(ctx, OrderEventsChannel)
	defer pubsub.Close()

	log.Printf("Subscribed to Redis channel: %s", OrderEventsChannel)

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.HandleEvent(msg.Payload)
		case <-ctx.Done():
			log.Println("Stopping order events subscriber...")
			return
		}
	}
}

// HandleEvent обрабатывает одно событие. Битое сообщение логируется
// и пропускается — подписка не падает из-за одного события.
func (s *EventSubscriber) HandleEvent(payload string) {
	var req models.NotificationRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		log.Printf("Error unmarshaling order event: %v", err)
		return
	}
	result := s.notifier.Notify(req)
	if !result.Success {
		log.Printf("Order event for user %d not delivered: %s", req.TelegramUserID, result.Message)
	}
}
