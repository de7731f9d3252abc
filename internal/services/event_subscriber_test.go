package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"food-order-bot/internal/models"
)

// mockEventNotifier записывает переданные подписчиком запросы.
type mockEventNotifier struct {
	requests []models.NotificationRequest
}

func (m *mockEventNotifier) Notify(req models.NotificationRequest) models.NotificationResult {
	m.requests = append(m.requests, req)
	if !KnownNotificationStatus(models.OrderStatus(req.Status)) {
		return models.NotificationResult{Success: false, Message: "Invalid status: " + req.Status}
	}
	return models.NotificationResult{Success: true, Message: "Notification sent successfully"}
}

func TestHandleEventDispatchesRequest(t *testing.T) {
	notifier := &mockEventNotifier{}
	sub := NewEventSubscriber(nil, notifier)

	sub.HandleEvent(`{"telegram_user_id":12345,"order_id":"order-abc123def456","status":"confirmed","product_name":"Burger"}`)

	assert.Len(t, notifier.requests, 1)
	req := notifier.requests[0]
	assert.Equal(t, int64(12345), req.TelegramUserID)
	assert.Equal(t, "order-abc123def456", req.OrderID)
	assert.Equal(t, "confirmed", req.Status)
	assert.Equal(t, "Burger", req.ProductName)
}

func TestHandleEventMalformedPayload(t *testing.T) {
	notifier := &mockEventNotifier{}
	sub := NewEventSubscriber(nil, notifier)

	// Битое событие пропускается: диспетчер не вызывается, паники нет.
	assert.NotPanics(t, func() {
		sub.HandleEvent(`{not json`)
		sub.HandleEvent(``)
		sub.HandleEvent(`{"telegram_user_id":"not-a-number"}`)
	})
	assert.Empty(t, notifier.requests)
}

func TestHandleEventUndeliveredResultDoesNotStopSubscriber(t *testing.T) {
	notifier := &mockEventNotifier{}
	sub := NewEventSubscriber(nil, notifier)

	sub.HandleEvent(`{"telegram_user_id":1,"order_id":"a1","status":"shipped"}`)
	sub.HandleEvent(`{"telegram_user_id":2,"order_id":"a2","status":"confirmed"}`)

	// Оба события дошли до диспетчера независимо от исхода первого.
	assert.Len(t, notifier.requests, 2)
}
