package models

// NotificationRequest — запрос на уведомление о смене статуса заказа.
// Формируется внешним вызовом (webhook или событие из Redis) на каждый
// переход статуса и обрабатывается ровно один раз.
type NotificationRequest struct {
	TelegramUserID int64     `json:"telegram_user_id" binding:"required"`
	OrderID        string    `json:"order_id" binding:"required"`
	Status         string    `json:"status" binding:"required"`
	ProductName    string    `json:"product_name,omitempty"`
	OrderType      OrderType `json:"order_type,omitempty"`
}

type NotificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
