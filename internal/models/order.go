package models

import (
	"time"
)

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "pending_payment"
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusReady          OrderStatus = "ready"
	StatusDelivering     OrderStatus = "delivering"
	StatusOnWay          OrderStatus = "on_way"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

type OrderType string

const (
	TypeDelivery OrderType = "delivery"
	TypeTakeaway OrderType = "takeaway"
	TypePreorder OrderType = "preorder"
)

// Order — запись заказа из backend-базы. Бот её только читает.
type Order struct {
	ID             string      `bson:"_id,omitempty" json:"id"`
	TelegramUserID int64       `bson:"telegram_user_id" json:"telegram_user_id"`
	ProductName    string      `bson:"product_name" json:"product_name"`
	Quantity       int         `bson:"quantity" json:"quantity"`
	TotalPrice     *float64    `bson:"total_price,omitempty" json:"total_price,omitempty"`
	Status         OrderStatus `bson:"status" json:"status"`
	OrderType      OrderType   `bson:"order_type,omitempty" json:"order_type,omitempty"`
	CreatedAt      time.Time   `bson:"created_at" json:"created_at"`
}
