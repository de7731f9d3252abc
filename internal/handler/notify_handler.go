package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-order-bot/internal/models"
	"food-order-bot/internal/services"
)

// NotifyHandler — HTTP-вход для уведомлений: backend дёргает его
// на каждом переходе статуса заказа.
type NotifyHandler struct {
	notifier *services.NotifierService
}

func NewNotifyHandler(notifier *services.NotifierService) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

// Notify принимает JSON с полями запроса уведомления и возвращает
// структурный результат. Классифицированные сбои доставки — это не ошибка
// HTTP-запроса: ответ 200 с success=false.
func (h *NotifyHandler) Notify(c *gin.Context) {
	var req models.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.notifier.Notify(req)
	c.JSON(http.StatusOK, result)
}
