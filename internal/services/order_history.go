package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"food-order-bot/internal/models"
	"food-order-bot/internal/repository"
	"food-order-bot/internal/utils"
)

const historyLimit = 5

const (
	noOrdersMessage = "Sizda hali buyurtmalar yo'q. 🍔\n" +
		"Buyurtma berish uchun 'Buyurtma berish' tugmasini bosing."
	historyErrorMessage = "Xatolik yuz berdi. Iltimos keyinroq qayta urinib ko'ring."
)

// Подписи для полного набора статусов истории. Шире набора уведомлений:
// история показывает и платёжные/отменённые состояния.
var statusLabels = map[models.OrderStatus]string{
	models.StatusPendingPayment: "💳 To'lov kutilmoqda",
	models.StatusPending:        "⏳ Qabul qilindi",
	models.StatusConfirmed:      "🍳 Tayyorlanmoqda",
	models.StatusReady:          "🥡 Tayyor",
	models.StatusDelivering:     "🚚 Yo'lda",
	models.StatusOnWay:          "🚚 Yo'lda",
	models.StatusDelivered:      "✅ Yetkazildi",
	models.StatusCancelled:      "❌ Bekor qilindi",
}

type OrderHistoryService struct {
	repo repository.OrderRepository
}

func NewOrderHistoryService(repo repository.OrderRepository) *OrderHistoryService {
	return &OrderHistoryService{repo: repo}
}

// RecentOrdersText возвращает готовый текст с последними заказами
// пользователя. Ошибка backend-запроса не выходит наружу: пользователь
// видит общее сообщение, детали уходят в лог.
func (s *OrderHistoryService) RecentOrdersText(ctx context.Context, telegramUserID int64) string {
	orders, err := s.repo.GetRecentByUser(ctx, telegramUserID, historyLimit)
	if err != nil {
		log.Printf("Error fetching orders for user %d: %v", telegramUserID, err)
		return historyErrorMessage
	}

	if len(orders) == 0 {
		return noOrdersMessage
	}

	var b strings.Builder
	b.WriteString("📝 <b>Oxirgi buyurtmalaringiz:</b>\n\n")

	for _, order := range orders {
		label, ok := statusLabels[order.Status]
		if !ok {
			// Незнакомый статус показываем как есть, а не падаем.
			label = string(order.Status)
		}

		b.WriteString(fmt.Sprintf("🆔 <b>Buyurtma #%s</b>\n", utils.FormatOrderID(order.ID)))
		b.WriteString(fmt.Sprintf("🍟 Mahsulot: %s (x%d)\n", order.ProductName, order.Quantity))
		b.WriteString(fmt.Sprintf("💰 Narxi: %s so'm\n", formatPrice(order.TotalPrice)))
		b.WriteString(fmt.Sprintf("📊 Holati: %s\n", label))
		b.WriteString(fmt.Sprintf("📅 Sana: %s\n", order.CreatedAt.Format("2006-01-02 15:04")))
		b.WriteString("------------------\n\n")
	}

	return b.String()
}

// formatPrice группирует тысячи пробелами: 125000 -> "125 000".
// nil-цена выводится нулём.
func formatPrice(price *float64) string {
	if price == nil {
		return "0"
	}
	digits := strconv.FormatInt(int64(*price), 10)

	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	out := strings.Join(parts, " ")
	if neg {
		out = "-" + out
	}
	return out
}
