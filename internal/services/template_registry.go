package services

import (
	"errors"
	"fmt"

	"food-order-bot/internal/models"
)

var ErrTemplateNotFound = errors.New("template not found")

// messageTemplate — либо один текст на статус (Flat), либо набор текстов
// по способу получения заказа (ByChannel). Никогда не оба сразу.
type messageTemplate struct {
	Flat      string
	ByChannel map[models.OrderType]string
}

// Статические шаблоны уведомлений. Плейсхолдеры — только {order_id}
// и {product_name}. Таблица неизменяема после старта процесса.
var messageTemplates = map[models.OrderStatus]messageTemplate{
	models.StatusConfirmed: {
		Flat: "✨ <b>Yangi buyurtma qabul qilindi!</b>\n\n" +
			"🆔 <b>Buyurtma:</b> <code>{order_id}</code>\n" +
			"🍔 <b>Mahsulot:</b> {product_name}\n" +
			"⏳ <b>Holat:</b> Tasdiqlandi\n\n" +
			"<i>Tez orada taomingizni tayyorlashni boshlaymiz!</i>",
	},
	models.StatusReady: {
		ByChannel: map[models.OrderType]string{
			models.TypeDelivery: "🍳 <b>Buyurtmangiz tayyor bo'ldi!</b>\n\n" +
				"🆔 <b>Buyurtma:</b> <code>{order_id}</code>\n" +
				"🍔 <b>Mahsulot:</b> {product_name}\n" +
				"🏃‍♂️ <b>Holat:</b> Dastavkaga berildi\n\n" +
				"<i>Dastavkachi hozir yo'lga chiqadi.</i>",
			models.TypeTakeaway: "🍳 <b>Buyurtmangiz tayyor bo'ldi!</b>\n\n" +
				"🆔 <b>Buyurtma:</b> <code>{order_id}</code>\n" +
				"🍔 <b>Mahsulot:</b> {product_name}\n" +
				"🛍️ <b>Holat:</b> Tayyor\n\n" +
				"<i>Kelib olib ketishingiz mumkin!</i>",
			models.TypePreorder: "🍳 <b>Broningiz tayyor!</b>\n\n" +
				"🆔 <b>ID:</b> <code>{order_id}</code>\n" +
				"🍔 <b>Mahsulot:</b> {product_name}\n" +
				"📅 <b>Holat:</b> Stolingiz tayyor\n\n" +
				"<i>Sizni kutmoqdamiz!</i>",
		},
	},
	models.StatusDelivering: {
		Flat: "🚚 <b>Buyurtmangiz yo'lda!</b>\n\n" +
			"🆔 <b>Buyurtma:</b> <code>{order_id}</code>\n" +
			"🍔 <b>Mahsulot:</b> {product_name}\n" +
			"📍 <b>Holat:</b> Yetkazilmoqda\n\n" +
			"<i>Iltimos, kuting, dastavkachi yaqin orada yetib boradi.</i>",
	},
	models.StatusDelivered: {
		ByChannel: map[models.OrderType]string{
			models.TypeDelivery: "✅ <b>Tabriklaymiz! Buyurtma yetkazildi!</b>\n\n" +
				"🆔 <b>Buyurtma:</b> <code>{order_id}</code>\n" +
				"🍔 <b>Mahsulot:</b> {product_name}\n" +
				"🏁 <b>Holat:</b> Yakunlandi\n\n" +
				"<b>Yoqimli ishtaha! 🍽️</b>\n" +
				"<i>Bizni tanlaganingiz uchun rahmat!</i>",
			models.TypeTakeaway: "✅ <b>Tabriklaymiz! Buyurtma olib ketildi!</b>\n\n" +
				"🆔 <b>Buyurtma:</b> <code>{order_id}</code>\n" +
				"🍔 <b>Mahsulot:</b> {product_name}\n" +
				"🏁 <b>Holat:</b> Yakunlandi\n\n" +
				"<b>Yoqimli ishtaha! 🍽️</b>\n" +
				"<i>Bizni tanlaganingiz uchun rahmat!</i>",
			models.TypePreorder: "✅ <b>Tabriklaymiz! Tashrifingiz yakunlandi!</b>\n\n" +
				"🆔 <b>ID:</b> <code>{order_id}</code>\n" +
				"🏁 <b>Holat:</b> Yakunlandi\n\n" +
				"<i>Tashrifingiz uchun rahmat! Yana kutib qolamiz! 🍽️</i>",
		},
	},
}

// ResolveTemplate возвращает текст шаблона для статуса и способа получения.
// Неизвестный статус — ошибка, сообщение не отправляется. Неизвестный или
// пустой способ получения откатывается на delivery.
func ResolveTemplate(status models.OrderStatus, orderType models.OrderType) (string, error) {
	tmpl, ok := messageTemplates[status]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, status)
	}
	if tmpl.ByChannel == nil {
		return tmpl.Flat, nil
	}
	if text, ok := tmpl.ByChannel[orderType]; ok {
		return text, nil
	}
	return tmpl.ByChannel[models.TypeDelivery], nil
}

// KnownNotificationStatus сообщает, входит ли статус в набор уведомляемых.
func KnownNotificationStatus(status models.OrderStatus) bool {
	_, ok := messageTemplates[status]
	return ok
}
