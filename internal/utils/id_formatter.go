package utils

import "strings"

const displayIDLength = 6

// FormatOrderID укорачивает внутренний идентификатор заказа до короткого
// отображаемого токена. Чистая функция: одинаковый вход — одинаковый выход.
func FormatOrderID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "unknown"
	}
	runes := []rune(raw)
	if len(runes) <= displayIDLength {
		return string(runes)
	}
	return string(runes[:displayIDLength])
}
