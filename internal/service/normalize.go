package service

import "strings"

// NormalizeStreet приводит подпись локации к каноническому ключу улицы.
// Всё после первой запятой отбрасывается, затем для перекрёстков
// остаётся только часть до первого '&'. Регистр сохраняется.
func NormalizeStreet(raw string) string {
	key, _, _ := strings.Cut(raw, ",")
	key = strings.TrimSpace(key)
	if strings.Contains(key, "&") {
		key, _, _ = strings.Cut(key, "&")
		key = strings.TrimSpace(key)
	}
	return key
}
