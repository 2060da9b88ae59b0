package service

import (
	"strings"

	"github.com/shenikar/santiago_crash_dashboard/internal/models"
)

// CountStreet суммирует AccidentCount по всем записям, чья локация содержит
// ключ как подстроку без учёта регистра. Пустой ключ не совпадает ни с чем.
func CountStreet(records []models.AccidentRecord, key string) int {
	if key == "" {
		return 0
	}
	needle := strings.ToLower(key)

	total := 0
	for i := range records {
		if strings.Contains(strings.ToLower(records[i].Location), needle) {
			total += records[i].AccidentCount
		}
	}
	return total
}

// Aggregate считает суммарное число аварий по выбранным подписям.
// Подписи, сводящиеся к уже учтённому ключу, пропускаются, чтобы
// "Main St, A" и "Main St, B" не посчитали "Main St" дважды.
func Aggregate(records []models.AccidentRecord, selections []string) models.SelectionAggregate {
	result := models.SelectionAggregate{CanonicalKeys: make([]string, 0, len(selections))}
	seen := make(map[string]struct{}, len(selections))

	for _, label := range selections {
		key := NormalizeStreet(label)
		folded := strings.ToLower(key)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		result.CanonicalKeys = append(result.CanonicalKeys, key)
		result.TotalAccidents += CountStreet(records, key)
	}
	return result
}
