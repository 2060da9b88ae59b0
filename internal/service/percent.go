package service

import "math"

// PercentOfTotal возвращает долю single в total в процентах, округлённую до 2 знаков.
// При total == 0 возвращает 0.
func PercentOfTotal(single, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(single) / float64(total) * 100
	return math.Round(p*100) / 100
}

// RemainderOf возвращает total - single, но не меньше нуля: пересекающиеся
// совпадения подстрок могут дать single > total.
func RemainderOf(single, total int) int {
	if single >= total {
		return 0
	}
	return total - single
}
