package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	if !IsFinite(value) {
		return value
	}
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// FormatAmount форматирует денежную сумму с двумя знаками после запятой
func FormatAmount(value float64) string {
	if !IsFinite(value) {
		return "NaN"
	}
	return decimal.NewFromFloat(value).StringFixed(2)
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
