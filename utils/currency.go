package utils

import (
	"fmt"
	"math"
)

// RoundPrice rounds a monetary value to cent precision. Prices are stored
// as decimal(10,2), so anything derived from them should come back out with
// two fractional digits as well.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatPrice formats a monetary value with two decimals, e.g. 3.5 -> "3.50".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%.2f", RoundPrice(amount))
}
