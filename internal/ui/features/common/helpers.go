package common

import (
	"fmt"
	"strconv"
)

// Itoa converts an integer to a string for use inside view components.
func Itoa(n int) string {
	return strconv.Itoa(n)
}

// FormatAvg renders a batting average in the conventional three-decimal form.
func FormatAvg(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 3, 64)
}

// FormatERA renders an ERA or WHIP with two decimals.
func FormatERA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatIP renders innings pitched with one decimal.
func FormatIP(ip float64) string {
	return strconv.FormatFloat(ip, 'f', 1, 64)
}

// FormatPrice renders an auction price as whole dollars.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.0f", price)
}
