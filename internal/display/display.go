// Package display turns calculation results into the strings shown to users.
package display

import "fmt"

// DefaultCurrency is the unit printed after loss amounts.
const DefaultCurrency = "грн"

// Percent renders a ratio as a percentage with one decimal, e.g. 0.95 -> "95.0%".
func Percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// Currency renders an amount with two decimals followed by the unit.
func Currency(amount float64, unit string) string {
	if unit == "" {
		unit = DefaultCurrency
	}
	return fmt.Sprintf("%.2f %s", amount, unit)
}
