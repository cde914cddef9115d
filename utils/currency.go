package utils

import (
	"fmt"

	"rentkiosk/models"
)

// FormatCurrencyUnit maps a currency token to its display symbol, falling
// back to the raw token.
func FormatCurrencyUnit(unit string) string {
	switch unit {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	default:
		return unit
	}
}

// FormatDealPrice renders a deal price with its prefix and suffix
// decorations, e.g. "from 42.00€/day".
func FormatDealPrice(m models.Money) string {
	return fmt.Sprintf("%s%.2f%s%s", m.Prefix, m.Amount, FormatCurrencyUnit(m.Currency), m.Suffix)
}

// FormatPrice renders an addon or protection price. The amount is already
// in whole currency units.
func FormatPrice(amount float64, currency, suffix string) string {
	symbol := ""
	if currency != "" {
		symbol = FormatCurrencyUnit(currency)
	}
	return fmt.Sprintf("%s%.2f%s", symbol, amount, suffix)
}
