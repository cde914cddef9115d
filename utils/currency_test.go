package utils

import (
	"testing"

	"rentkiosk/models"
)

func TestFormatCurrencyUnit(t *testing.T) {
	tests := []struct {
		unit string
		want string
	}{
		{"EUR", "€"},
		{"USD", "$"},
		{"GBP", "GBP"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatCurrencyUnit(tt.unit); got != tt.want {
			t.Errorf("FormatCurrencyUnit(%q) = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestFormatDealPrice(t *testing.T) {
	got := FormatDealPrice(models.Money{Amount: 42.5, Currency: "EUR", Prefix: "from ", Suffix: "/day"})
	if got != "from 42.50€/day" {
		t.Errorf("FormatDealPrice = %q, want %q", got, "from 42.50€/day")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(12, "USD", "/day"); got != "$12.00/day" {
		t.Errorf("FormatPrice = %q, want $12.00/day", got)
	}
	if got := FormatPrice(9.9, "", ""); got != "9.90" {
		t.Errorf("FormatPrice = %q, want 9.90", got)
	}
}
