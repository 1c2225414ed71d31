package common

import (
	"golang.org/x/text/message"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"AUD": "$",
	"CAD": "$",
	"NZD": "$",
	"GBP": "£",
	"EUR": "€",
}

// GetCurrencySymbol returns the symbol for the given ISO currency code.
func GetCurrencySymbol(currency string) (string, bool) {
	symbol, ok := currencySymbols[currency]
	return symbol, ok
}

// FormatCurrencyAmountInt64 formats a minor-units amount with currency where (1550, USD) => $15.50
func FormatCurrencyAmountInt64(p *message.Printer, amount int64, currency string) string {
	symbol, ok := GetCurrencySymbol(currency)
	if !ok {
		return p.Sprintf("%d.%02d %s", amount/100, amount%100, currency)
	}

	return p.Sprintf("%s%d.%02d", symbol, amount/100, amount%100)
}
