package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestFormatCurrencyAmountInt64(t *testing.T) {
	p := message.NewPrinter(language.English)

	tests := []struct {
		amount   int64
		currency string
		want     string
	}{
		{1550, "USD", "$15.50"},
		{5000, "AUD", "$50.00"},
		{99, "GBP", "£0.99"},
		{250000, "EUR", "€2,500.00"},
		{1205, "SEK", "12.05 SEK"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrencyAmountInt64(p, tt.amount, tt.currency))
	}
}
