package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		symbol string
		locale string
		amount int64
		want   string
	}{
		{symbol: "N", locale: "en", amount: 0, want: "N0"},
		{symbol: "N", locale: "en", amount: 500, want: "N500"},
		{symbol: "N", locale: "en", amount: 1200, want: "N1,200"},
		{symbol: "N", locale: "en", amount: 1234567, want: "N1,234,567"},
		{symbol: "$", locale: "not a locale", amount: 2200, want: "$2,200"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.symbol, tt.locale, tt.amount))
		})
	}
}
