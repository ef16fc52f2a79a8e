package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+500,00", "500.00"},
		{"-1234,56", "-1234.56"},
		{"1234,56", "1234.56"},
		{"123.45", "123.45"},
		{"-123.45", "-123.45"},
		{"– 1 000,00", "-1000.00"},
		{"−42,00", "-42.00"},
		{"1 234,56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"0.00", "0"},
		{"+0,00", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestParseAmountInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "12,34,56", "12.34.56"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(in)
			assert.Error(t, err)
		})
	}
}
