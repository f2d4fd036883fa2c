package display

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go-currency-converter"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    converter.Amount
		wantErr bool
	}{
		{"integer", "100", 100, false},
		{"fraction", "1234.5", 1234.5, false},
		{"negative", "-42.25", -42.25, false},
		{"explicit plus", "+7", 7, false},
		{"zero", "0", 0, false},
		{"leading dot", ".5", 0.5, false},
		{"exponent", "1.5e3", 1500, false},
		{"surrounding whitespace", "  15500 \n", 15500, false},
		{"letters", "abc", 0, true},
		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"grouping separator", "1,000", 0, true},
		{"trailing garbage", "12abc", 0, true},
		{"two dots", "1.2.3", 0, true},
		{"not a number", "NaN", 0, true},
		{"infinity", "Infinity", 0, true},
		{"overflow", "1e400", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.text)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidAmount), "error = %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount converter.Amount
		want   string
	}{
		{1234.5, "1,234.50"},
		{1550000, "1,550,000.00"},
		{1, "1.00"},
		{0, "0.00"},
		{0.5, "0.50"},
		{999.999, "1,000.00"},
		{0.125, "0.12"},
		{0.135, "0.14"},
		{2.675, "2.67"},
		{0.015, "0.01"},
		{1.115, "1.11"},
		{123456789012.345, "123,456,789,012.35"},
		{-1234.5, "-1,234.50"},
		{-0.001, "-0.00"},
		{converter.Amount(math.Copysign(0, -1)), "0.00"},
		{0.78 / 0.92, "0.85"},
		{1234567890.123, "1,234,567,890.12"},
		{converter.Amount(math.Inf(1)), "∞"},
		{converter.Amount(math.Inf(-1)), "-∞"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "1,550,000.00 IDR", FormatResult(1550000, converter.IDR))
	assert.Equal(t, "1.00 USD", FormatResult(1, converter.USD))
}
