// Package display turns user text into amounts and conversion results into
// the text shown back to the user.
package display

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-currency-converter"
)

// InvalidInput is shown in place of a result when the amount cannot be parsed.
const InvalidInput = "Invalid input"

// ErrInvalidAmount the amount text is not a number
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses free text into an amount. Surrounding whitespace is
// ignored. Empty text, grouping separators and anything that is not a plain
// decimal literal yield ErrInvalidAmount.
func ParseAmount(text string) (converter.Amount, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	return converter.Amount(f), nil
}

// FormatAmount renders amount with thousands grouping and exactly two
// fractional digits: 1234.5 becomes "1,234.50". Rounding is half to even on
// the exact binary value, so 2.675 becomes "2.67". A negative amount keeps
// its sign even when it rounds to zero.
func FormatAmount(amount converter.Amount) string {
	p := message.NewPrinter(language.English)
	f := float64(amount)
	if math.IsNaN(f) {
		return p.Sprintf("%.2f", f)
	}
	text := p.Sprintf("%.2f", math.Abs(f))
	if f < 0 {
		return "-" + text
	}
	return text
}

// FormatResult renders amount followed by its currency code.
func FormatResult(amount converter.Amount, currency converter.Currency) string {
	return FormatAmount(amount) + " " + string(currency)
}
