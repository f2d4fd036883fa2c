package exchange

import (
	"context"
	"errors"
	"fmt"

	"go-currency-converter"
	"go-currency-converter/rates"
)

// ErrUnsupportedCurrency a currency outside the rate table was requested
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Service interface for converting from one currency to another
type Service interface {
	Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (converter.Exchanged, error)
	Rates(ctx context.Context) ([]converter.Quote, error)
}

// service converts using a rates.ConversionTable
type service struct {
	// table to convert amounts through the pivot currency
	table *rates.ConversionTable

	// strict rejects currencies the table does not know instead of
	// treating them as pivot-equivalent
	strict bool
}

// NewService constructs a valid Service. With strict unset, unknown currencies
// fall back to the pivot rate.
func NewService(table *rates.ConversionTable, strict bool) Service {
	return &service{
		table:  table,
		strict: strict,
	}
}

// Convert computes a conversion from one currency to another with the table's rates.
func (s *service) Convert(_ context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (converter.Exchanged, error) {
	if s.strict {
		if !s.table.Supports(from) {
			return converter.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, ErrUnsupportedCurrency)
		}
		if !s.table.Supports(to) {
			return converter.Exchanged{}, fmt.Errorf("convert to [%v]: %w", to, ErrUnsupportedCurrency)
		}
	}
	return s.table.Exchange(amount, from, to), nil
}

// Rates lists the rates the service converts with.
func (s *service) Rates(_ context.Context) ([]converter.Quote, error) {
	return s.table.Quotes(), nil
}
