package rates

import (
	"fmt"
	"math"

	"go-currency-converter"
)

// Source supplies exchange rates against the pivot currency.
// Implementations must be safe for concurrent reads.
type Source interface {
	// Lookup returns the rate for currency and whether the source knows it.
	Lookup(currency converter.Currency) (converter.Rate, bool)

	// Quotes lists every known rate in presentation order.
	Quotes() []converter.Quote
}

// Table an immutable Source backed by a fixed set of quotes
type Table struct {
	// rates maps a currency code to units per pivot unit
	rates converter.Rates

	// order of currencies as declared
	order []converter.Currency
}

// Fixed the compile-time rate table
var Fixed = mustTable(
	converter.Quote{Currency: converter.USD, Rate: 1.0},
	converter.Quote{Currency: converter.IDR, Rate: 15500.0},
	converter.Quote{Currency: converter.EUR, Rate: 0.92},
	converter.Quote{Currency: converter.GBP, Rate: 0.78},
)

// NewTable constructs a valid Table. Every rate must be positive and finite
// and every currency may appear only once.
func NewTable(quotes ...converter.Quote) (*Table, error) {
	t := &Table{
		rates: converter.Rates{},
		order: make([]converter.Currency, 0, len(quotes)),
	}
	for _, q := range quotes {
		r := float64(q.Rate)
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			return nil, fmt.Errorf("rate for [%v] must be positive: %v", q.Currency, q.Rate)
		}
		if _, ok := t.rates[q.Currency]; ok {
			return nil, fmt.Errorf("duplicate currency: %v", q.Currency)
		}
		t.rates[q.Currency] = q.Rate
		t.order = append(t.order, q.Currency)
	}
	return t, nil
}

func mustTable(quotes ...converter.Quote) *Table {
	t, err := NewTable(quotes...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Lookup(currency converter.Currency) (converter.Rate, bool) {
	rate, ok := t.rates[currency]
	return rate, ok
}

func (t *Table) Quotes() []converter.Quote {
	quotes := make([]converter.Quote, 0, len(t.order))
	for _, c := range t.order {
		quotes = append(quotes, converter.Quote{Currency: c, Rate: t.rates[c]})
	}
	return quotes
}

// fallbackRate is used for currencies the source does not know, treating
// them as pivot-equivalent.
const fallbackRate converter.Rate = 1.0

// ConversionTable converts amounts through the pivot currency using a Source.
type ConversionTable struct {
	source Source
}

// New constructs a ConversionTable over source
func New(source Source) *ConversionTable {
	return &ConversionTable{source: source}
}

// Default returns a ConversionTable over the Fixed rates
func Default() *ConversionTable {
	return New(Fixed)
}

// Rate returns the rate for currency, or 1.0 when the source does not know it.
func (t *ConversionTable) Rate(currency converter.Currency) converter.Rate {
	if rate, ok := t.source.Lookup(currency); ok {
		return rate
	}
	return fallbackRate
}

// Supports reports whether the source knows currency.
func (t *ConversionTable) Supports(currency converter.Currency) bool {
	_, ok := t.source.Lookup(currency)
	return ok
}

func (t *ConversionTable) Quotes() []converter.Quote {
	return t.source.Quotes()
}

// Convert converts amount from one currency to another. The amount is first
// expressed in pivot units and then scaled to the destination. No rounding is
// applied and the conversion never fails.
func (t *ConversionTable) Convert(amount converter.Amount, from converter.Currency, to converter.Currency) converter.Amount {
	if from == to {
		// a / r * r is not always exactly a in floating point
		return amount
	}
	pivot := float64(amount) / float64(t.Rate(from))
	return converter.Amount(pivot * float64(t.Rate(to)))
}

// Exchange is Convert plus the effective cross rate between the two currencies.
func (t *ConversionTable) Exchange(amount converter.Amount, from converter.Currency, to converter.Currency) converter.Exchanged {
	return converter.Exchanged{
		Rate:   t.Rate(to) / t.Rate(from),
		Amount: t.Convert(amount, from, to),
	}
}
