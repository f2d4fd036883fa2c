package rates

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-converter"
)

var fixedRates = converter.Rates{
	converter.USD: 1.0,
	converter.IDR: 15500.0,
	converter.EUR: 0.92,
	converter.GBP: 0.78,
}

var currencies = []converter.Currency{converter.USD, converter.IDR, converter.EUR, converter.GBP}

var amounts = []converter.Amount{0, 1, -1, 0.01, 2.5, 100, 1234.5, 15500, -987654.321, 1e9}

func TestFixed_Quotes(t *testing.T) {
	assert.Equal(t, []converter.Quote{
		{Currency: converter.USD, Rate: 1.0},
		{Currency: converter.IDR, Rate: 15500.0},
		{Currency: converter.EUR, Rate: 0.92},
		{Currency: converter.GBP, Rate: 0.78},
	}, Fixed.Quotes())
}

func TestFixed_QuotesAreCopies(t *testing.T) {
	quotes := Fixed.Quotes()
	quotes[0].Rate = 42

	rate, ok := Fixed.Lookup(converter.USD)
	assert.True(t, ok)
	assert.Equal(t, converter.Rate(1.0), rate)
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		quotes  []converter.Quote
		wantErr bool
	}{
		{"empty", nil, false},
		{"single", []converter.Quote{{Currency: "USD", Rate: 1}}, false},
		{"zero rate", []converter.Quote{{Currency: "USD", Rate: 0}}, true},
		{"negative rate", []converter.Quote{{Currency: "USD", Rate: -2}}, true},
		{"nan rate", []converter.Quote{{Currency: "USD", Rate: converter.Rate(math.NaN())}}, true},
		{"infinite rate", []converter.Quote{{Currency: "USD", Rate: converter.Rate(math.Inf(1))}}, true},
		{"duplicate", []converter.Quote{{Currency: "USD", Rate: 1}, {Currency: "USD", Rate: 2}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.quotes...)
			assert.Equal(t, tt.wantErr, err != nil, "error = %v", err)
		})
	}
}

func TestConversionTable_Rate(t *testing.T) {
	table := Default()

	for c, want := range fixedRates {
		assert.Equal(t, want, table.Rate(c), "rate for %v", c)
		assert.True(t, table.Supports(c), "supports %v", c)
	}

	assert.Equal(t, converter.Rate(1.0), table.Rate("XYZ"))
	assert.Equal(t, converter.Rate(1.0), table.Rate(""))
	assert.Equal(t, converter.Rate(1.0), table.Rate("usd"))
	assert.False(t, table.Supports("XYZ"))
}

func TestConversionTable_Convert(t *testing.T) {
	table := Default()

	type args struct {
		amount converter.Amount
		from   converter.Currency
		to     converter.Currency
	}
	tests := []struct {
		name string
		args args
		want converter.Amount
	}{
		{"usd -> idr", args{100, "USD", "IDR"}, 1550000.0},
		{"idr -> usd", args{15500, "IDR", "USD"}, 1.0},
		{"usd -> eur", args{100, "USD", "EUR"}, 92.0},
		{"zero", args{0, "GBP", "IDR"}, 0},
		{"negative", args{-100, "USD", "IDR"}, -1550000.0},
		{"unknown from is pivot", args{10, "XYZ", "IDR"}, 155000.0},
		{"unknown to is pivot", args{15500, "IDR", "XYZ"}, 1.0},
		{"unknown both", args{7, "ABC", "XYZ"}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Convert(tt.args.amount, tt.args.from, tt.args.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConversionTable_ConvertEURToGBP(t *testing.T) {
	got := Default().Convert(1, converter.EUR, converter.GBP)
	assert.InDelta(t, 0.78/0.92, float64(got), 1e-12)
	assert.InDelta(t, 0.8478, float64(got), 1e-4)
}

func TestConversionTable_ConvertIdentity(t *testing.T) {
	table := Default()
	for _, c := range append(currencies, "XYZ") {
		for _, a := range amounts {
			assert.Equal(t, a, table.Convert(a, c, c), "%v %v", a, c)
		}
	}
}

func TestConversionTable_ConvertThroughPivot(t *testing.T) {
	table := Default()
	for _, from := range currencies {
		for _, to := range currencies {
			if from == to {
				continue
			}
			for _, a := range amounts {
				want := converter.Amount(float64(a) / float64(fixedRates[from]) * float64(fixedRates[to]))
				assert.Equal(t, want, table.Convert(a, from, to), "%v %v -> %v", a, from, to)
			}
		}
	}
}

func TestConversionTable_ConvertRoundTrip(t *testing.T) {
	table := Default()
	for _, x := range currencies {
		for _, y := range currencies {
			for _, a := range amounts {
				back := table.Convert(table.Convert(a, x, y), y, x)
				delta := 1e-9 * math.Max(1, math.Abs(float64(a)))
				assert.InDelta(t, float64(a), float64(back), delta, "%v %v -> %v", a, x, y)
			}
		}
	}
}

func TestConversionTable_Exchange(t *testing.T) {
	got := Default().Exchange(2, converter.USD, converter.IDR)
	assert.Equal(t, converter.Exchanged{Rate: 15500, Amount: 31000}, got)

	got = Default().Exchange(2, converter.GBP, converter.GBP)
	assert.Equal(t, converter.Exchanged{Rate: 1, Amount: 2}, got)
}

type stubSource map[converter.Currency]converter.Rate

func (s stubSource) Lookup(c converter.Currency) (converter.Rate, bool) {
	r, ok := s[c]
	return r, ok
}

func (s stubSource) Quotes() []converter.Quote { return nil }

func TestConversionTable_SwappableSource(t *testing.T) {
	table := New(stubSource{"USD": 1, "AAA": 4})

	assert.Equal(t, converter.Amount(8), table.Convert(2, "USD", "AAA"))
	assert.Equal(t, converter.Amount(0.5), table.Convert(2, "AAA", "USD"))
	assert.Equal(t, converter.Amount(2), table.Convert(2, "IDR", "USD"))
}

func TestNewTable_Lookup(t *testing.T) {
	table, err := NewTable(converter.Quote{Currency: "AAA", Rate: 3})
	require.NoError(t, err)

	rate, ok := table.Lookup("AAA")
	assert.True(t, ok)
	assert.Equal(t, converter.Rate(3), rate)

	_, ok = table.Lookup("BBB")
	assert.False(t, ok)
}
