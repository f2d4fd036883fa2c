package converter

// Currency a currency code
type Currency string

// Amount a monetary amount in units of some Currency
type Amount float64

// Rate units of a currency per one unit of the Pivot currency
type Rate float64

type Rates map[Currency]Rate

const (
	USD Currency = "USD"
	IDR Currency = "IDR"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// Pivot is the reference currency all rates are expressed against.
const Pivot = USD

// Quote pairs a currency with its rate against the Pivot.
type Quote struct {
	Currency Currency
	Rate     Rate
}

// Exchanged result of a conversion. Rate is the effective cross rate from the
// source to the destination currency.
type Exchanged struct {
	Rate   Rate
	Amount Amount
}
