package session

import (
	"context"
	"errors"
	"fmt"

	"go-currency-converter"
	"go-currency-converter/display"
	"go-currency-converter/exchange"
)

// ErrUnknownCurrency a selector was given a currency it does not offer
var ErrUnknownCurrency = errors.New("unknown currency")

// Result of the last convert action
type Result struct {
	// Text formatted amount, or display.InvalidInput
	Text string

	// Currency the destination currency, empty when the input was invalid
	Currency converter.Currency

	// Exchanged the raw conversion, zero when the input was invalid
	Exchanged converter.Exchanged
}

// Valid reports whether the result holds a converted amount.
func (r Result) Valid() bool {
	return r.Currency != ""
}

func (r Result) String() string {
	if !r.Valid() {
		return "Result: " + r.Text
	}
	return fmt.Sprintf("Result: %s %s", r.Text, r.Currency)
}

// State of one conversion screen
type State struct {
	Input  string
	From   converter.Currency
	To     converter.Currency
	Result *Result
}

// Session owns the state of one conversion screen. It is not safe for
// concurrent use.
type Session struct {
	service exchange.Service
	options []converter.Currency
	state   State
}

// New constructs a Session with the given initial selections. Both must be
// among the currencies the service offers.
func New(ctx context.Context, service exchange.Service, from converter.Currency, to converter.Currency) (*Session, error) {
	quotes, err := service.Rates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading currencies: %w", err)
	}
	options := make([]converter.Currency, 0, len(quotes))
	for _, q := range quotes {
		options = append(options, q.Currency)
	}

	s := &Session{
		service: service,
		options: options,
	}
	if err := s.SelectFrom(from); err != nil {
		return nil, err
	}
	if err := s.SelectTo(to); err != nil {
		return nil, err
	}
	return s, nil
}

// Currencies the selectors offer, in display order
func (s *Session) Currencies() []converter.Currency {
	return append([]converter.Currency(nil), s.options...)
}

// State returns a copy of the current state.
func (s *Session) State() State {
	state := s.state
	if s.state.Result != nil {
		r := *s.state.Result
		state.Result = &r
	}
	return state
}

// SetInput replaces the amount text.
func (s *Session) SetInput(text string) {
	s.state.Input = text
}

// SelectFrom selects the source currency.
func (s *Session) SelectFrom(currency converter.Currency) error {
	if !s.offers(currency) {
		return fmt.Errorf("select from [%v]: %w", currency, ErrUnknownCurrency)
	}
	s.state.From = currency
	return nil
}

// SelectTo selects the destination currency.
func (s *Session) SelectTo(currency converter.Currency) error {
	if !s.offers(currency) {
		return fmt.Errorf("select to [%v]: %w", currency, ErrUnknownCurrency)
	}
	s.state.To = currency
	return nil
}

func (s *Session) offers(currency converter.Currency) bool {
	for _, c := range s.options {
		if c == currency {
			return true
		}
	}
	return false
}

// Convert converts the current input with the selected currencies and stores
// the result. Unparsable input produces an invalid-input result without
// calling the service. A service error leaves the previous result in place.
func (s *Session) Convert(ctx context.Context) (Result, error) {
	amount, err := display.ParseAmount(s.state.Input)
	if err != nil {
		r := Result{Text: display.InvalidInput}
		s.state.Result = &r
		return r, nil
	}

	ex, err := s.service.Convert(ctx, amount, s.state.From, s.state.To)
	if err != nil {
		return Result{}, fmt.Errorf("convert: %w", err)
	}

	r := Result{
		Text:      display.FormatAmount(ex.Amount),
		Currency:  s.state.To,
		Exchanged: ex,
	}
	s.state.Result = &r
	return r, nil
}
