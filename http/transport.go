package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter"
	"go-currency-converter/display"
	"go-currency-converter/exchange"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	logger  log.Logger
	router  *http.ServeMux
}

func NewServer(s exchange.Service, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		logger:  logger,
		router:  http.NewServeMux(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/rates", s.rates())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// amount accepts either a JSON number or a JSON string of free text
type amount string

func (a *amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*a = amount(text)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	*a = amount(data)
	return nil
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency converter.Currency
		ToCurrency   converter.Currency
		Amount       amount
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange  converter.Rate     `json:"exchange"`
		Amount    converter.Amount   `json:"amount"`
		Original  converter.Amount   `json:"original"`
		Formatted string             `json:"formatted"`
		Currency  converter.Currency `json:"currency"`
		Result    string             `json:"result"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			rw.Header().Set("Allow", http.MethodPost)
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(body, &request)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid json")
			return
		}

		original, err := display.ParseAmount(string(request.Amount))
		if err != nil {
			s.fail(rw, http.StatusBadRequest, display.InvalidInput)
			return
		}

		result, err := s.Service.Convert(r.Context(), original, request.FromCurrency, request.ToCurrency)
		if errors.Is(err, exchange.ErrUnsupportedCurrency) {
			s.fail(rw, http.StatusBadRequest, exchange.ErrUnsupportedCurrency.Error())
			return
		}
		if err != nil {
			level.Error(s.logger).Log("msg", "conversion failed", "err", err)
			s.fail(rw, http.StatusInternalServerError, "failed conversion")
			return
		}

		if math.IsInf(float64(result.Amount), 0) || math.IsNaN(float64(result.Amount)) {
			s.fail(rw, http.StatusBadRequest, "amount out of range")
			return
		}

		formatted := display.FormatAmount(result.Amount)
		response := response{
			Exchange:  result.Rate,
			Amount:    result.Amount,
			Original:  original,
			Formatted: formatted,
			Currency:  request.ToCurrency,
			Result:    formatted + " " + string(request.ToCurrency),
		}
		s.respond(rw, http.StatusOK, &response)
	}
}

// rates produces HTTP handler listing the rates conversions use
func (s *Server) rates() http.HandlerFunc {

	type quote struct {
		Currency converter.Currency `json:"currency"`
		Rate     converter.Rate     `json:"rate"`
	}

	type response struct {
		Pivot converter.Currency `json:"pivot"`
		Rates []quote            `json:"rates"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			rw.Header().Set("Allow", http.MethodGet)
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		quotes, err := s.Service.Rates(r.Context())
		if err != nil {
			level.Error(s.logger).Log("msg", "listing rates failed", "err", err)
			s.fail(rw, http.StatusInternalServerError, "failed listing rates")
			return
		}

		response := response{
			Pivot: converter.Pivot,
			Rates: make([]quote, 0, len(quotes)),
		}
		for _, q := range quotes {
			response.Rates = append(response.Rates, quote{Currency: q.Currency, Rate: q.Rate})
		}
		s.respond(rw, http.StatusOK, &response)
	}
}

// respond encodes v before writing the status so an encoding failure can
// still be reported as an error.
func (s *Server) respond(rw http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		level.Error(s.logger).Log("msg", "failed json encoding", "err", err)
		rw.WriteHeader(http.StatusInternalServerError)
		rw.Write([]byte(`{"error":"failed json encoding"}` + "\n"))
		return
	}
	rw.WriteHeader(status)
	rw.Write(buf.Bytes())
}

func (s *Server) fail(rw http.ResponseWriter, status int, msg string) {
	type failure struct {
		Error string `json:"error"`
	}
	s.respond(rw, status, failure{Error: msg})
}
