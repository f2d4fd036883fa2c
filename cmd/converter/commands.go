package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"go-currency-converter"
	"go-currency-converter/display"
	chttp "go-currency-converter/http"
	"go-currency-converter/session"

	nhttp "net/http"
)

// currencyFlags registers --from and --to, defaulting to the configured currencies
func currencyFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "source currency (default from CONVERTER_DEFAULT_FROM)")
	cmd.Flags().String("to", "", "destination currency (default from CONVERTER_DEFAULT_TO)")
}

func (a *app) currencies(cmd *cobra.Command) (converter.Currency, converter.Currency) {
	from, _ := cmd.Flags().GetString("from")
	if from == "" {
		from = a.cfg.Converter.DefaultFrom
	}
	to, _ := cmd.Flags().GetString("to")
	if to == "" {
		to = a.cfg.Converter.DefaultTo
	}
	return converter.Currency(strings.ToUpper(from)), converter.Currency(strings.ToUpper(to))
}

// --- Convert Command ---

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [amount]",
		Short:   "Convert an amount once",
		Example: "  converter convert 100 --from USD --to IDR\n  converter convert --from EUR --to GBP -- -12.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := a.currencies(cmd)

			amount, err := display.ParseAmount(args[0])
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), display.InvalidInput)
				return nil
			}

			ex, err := a.service.Convert(cmd.Context(), amount, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display.FormatResult(ex.Amount, to))
			return nil
		},
	}
	currencyFlags(cmd)
	return cmd
}

// --- Interactive Command ---

func newInteractiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Convert amounts in an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := a.currencies(cmd)

			s, err := session.New(cmd.Context(), a.service, from, to)
			if err != nil {
				return err
			}
			return session.NewTerminal(s, cmd.OutOrStdout()).Run(cmd.Context(), cmd.InOrStdin())
		},
	}
	currencyFlags(cmd)
	return cmd
}

// --- Rates Command ---

func newRatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "List the exchange rates against " + string(converter.Pivot),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quotes, err := a.service.Rates(cmd.Context())
			if err != nil {
				return err
			}
			for _, q := range quotes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", q.Currency, q.Rate)
			}
			return nil
		},
	}
}

// --- Serve Command ---

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				a.cfg.Server.Address = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from CONVERTER_SERVER_ADDRESS)")
	return cmd
}

// serve runs the HTTP server until ctx is done, then shuts it down gracefully.
func (a *app) serve(ctx context.Context) error {
	logger := log.With(a.logger, "component", "http")

	server := &nhttp.Server{
		Addr:         a.cfg.Server.Address,
		Handler:      chttp.NewServer(a.service, logger),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "addr", server.Addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	level.Info(logger).Log("msg", "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
		return err
	}
	return nil
}
