// Command converter converts amounts between a fixed set of currencies.
package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/logging"
	"go-currency-converter/rates"
)

// app dependencies shared by every subcommand
type app struct {
	cfg     *config.Config
	logger  log.Logger
	service exchange.Service
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "converter",
		Short: "Convert amounts between USD, IDR, EUR and GBP",
		Long: `Converts an amount between USD, IDR, EUR and GBP using fixed rates
expressed against USD. Run it once with convert, interactively with
interactive, or as an HTTP service with serve.

` + config.Usage(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error, none)")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newInteractiveCmd(a))
	root.AddCommand(newRatesCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

// setup loads config and wires the logger and exchange service.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logger.Level = lvl
	}

	logger, err := logging.New(cfg.Logger, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	service := exchange.NewService(rates.Default(), cfg.Converter.StrictCurrencies)
	service = exchange.NewLoggingService(log.With(logger, "component", "exchange"), service)

	a.cfg = cfg
	a.logger = logger
	a.service = service
	return nil
}
