package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go-currency-converter"
)

const prompt = "> "

const usage = `Commands:
  amount <text>   set the amount to convert
  from <code>     select the source currency
  to <code>       select the destination currency
  convert         convert and show the result
  state           show the current selections and result
  currencies      list the available currencies
  help            show this help
  quit            leave
Any other text is taken as an amount and converted right away.`

// Terminal drives a Session from line-oriented text input.
type Terminal struct {
	session *Session
	out     io.Writer

	success *color.Color
	failure *color.Color
}

// NewTerminal returns a Terminal writing to out
func NewTerminal(s *Session, out io.Writer) *Terminal {
	return &Terminal{
		session: s,
		out:     out,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed),
	}
}

// Run reads commands from in until quit, end of input or ctx is done.
func (t *Terminal) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(t.out, "Currency Converter")
	t.printState()
	for {
		fmt.Fprint(t.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(t.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := t.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the user asked to quit.
func (t *Terminal) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	command, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		command, arg = line[:i], strings.TrimSpace(line[i+1:])
	}

	switch strings.ToLower(command) {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(t.out, usage)
	case "amount":
		t.session.SetInput(arg)
	case "from":
		t.selectCurrency(arg, t.session.SelectFrom)
	case "to":
		t.selectCurrency(arg, t.session.SelectTo)
	case "convert":
		t.convert(ctx)
	case "state":
		t.printState()
	case "currencies":
		fmt.Fprintln(t.out, t.currencyList())
	default:
		t.session.SetInput(line)
		t.convert(ctx)
	}
	return false
}

func (t *Terminal) selectCurrency(arg string, sel func(converter.Currency) error) {
	if err := sel(converter.Currency(strings.ToUpper(arg))); err != nil {
		t.failure.Fprintf(t.out, "%v (choose one of %s)\n", err, t.currencyList())
	}
}

func (t *Terminal) convert(ctx context.Context) {
	result, err := t.session.Convert(ctx)
	if err != nil {
		t.failure.Fprintln(t.out, err)
		return
	}
	if !result.Valid() {
		t.failure.Fprintln(t.out, result)
		return
	}
	t.success.Fprintln(t.out, result)
}

func (t *Terminal) printState() {
	state := t.session.State()
	fmt.Fprintf(t.out, "Amount: %q  From: %s  To: %s\n", state.Input, state.From, state.To)
	if state.Result != nil {
		fmt.Fprintln(t.out, state.Result)
	}
}

func (t *Terminal) currencyList() string {
	currencies := t.session.Currencies()
	codes := make([]string, 0, len(currencies))
	for _, c := range currencies {
		codes = append(codes, string(c))
	}
	return strings.Join(codes, ", ")
}
