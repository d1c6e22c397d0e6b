package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinfolio"
	"github.com/google/subcommands"
)

type topupCmd struct{}

func (*topupCmd) Name() string     { return "topup" }
func (*topupCmd) Synopsis() string { return "add to the holdings of a tracked asset" }
func (*topupCmd) Usage() string {
	return `coinfolio topup <symbol> <amount>

  Adds a positive quantity to the holdings of the asset with the given
  symbol. The symbol is matched case-insensitively.

Usage Examples:
$ coinfolio topup btc 0.5
`
}

func (*topupCmd) SetFlags(_ *flag.FlagSet) {}

func (c *topupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Give a symbol and an amount.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)
	amount, err := coinfolio.ParseQuantity(f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	store, view, err := openStore(ctx)
	if err != nil {
		return fail(err)
	}

	asset, err := store.AddHoldings(symbol, amount)
	switch {
	case errors.Is(err, coinfolio.ErrAssetNotFound):
		fmt.Fprintf(os.Stderr, "No asset %q in the portfolio. Add it first with 'coinfolio add'.\n", symbol)
		return subcommands.ExitFailure
	case errors.Is(err, coinfolio.ErrInvalidAmount):
		fmt.Fprintln(os.Stderr, "The amount must be a positive number.")
		return subcommands.ExitUsageError
	case err != nil:
		return fail(err)
	}

	fmt.Printf("Holdings of %s are now %s.\n", asset.Symbol, asset.Holdings)
	printMarkdown(view.Markdown())
	return subcommands.ExitSuccess
}
