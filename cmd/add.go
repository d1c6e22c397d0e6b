package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/coinfolio"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "start tracking a new cryptocurrency" }
func (*addCmd) Usage() string {
	return `coinfolio add <name or symbol>

  Resolves the given free-text identifier through the enrichment service and
  appends the asset to the portfolio with zero holdings.

Usage Examples:
$ coinfolio add Solana
$ coinfolio add btc
`
}

func (*addCmd) SetFlags(_ *flag.FlagSet) {}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	identifier := strings.TrimSpace(strings.Join(f.Args(), " "))

	store, view, err := openStore(ctx)
	if err != nil {
		return fail(err)
	}

	asset, err := store.AddAsset(ctx, identifier)
	var lerr *coinfolio.LookupError
	switch {
	case errors.Is(err, coinfolio.ErrBlankIdentifier):
		fmt.Fprintln(os.Stderr, "Give the name or symbol of the cryptocurrency to add.")
		return subcommands.ExitUsageError
	case errors.Is(err, coinfolio.ErrDuplicateAsset):
		fmt.Fprintf(os.Stderr, "%q is already in the portfolio.\n", identifier)
		return subcommands.ExitFailure
	case errors.As(err, &lerr):
		fmt.Fprintf(os.Stderr, "Could not look up %q: %v.\nNothing was added, you can simply try again.\n", lerr.Identifier, lerr.Err)
		return subcommands.ExitFailure
	case err != nil:
		return fail(err)
	}

	fmt.Printf("Now tracking %s (%s).\n", asset.Name, asset.Symbol)
	printMarkdown(view.Markdown())
	return subcommands.ExitSuccess
}
