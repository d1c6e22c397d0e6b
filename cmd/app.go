// Package cmd implements the CLI application to track a crypto portfolio.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/gemini"
	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&topupCmd{}, "portfolio")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio.json", "Path to the portfolio snapshot file (JSON)")

// DefaultSeed is the fixed watch list used to populate an empty portfolio on
// first run.
var DefaultSeed = []string{"Bitcoin", "Ethereum", "Solana", "Dogecoin"}

// openStore loads the persisted portfolio, or bootstraps it from the
// enrichment service on first run, and returns the store with its view
// synchronizer already subscribed.
func openStore(ctx context.Context) (*coinfolio.Store, *renderer.Sync, error) {
	client, err := gemini.NewClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	store := coinfolio.NewStore(*portfolioFile, client)
	view := renderer.NewSync(store)

	if snap, ok := coinfolio.LoadSnapshot(*portfolioFile); ok {
		if err := store.Restore(snap); err != nil && !errors.Is(err, coinfolio.ErrAlreadySeeded) {
			return nil, nil, err
		}
		return store, view, nil
	}

	// First run: seed from the enrichment service and persist.
	seeds, rate, err := client.LookupSeedBatch(ctx, DefaultSeed)
	if err != nil {
		return nil, nil, fmt.Errorf("could not seed the portfolio: %w", err)
	}
	if err := store.Seed(seeds, rate); err != nil && !errors.Is(err, coinfolio.ErrAlreadySeeded) {
		return nil, nil, err
	}
	return store, view, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
