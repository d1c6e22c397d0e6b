package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the tracked assets and their current value" }
func (*listCmd) Usage() string {
	return `coinfolio list

  Displays the holdings table: one row per tracked asset, in the order they
  were added, with the current price, the price converted to EUR, the
  quantity held, and the position value.
`
}

func (*listCmd) SetFlags(_ *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, view, err := openStore(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(view.Markdown())
	return subcommands.ExitSuccess
}
