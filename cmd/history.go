package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/broker/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	scenarioFlags
	json bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the cash history of a scenario" }
func (*historyCmd) Usage() string {
	return `pbt history -f <scenario.yaml> [-json]

  Displays every subscription, withdrawal and trade of the scenario with the
  cash balance after it. With -json, prints the history as a table with its
  date index, columns and rows.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print the history table as JSON")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.replay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		return printJSON(p.HistoryTable())
	}
	printMarkdown(renderer.HistoryMarkdown(p))
	return subcommands.ExitSuccess
}
