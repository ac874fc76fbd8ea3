package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/broker/renderer"
	"github.com/google/subcommands"
)

type replayCmd struct {
	scenarioFlags
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "replay a scenario and display the resulting portfolio" }
func (*replayCmd) Usage() string {
	return `pbt replay -f <scenario.yaml> [-keep-going]

  Replays every step of the scenario into a new portfolio, then displays its
  summary, holdings and history. Stops at the first rejected step unless
  -keep-going is set.
`
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.replay()
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error replaying scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString(renderer.SummaryMarkdown(p))
	b.WriteString("\n")
	b.WriteString(renderer.HoldingsMarkdown(p))
	b.WriteString("\n")
	b.WriteString(renderer.HistoryMarkdown(p))
	printMarkdown(b.String())

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
