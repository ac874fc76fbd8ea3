package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/broker/renderer"
	"github.com/google/subcommands"
)

type holdingsCmd struct {
	scenarioFlags
	json  bool
	query string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the holdings at the end of a scenario" }
func (*holdingsCmd) Usage() string {
	return `pbt holdings -f <scenario.yaml> [-json] [-q <jsonpath>]

  Displays quantity, book cost, market value and gain of every position held
  at the end of the scenario.

  With -json, the holdings are printed as a JSON object keyed by asset. With
  -q, the JSONPath query is evaluated on that object, for instance:

    pbt holdings -q '$["EQ:AAA"].gain'
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	c.scenarioFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print holdings as JSON")
	f.StringVar(&c.query, "q", "", "JSONPath query on the JSON holdings")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.replay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.query != "":
		res, err := query(c.query, p.Holdings())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error querying holdings: %v\n", err)
			return subcommands.ExitFailure
		}
		return printJSON(res)
	case c.json:
		return printJSON(p.Holdings())
	default:
		printMarkdown(renderer.HoldingsMarkdown(p))
		return subcommands.ExitSuccess
	}
}

// printJSON prints v as indented JSON.
func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
