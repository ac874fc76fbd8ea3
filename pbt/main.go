// Command pbt replays portfolio scenarios and reports on them.
package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"

	"github.com/etnz/broker/cmd"
	"github.com/etnz/broker/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	cmd.LoadEnv()

	completion().Complete("pbt")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	cmd.Register(subcommands.DefaultCommander)

	flag.Parse()
	if err := cmd.SetupLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	os.Exit(int(subcommands.Execute(context.Background())))
}

// completion describes the commands and flags of pbt for shell completion.
func completion() *complete.Command {
	scenario := map[string]complete.Predictor{
		"f":          predict.Files("*.yaml"),
		"keep-going": predict.Nothing,
	}
	with := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := maps.Clone(scenario)
		maps.Copy(flags, extra)
		return flags
	}

	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"replay":   {Flags: with(nil)},
			"holdings": {Flags: with(map[string]complete.Predictor{"json": predict.Nothing, "q": predict.Something})},
			"history":  {Flags: with(map[string]complete.Predictor{"json": predict.Nothing})},
			"topic":    {Args: predict.Set(topics)},
		},
		Flags: map[string]complete.Predictor{
			"raw": predict.Nothing,
			"v":   predict.Set{"panic", "fatal", "error", "warn", "info", "debug", "trace"},
		},
	}
}
