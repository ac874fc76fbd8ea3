// Package cmd implements the pbt CLI: replaying scenarios into a portfolio and
// reporting on it.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/broker"
	"github.com/etnz/broker/scenario"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	EnvScenario = "PBT_SCENARIO"
	EnvLogLevel = "PBT_LOG_LEVEL"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&replayCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var raw = flag.Bool("raw", false, "print markdown as is, without terminal rendering")
var verbosity = flag.String("v", "", "log level (panic, fatal, error, warn, info, debug, trace), defaults to $"+EnvLogLevel)

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// LoadEnv reads the environment variables defined in .env, if any. Variables
// already set are left untouched.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("ignoring .env file")
	}
}

// SetupLogging sets the log level from the -v flag or the environment.
func SetupLogging() error {
	level := *verbosity
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	if level == "" {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	return nil
}

// scenarioFlags are the flags of the commands reading a scenario.
type scenarioFlags struct {
	path      string
	keepGoing bool
}

func (s *scenarioFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.path, "f", os.Getenv(EnvScenario), "path to the scenario file, defaults to $"+EnvScenario)
	f.BoolVar(&s.keepGoing, "keep-going", false, "skip rejected steps instead of stopping at the first one")
}

// replay decodes the scenario and replays it. With keep-going, rejected steps
// are reported on stderr and the error is nil.
func (s *scenarioFlags) replay() (*broker.Portfolio, error) {
	if s.path == "" {
		return nil, fmt.Errorf("no scenario file, use -f or set $%s", EnvScenario)
	}
	sc, err := scenario.Decode(s.path)
	if err != nil {
		return nil, err
	}
	sc.Logger = log.WithField("scenario", s.path)
	if !s.keepGoing {
		return sc.Replay()
	}
	p, err := sc.ReplayAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Skipped steps:\n%v\n", err)
	}
	return p, nil
}

// printMarkdown prints md rendered for the terminal, unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
