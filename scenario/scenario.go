// Package scenario replays a YAML script of cash movements, trades and price
// observations into a broker.Portfolio.
//
// A scenario file looks like:
//
//	start: 2017-10-05T08:00:00Z
//	currency: USD
//	starting_cash: 100000
//	steps:
//	  - {op: transact, date: 2017-10-06T08:00:00Z, asset: EQ:AAA, quantity: 100, price: 567, commission: 15.78}
//	  - {op: mark, date: 2017-10-08T08:00:00Z, asset: EQ:AAA, price: 580}
//
// Amounts are decimals, written as YAML numbers or strings.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Op is the operation of a Step.
type Op string

const (
	Subscribe Op = "subscribe"
	Withdraw  Op = "withdraw"
	Transact  Op = "transact"
	Mark      Op = "mark"
)

// ErrUnknownOp is returned when loading a step with an unsupported op.
var ErrUnknownOp = errors.New("unknown op")

// Amount is a decimal read from a YAML number or string.
type Amount struct {
	decimal.Decimal
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q: %w", node.Line, node.Value, err)
	}
	a.Decimal = d
	return nil
}

// Step is one call into the portfolio. Only the fields used by Op are read.
type Step struct {
	Op         Op        `yaml:"op"`
	Date       time.Time `yaml:"date"`
	Amount     Amount    `yaml:"amount,omitempty"`
	Asset      string    `yaml:"asset,omitempty"`
	Quantity   Amount    `yaml:"quantity,omitempty"`
	Price      Amount    `yaml:"price,omitempty"`
	Commission Amount    `yaml:"commission,omitempty"`
	Order      string    `yaml:"order,omitempty"`
}

// Scenario is the settings of a portfolio and the steps to replay into it.
type Scenario struct {
	Start        time.Time `yaml:"start"`
	Currency     string    `yaml:"currency,omitempty"`
	StartingCash Amount    `yaml:"starting_cash,omitempty"`
	ID           string    `yaml:"id,omitempty"`
	Name         string    `yaml:"name,omitempty"`
	Steps        []Step    `yaml:"steps"`

	// Logger receives the portfolio and replay logs. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger `yaml:"-"`
}

// Load reads a scenario. Transactions without an order get a random one.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if s.Start.IsZero() {
		return nil, errors.New("scenario has no start date")
	}
	for i := range s.Steps {
		step := &s.Steps[i]
		switch step.Op {
		case Subscribe, Withdraw, Mark:
		case Transact:
			if step.Order == "" {
				step.Order = uuid.NewString()
			}
		default:
			return nil, fmt.Errorf("step %d: %w %q", i, ErrUnknownOp, step.Op)
		}
	}
	return &s, nil
}

// Decode reads the scenario file at path.
func Decode(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// StepError is the error of a step that the portfolio rejected.
type StepError struct {
	Index int
	Op    Op
	Err   error
}

func (e *StepError) Error() string { return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }
