package scenario

import (
	"errors"

	"github.com/etnz/broker"
	"github.com/sirupsen/logrus"
)

// symbol is the Asset of a step.
type symbol string

func (s symbol) Symbol() string { return string(s) }

// Portfolio creates the empty portfolio described by the scenario settings.
func (s *Scenario) Portfolio() (*broker.Portfolio, error) {
	return broker.NewPortfolio(s.Start, broker.Options{
		StartingCash: broker.M(s.StartingCash.Decimal, ""),
		Currency:     s.Currency,
		ID:           s.ID,
		Name:         s.Name,
		Logger:       s.logger(),
	})
}

func (s *Scenario) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

// Replay creates the portfolio and applies every step in order. It stops at
// the first rejected step and returns the portfolio as it was before that
// step, with a *StepError.
func (s *Scenario) Replay() (*broker.Portfolio, error) {
	p, err := s.Portfolio()
	if err != nil {
		return nil, err
	}
	for i, step := range s.Steps {
		if err := s.apply(p, step); err != nil {
			return p, &StepError{Index: i, Op: step.Op, Err: err}
		}
	}
	return p, nil
}

// ReplayAll is like Replay but skips rejected steps. The returned error joins
// the *StepError of every skipped step.
func (s *Scenario) ReplayAll() (*broker.Portfolio, error) {
	p, err := s.Portfolio()
	if err != nil {
		return nil, err
	}
	var errs []error
	for i, step := range s.Steps {
		if err := s.apply(p, step); err != nil {
			s.logger().WithField("step", i).WithError(err).Warn("skipping step")
			errs = append(errs, &StepError{Index: i, Op: step.Op, Err: err})
		}
	}
	return p, errors.Join(errs...)
}

func (s *Scenario) apply(p *broker.Portfolio, step Step) error {
	switch step.Op {
	case Subscribe:
		return p.SubscribeFunds(step.Date, broker.M(step.Amount.Decimal, ""))
	case Withdraw:
		return p.WithdrawFunds(step.Date, broker.M(step.Amount.Decimal, ""))
	case Transact:
		tx := broker.NewTransaction(symbol(step.Asset), broker.Q(step.Quantity.Decimal), step.Date,
			broker.M(step.Price.Decimal, ""), step.Order, broker.M(step.Commission.Decimal, ""))
		return p.TransactAsset(tx)
	case Mark:
		pos, err := p.UpdateMarketValueOfAsset(step.Asset, broker.M(step.Price.Decimal, ""), step.Date)
		if err != nil {
			return err
		}
		if pos == nil {
			s.logger().WithField("asset", step.Asset).Debug("no position to mark")
		}
		return nil
	default:
		return ErrUnknownOp
	}
}
