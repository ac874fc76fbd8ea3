package broker

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Position is the holding of a single asset.
type Position struct {
	Symbol          string
	Quantity        Quantity  // signed, positive is long
	BookCost        Money     // cost basis, commissions included
	MarketValue     Money     // Quantity times the last observed price
	LastValuationDt time.Time // time of the last trade or valuation
	RealisedGain    Money     // accumulated on reductions of the position
}

// Gain is the unrealised gain of the position.
func (p Position) Gain() Money { return p.MarketValue.Sub(p.BookCost) }

// PercGain is the unrealised gain relative to the book cost, in percents.
//
// The book cost of a short position is negative (cash was received), its
// absolute value is used so that a profitable short has a positive PercGain.
func (p Position) PercGain() Percent {
	if p.BookCost.IsZero() {
		return 0
	}
	ratio := p.Gain().value.Div(p.BookCost.value.Abs()).Mul(hundred)
	return Percent(ratio.InexactFloat64())
}

// AverageCost is the book cost per unit held.
func (p Position) AverageCost() Money {
	if p.Quantity.IsZero() {
		return M(0, p.BookCost.Currency())
	}
	return p.BookCost.Div(p.Quantity)
}

// openPosition creates the position resulting from a first trade in an asset.
func openPosition(tx Transaction) Position {
	cost := tx.CostWithCommission()
	return Position{
		Symbol:          tx.Asset,
		Quantity:        tx.Quantity,
		BookCost:        cost,
		MarketValue:     tx.CostWithoutCommission(),
		LastValuationDt: tx.Dt,
		RealisedGain:    M(0, cost.Currency()),
	}
}

// transact returns the position updated by tx. p is left untouched.
//
// Trades in the direction of the position accumulate quantity and book cost.
// Trades against it release book cost at average cost and realise the
// difference with the net proceeds; the commission is charged to the closing
// part. If the trade crosses zero the remainder opens a position in the
// other direction, booked at the trade price.
func (p Position) transact(tx Transaction) Position {
	q := tx.Quantity
	if p.Quantity.IsZero() || p.Quantity.sameSign(q) {
		p.Quantity = p.Quantity.Add(q)
		p.BookCost = p.BookCost.Add(tx.CostWithCommission())
	} else {
		closing := q
		if q.Abs().GreaterThan(p.Quantity.Abs()) {
			closing = p.Quantity.Neg()
		}
		opening := q.Sub(closing)

		released := p.BookCost.Mul(closing.Neg()).Div(p.Quantity)
		closingCost := tx.Price.Mul(closing).Add(tx.Commission)
		p.RealisedGain = p.RealisedGain.Sub(closingCost).Sub(released)
		p.BookCost = p.BookCost.Sub(released)
		p.Quantity = p.Quantity.Add(closing)

		if !opening.IsZero() {
			p.Quantity = opening
			p.BookCost = tx.Price.Mul(opening)
		}
	}
	p.MarketValue = tx.Price.Mul(p.Quantity)
	if tx.Dt.After(p.LastValuationDt) {
		p.LastValuationDt = tx.Dt
	}
	return p
}

// value returns the position marked at price on dt.
func (p Position) value(price Money, dt time.Time) Position {
	p.MarketValue = price.Mul(p.Quantity)
	p.LastValuationDt = dt
	return p
}
