package broker

import (
	"time"
)

// EventType is the kind of a PortfolioEvent.
type EventType string

// Event types recorded in the portfolio history.
const (
	Subscription     EventType = "subscription"
	Withdrawal       EventType = "withdrawal"
	AssetTransaction EventType = "asset_transaction"
)

// PortfolioEvent is one entry of the portfolio history: a single cash
// affecting action and the cash balance right after it.
//
// Events are values, two events with the same fields are Equal.
type PortfolioEvent struct {
	Dt          time.Time
	Type        EventType
	Description string
	Debit       Money
	Credit      Money
	Balance     Money
}

// NewSubscriptionEvent records cash coming into the portfolio.
func NewSubscriptionEvent(dt time.Time, credit, balance Money) PortfolioEvent {
	return PortfolioEvent{
		Dt:          dt,
		Type:        Subscription,
		Description: "SUBSCRIPTION",
		Debit:       M(0, credit.Currency()),
		Credit:      credit,
		Balance:     balance,
	}
}

// NewWithdrawalEvent records cash leaving the portfolio.
func NewWithdrawalEvent(dt time.Time, debit, balance Money) PortfolioEvent {
	return PortfolioEvent{
		Dt:          dt,
		Type:        Withdrawal,
		Description: "WITHDRAWAL",
		Debit:       debit,
		Credit:      M(0, debit.Currency()),
		Balance:     balance,
	}
}

// NewAssetTransactionEvent records the cash side of a trade.
func NewAssetTransactionEvent(dt time.Time, description string, debit, credit, balance Money) PortfolioEvent {
	return PortfolioEvent{
		Dt:          dt,
		Type:        AssetTransaction,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Balance:     balance,
	}
}

// Equal reports whether e and o hold the same data.
func (e PortfolioEvent) Equal(o PortfolioEvent) bool {
	return e.Dt.Equal(o.Dt) &&
		e.Type == o.Type &&
		e.Description == o.Description &&
		e.Debit.Equal(o.Debit) &&
		e.Credit.Equal(o.Credit) &&
		e.Balance.Equal(o.Balance)
}

// MarshalJSON implements the json.Marshaler interface for PortfolioEvent.
func (e PortfolioEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Dt.Format(time.RFC3339))
	w.Append("type", e.Type)
	w.Append("description", e.Description)
	w.Append("debit", e.Debit)
	w.Append("credit", e.Credit)
	w.Append("balance", e.Balance)
	return w.MarshalJSON()
}
