package broker

import (
	"fmt"
	"time"
)

// Asset is anything traded by the portfolio. Only its symbol is used, as the
// key of the position.
type Asset interface {
	Symbol() string
}

// Direction is the side of a Transaction.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// Transaction is an executed trade, as produced by the execution layer.
//
// Quantity is signed: positive quantities are purchases, negative ones are
// sales. Price is per unit, Commission is for the whole trade. Untagged
// amounts adopt the portfolio currency.
type Transaction struct {
	Asset      string
	Quantity   Quantity
	Price      Money
	Dt         time.Time
	OrderID    string
	Commission Money
}

// NewTransaction creates a Transaction for the asset.
func NewTransaction(asset Asset, quantity Quantity, dt time.Time, price Money, orderID string, commission Money) Transaction {
	return Transaction{
		Asset:      asset.Symbol(),
		Quantity:   quantity,
		Price:      price,
		Dt:         dt,
		OrderID:    orderID,
		Commission: commission,
	}
}

// Direction returns Long for purchases and Short for sales.
func (t Transaction) Direction() Direction {
	if t.Quantity.IsNegative() {
		return Short
	}
	return Long
}

// CostWithoutCommission is the signed cost of the shares: negative for sales.
func (t Transaction) CostWithoutCommission() Money {
	return t.Price.Mul(t.Quantity)
}

// CostWithCommission is the signed cash outflow of the trade, commission
// included. For a sale it is minus the net proceeds.
func (t Transaction) CostWithCommission() Money {
	return t.CostWithoutCommission().Add(t.Commission)
}

// description is the ledger text for the trade, e.g. "LONG 100 EQ:AAA 567.00 07/10/2017".
func (t Transaction) description() string {
	return fmt.Sprintf("%s %s %s %s %s",
		t.Direction(), t.Quantity, t.Asset, t.Price.Fixed(2), t.Dt.Format("02/01/2006"))
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s @ %s (order %s, commission %s) on %s",
		t.Direction(), t.Quantity.Abs(), t.Asset, t.Price, t.OrderID, t.Commission, t.Dt.Format(time.RFC3339))
}

// validate checks the trade on its own, independently of any portfolio state.
func (t Transaction) validate() error {
	switch {
	case t.Asset == "":
		return fmt.Errorf("%w: transaction on %s has no asset", ErrMissingAsset, t.Dt.Format(time.RFC3339))
	case t.Quantity.IsZero():
		return fmt.Errorf("%w: transaction quantity for %s must not be zero", ErrInvalidAmount, t.Asset)
	case !t.Price.IsPositive():
		return fmt.Errorf("%w: transaction price for %s must be positive, got %s", ErrInvalidPrice, t.Asset, t.Price)
	case t.Commission.IsNegative():
		return fmt.Errorf("%w: commission for %s must not be negative, got %s", ErrInvalidAmount, t.Asset, t.Commission)
	}
	return nil
}
