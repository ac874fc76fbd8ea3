package broker

import "errors"

// Errors returned by Portfolio operations. They are always wrapped with
// details, test them with errors.Is.
var (
	// ErrInvalidDate is returned when a time precedes the reference time of
	// the portfolio or of the position being valued.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidAmount is returned for negative cash amounts, commissions or
	// zero quantities.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when an operation would make cash negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidPrice is returned for non-positive prices.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrCurrencyMismatch is returned for amounts tagged with a currency
	// other than the portfolio's.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrMissingAsset is returned for a transaction without asset symbol.
	ErrMissingAsset = errors.New("missing asset")
)
