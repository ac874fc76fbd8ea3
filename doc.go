// Package broker is the accounting core of a single trading account in a
// backtest or live-trading session.
//
// A [Portfolio] tracks, in one currency:
//   - the cash balance, changed by subscriptions, withdrawals and trades;
//   - the [Position] held in each asset, with its book cost and market value;
//   - the history of every cash affecting [PortfolioEvent], append-only.
//
// The portfolio is driven by four operations, called in chronological order:
// [Portfolio.SubscribeFunds], [Portfolio.WithdrawFunds],
// [Portfolio.TransactAsset] and [Portfolio.UpdateMarketValueOfAsset]. Each one
// checks all its preconditions before changing anything, so that a failed
// call leaves the portfolio exactly as it was. Failures wrap one of the
// sentinel errors (ErrInvalidDate, ErrInsufficientFunds, ...).
//
// Reporting reads the portfolio through two projections: [Portfolio.Holdings]
// and [Portfolio.HistoryTable].
//
// All amounts are exact decimals, see [Money] and [Quantity].
package broker
