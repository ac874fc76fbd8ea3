package broker

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCurrency is the currency of a Portfolio created without one.
const DefaultCurrency = "USD"

// Options configures a new Portfolio. The zero value is a valid configuration.
type Options struct {
	StartingCash Money              // cash subscribed at start, zero by default
	Currency     string             // opaque currency code, DefaultCurrency if empty
	ID           string             // opaque identifier, none if empty
	Name         string             // opaque label, none if empty
	Logger       logrus.FieldLogger // defaults to the logrus standard logger
}

// Portfolio is the accounting unit of one trading account: cash, positions
// and the history of every cash affecting event, in a single currency.
//
// Portfolio is not safe for concurrent use. Each operation either fully
// succeeds or returns an error leaving the portfolio unchanged.
type Portfolio struct {
	startDt      time.Time
	currentDt    time.Time
	currency     string
	startingCash Money
	id           string
	name         string

	totalCash Money
	positions map[string]*Position
	history   []PortfolioEvent
	realised  Money // from positions closed since the start

	log logrus.FieldLogger
}

// NewPortfolio creates a Portfolio starting at start.
//
// If opts.StartingCash is positive, the history is seeded with a subscription
// on start.
func NewPortfolio(start time.Time, opts Options) (*Portfolio, error) {
	cur := opts.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	p := &Portfolio{
		startDt:   start,
		currentDt: start,
		currency:  cur,
		id:        opts.ID,
		name:      opts.Name,
		positions: make(map[string]*Position),
		history:   make([]PortfolioEvent, 0),
		realised:  M(0, cur),
		log:       logger.WithFields(logrus.Fields{"portfolio": opts.ID, "currency": cur}),
	}

	cash, err := p.amount(opts.StartingCash)
	if err != nil {
		return nil, fmt.Errorf("invalid starting cash: %w", err)
	}
	if cash.IsNegative() {
		return nil, fmt.Errorf("%w: starting cash must not be negative, got %s", ErrInvalidAmount, cash)
	}
	p.startingCash = cash
	p.totalCash = cash
	if cash.IsPositive() {
		p.record(NewSubscriptionEvent(start, cash, cash))
	}
	return p, nil
}

func (p *Portfolio) StartDt() time.Time   { return p.startDt }
func (p *Portfolio) CurrentDt() time.Time { return p.currentDt }
func (p *Portfolio) Currency() string     { return p.currency }
func (p *Portfolio) StartingCash() Money  { return p.startingCash }
func (p *Portfolio) ID() string           { return p.id }
func (p *Portfolio) Name() string         { return p.name }
func (p *Portfolio) TotalCash() Money     { return p.totalCash }

// TotalNonCashEquity is the market value of all positions.
func (p *Portfolio) TotalNonCashEquity() Money {
	return p.sum(func(pos *Position) Money { return pos.MarketValue })
}

// TotalEquity is the cash plus the market value of all positions.
func (p *Portfolio) TotalEquity() Money {
	return p.totalCash.Add(p.TotalNonCashEquity())
}

// TotalBookCost is the book cost of all positions.
func (p *Portfolio) TotalBookCost() Money {
	return p.sum(func(pos *Position) Money { return pos.BookCost })
}

// TotalUnrealisedGain is the gain of all open positions.
func (p *Portfolio) TotalUnrealisedGain() Money {
	return p.sum(func(pos *Position) Money { return pos.Gain() })
}

// TotalRealisedGain is the gain realised by reducing or closing positions,
// including positions that are no longer held.
func (p *Portfolio) TotalRealisedGain() Money {
	return p.realised.Add(p.sum(func(pos *Position) Money { return pos.RealisedGain }))
}

// TotalGain is the realised plus unrealised gain.
func (p *Portfolio) TotalGain() Money {
	return p.TotalRealisedGain().Add(p.TotalUnrealisedGain())
}

func (p *Portfolio) sum(metric func(*Position) Money) Money {
	total := M(0, p.currency)
	for _, pos := range p.positions {
		total = total.Add(metric(pos))
	}
	return total
}

// Position returns a copy of the position held in symbol.
func (p *Portfolio) Position(symbol string) (Position, bool) {
	pos, ok := p.positions[symbol]
	if !ok {
		return Position{}, false
	}
	return *pos, true
}

// Symbols returns the sorted symbols of all positions.
func (p *Portfolio) Symbols() []string {
	return slices.Sorted(maps.Keys(p.positions))
}

// History returns a copy of all events, in the order they were recorded.
func (p *Portfolio) History() []PortfolioEvent {
	return slices.Clone(p.history)
}

// CashBalance returns the cash balance as it was on 'on': the balance of the
// last event not after 'on'.
func (p *Portfolio) CashBalance(on time.Time) Money {
	balance := M(0, p.currency)
	for _, e := range p.history {
		if e.Dt.After(on) {
			break
		}
		balance = e.Balance
	}
	return balance
}

// amount normalizes m to the portfolio currency.
func (p *Portfolio) amount(m Money) (Money, error) {
	switch m.cur {
	case "":
		return m.In(p.currency), nil
	case p.currency:
		return m, nil
	default:
		return m, fmt.Errorf("%w: %s amount in a %s portfolio", ErrCurrencyMismatch, m.cur, p.currency)
	}
}

// checkDate rejects any dt before the current time of the portfolio.
func (p *Portfolio) checkDate(dt time.Time) error {
	if dt.Before(p.currentDt) {
		return fmt.Errorf("%w: %s is before the current time %s", ErrInvalidDate,
			dt.Format(time.RFC3339), p.currentDt.Format(time.RFC3339))
	}
	return nil
}

// record appends e to the history.
func (p *Portfolio) record(e PortfolioEvent) {
	p.history = append(p.history, e)
	p.log.WithFields(logrus.Fields{
		"dt":      e.Dt,
		"type":    e.Type,
		"balance": e.Balance.String(),
	}).Debug(e.Description)
}

// reject logs a refused operation and returns err.
func (p *Portfolio) reject(op string, err error) error {
	p.log.WithField("op", op).WithError(err).Debug("rejected")
	return err
}

// SubscribeFunds credits amount to the cash balance on dt.
func (p *Portfolio) SubscribeFunds(dt time.Time, amount Money) error {
	if err := p.checkDate(dt); err != nil {
		return p.reject("subscribe", err)
	}
	amount, err := p.amount(amount)
	if err != nil {
		return p.reject("subscribe", err)
	}
	if amount.IsNegative() {
		return p.reject("subscribe", fmt.Errorf("%w: cannot subscribe a negative amount %s", ErrInvalidAmount, amount))
	}

	p.totalCash = p.totalCash.Add(amount)
	p.record(NewSubscriptionEvent(dt, amount, p.totalCash))
	p.currentDt = dt
	return nil
}

// WithdrawFunds debits amount from the cash balance on dt.
func (p *Portfolio) WithdrawFunds(dt time.Time, amount Money) error {
	if err := p.checkDate(dt); err != nil {
		return p.reject("withdraw", err)
	}
	amount, err := p.amount(amount)
	if err != nil {
		return p.reject("withdraw", err)
	}
	if amount.IsNegative() {
		return p.reject("withdraw", fmt.Errorf("%w: cannot withdraw a negative amount %s", ErrInvalidAmount, amount))
	}
	if amount.GreaterThan(p.totalCash) {
		return p.reject("withdraw", fmt.Errorf("%w: cannot withdraw %s, cash balance is %s", ErrInsufficientFunds, amount, p.totalCash))
	}

	p.totalCash = p.totalCash.Sub(amount)
	p.record(NewWithdrawalEvent(dt, amount, p.totalCash))
	p.currentDt = dt
	return nil
}

// TransactAsset books an executed trade: it moves the cash, updates the
// position of the asset and records the event.
func (p *Portfolio) TransactAsset(tx Transaction) error {
	if err := p.checkDate(tx.Dt); err != nil {
		return p.reject("transact", err)
	}
	var err error
	if tx.Price, err = p.amount(tx.Price); err != nil {
		return p.reject("transact", err)
	}
	if tx.Commission, err = p.amount(tx.Commission); err != nil {
		return p.reject("transact", err)
	}
	if err := tx.validate(); err != nil {
		return p.reject("transact", err)
	}

	cost := tx.CostWithCommission()
	cash := p.totalCash.Sub(cost)
	if cash.IsNegative() {
		return p.reject("transact", fmt.Errorf("%w: %s costs %s, cash balance is %s", ErrInsufficientFunds, tx.description(), cost, p.totalCash))
	}

	var pos Position
	if current, ok := p.positions[tx.Asset]; ok {
		pos = current.transact(tx)
	} else {
		pos = openPosition(tx)
	}

	debit, credit := cost, M(0, p.currency)
	if tx.Direction() == Short {
		debit, credit = M(0, p.currency), cost.Neg()
	}

	p.totalCash = cash
	if pos.Quantity.IsZero() {
		p.realised = p.realised.Add(pos.RealisedGain)
		delete(p.positions, tx.Asset)
	} else {
		p.positions[tx.Asset] = &pos
	}
	p.record(NewAssetTransactionEvent(tx.Dt, tx.description(), debit, credit, p.totalCash))
	p.currentDt = tx.Dt
	return nil
}

// UpdateMarketValueOfAsset marks the position in symbol at price on dt, and
// returns the updated position.
//
// If symbol is not held it returns nil and no error. It never changes the
// cash, the history or the current time of the portfolio.
func (p *Portfolio) UpdateMarketValueOfAsset(symbol string, price Money, dt time.Time) (*Position, error) {
	current, ok := p.positions[symbol]
	if !ok {
		return nil, nil
	}
	price, err := p.amount(price)
	if err != nil {
		return nil, p.reject("value", err)
	}
	if !price.IsPositive() {
		return nil, p.reject("value", fmt.Errorf("%w: price of %s must be positive, got %s", ErrInvalidPrice, symbol, price))
	}
	if dt.Before(current.LastValuationDt) {
		return nil, p.reject("value", fmt.Errorf("%w: %s is before the last valuation of %s on %s", ErrInvalidDate,
			dt.Format(time.RFC3339), symbol, current.LastValuationDt.Format(time.RFC3339)))
	}

	pos := current.value(price, dt)
	p.positions[symbol] = &pos
	out := pos
	return &out, nil
}

// MarshalJSON encodes a summary of the portfolio: its settings, totals and
// holdings. The history is available separately through HistoryTable.
func (p *Portfolio) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", p.id)
	w.Optional("name", p.name)
	w.Append("currency", p.currency)
	w.Append("start", p.startDt.Format(time.RFC3339))
	w.Append("current", p.currentDt.Format(time.RFC3339))
	w.Append("starting_cash", p.startingCash)
	w.Append("total_cash", p.totalCash)
	w.Append("total_non_cash_equity", p.TotalNonCashEquity())
	w.Append("total_equity", p.TotalEquity())
	w.Append("realised_gain", p.TotalRealisedGain())
	w.Append("unrealised_gain", p.TotalUnrealisedGain())
	w.Append("holdings", p.Holdings())
	return w.MarshalJSON()
}
