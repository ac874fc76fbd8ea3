package broker

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// GBP is a helper for test to create pound money from const
func GBP(v float64) Money { return M(v, "GBP") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

var (
	earlierDt   = time.Date(2017, 10, 4, 8, 0, 0, 0, time.UTC)
	startDt     = time.Date(2017, 10, 5, 8, 0, 0, 0, time.UTC)
	laterDt     = time.Date(2017, 10, 6, 8, 0, 0, 0, time.UTC)
	evenLaterDt = time.Date(2017, 10, 7, 8, 0, 0, 0, time.UTC)
	updateDt    = time.Date(2017, 10, 8, 8, 0, 0, 0, time.UTC)
)

// equity is a minimal Asset.
type equity struct {
	name, symbol string
}

func (e equity) Symbol() string { return e.symbol }

var (
	acme = equity{"Acme Inc.", "EQ:AAA"}
	bbb  = equity{"BBB Inc.", "EQ:BBB"}
)

// newTestPortfolio creates a portfolio logging into a test hook.
func newTestPortfolio(t *testing.T, opts Options) (*Portfolio, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	opts.Logger = logger
	p, err := NewPortfolio(startDt, opts)
	if err != nil {
		t.Fatalf("NewPortfolio(%v) failed: %v", opts, err)
	}
	return p, hook
}

// mustDo fails the test on error.
func mustDo(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// state is a deep copy of all the mutable fields of a portfolio.
type state struct {
	cash      Money
	currentDt time.Time
	positions map[string]Position
	history   []PortfolioEvent
}

func snapshot(p *Portfolio) state {
	s := state{
		cash:      p.totalCash,
		currentDt: p.currentDt,
		positions: make(map[string]Position),
		history:   p.History(),
	}
	for k, v := range p.positions {
		s.positions[k] = *v
	}
	return s
}

// checkInvariants verifies the properties that must hold after every operation.
func checkInvariants(t *testing.T, p *Portfolio) {
	t.Helper()
	if got, want := p.TotalEquity(), p.TotalCash().Add(p.TotalNonCashEquity()); !got.Equal(want) {
		t.Errorf("TotalEquity() = %v, want cash + non cash equity %v", got, want)
	}
	if p.TotalCash().IsNegative() {
		t.Errorf("TotalCash() = %v, want >= 0", p.TotalCash())
	}
	if h := p.History(); len(h) > 0 {
		if last := h[len(h)-1]; !last.Balance.Equal(p.TotalCash()) {
			t.Errorf("last event balance = %v, want TotalCash() %v", last.Balance, p.TotalCash())
		}
	}
}
