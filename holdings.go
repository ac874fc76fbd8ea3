package broker

import (
	"maps"
	"slices"
	"time"
)

// Holding is the summary of one position, as reported by Holdings.
type Holding struct {
	Quantity    Quantity
	BookCost    Money
	MarketValue Money
	Gain        Money
	PercGain    Percent
}

// MarshalJSON implements the json.Marshaler interface for Holding.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("quantity", h.Quantity)
	w.Append("book_cost", h.BookCost)
	w.Append("market_value", h.MarketValue)
	w.Append("gain", h.Gain)
	w.Append("perc_gain", float64(h.PercGain))
	return w.MarshalJSON()
}

// Holdings maps asset symbols to the summary of their position.
type Holdings map[string]Holding

// Symbols returns the sorted symbols.
func (h Holdings) Symbols() []string { return slices.Sorted(maps.Keys(h)) }

// MarshalJSON encodes holdings as an object keyed by symbol, in symbol order.
func (h Holdings) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, symbol := range h.Symbols() {
		w.Append(symbol, h[symbol])
	}
	return w.MarshalJSON()
}

// Holdings returns the summary of every position currently held. It is
// empty, not nil, when there are none.
func (p *Portfolio) Holdings() Holdings {
	out := make(Holdings, len(p.positions))
	for symbol, pos := range p.positions {
		out[symbol] = Holding{
			Quantity:    pos.Quantity,
			BookCost:    pos.BookCost,
			MarketValue: pos.MarketValue,
			Gain:        pos.Gain(),
			PercGain:    pos.PercGain(),
		}
	}
	return out
}

// HistoryIndex is the name of the index of a HistoryTable.
const HistoryIndex = "date"

// HistoryColumns returns the column names of a HistoryTable.
func HistoryColumns() []string {
	return []string{"type", "description", "debit", "credit", "balance"}
}

// HistoryRow is one line of a HistoryTable.
type HistoryRow struct {
	Type        EventType
	Description string
	Debit       Money
	Credit      Money
	Balance     Money
}

// HistoryTable is the tabular export of the portfolio history, indexed by
// event time.
type HistoryTable struct {
	Index []time.Time
	Rows  []HistoryRow
}

// Len returns the number of rows.
func (t HistoryTable) Len() int { return len(t.Rows) }

// Columns returns the column names.
func (t HistoryTable) Columns() []string { return HistoryColumns() }

// MarshalJSON encodes the table with its index, columns and data, row by row.
func (t HistoryTable) MarshalJSON() ([]byte, error) {
	index := make([]string, len(t.Index))
	for i, dt := range t.Index {
		index[i] = dt.Format(time.RFC3339)
	}
	data := make([][]any, len(t.Rows))
	for i, r := range t.Rows {
		data[i] = []any{r.Type, r.Description, r.Debit, r.Credit, r.Balance}
	}
	var w jsonObjectWriter
	w.Append("index_name", HistoryIndex)
	w.Append("columns", t.Columns())
	w.Append("index", index)
	w.Append("data", data)
	return w.MarshalJSON()
}

// HistoryTable returns the history as a table, in event order.
func (p *Portfolio) HistoryTable() HistoryTable {
	t := HistoryTable{
		Index: make([]time.Time, 0, len(p.history)),
		Rows:  make([]HistoryRow, 0, len(p.history)),
	}
	for _, e := range p.history {
		t.Index = append(t.Index, e.Dt)
		t.Rows = append(t.Rows, HistoryRow{
			Type:        e.Type,
			Description: e.Description,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Balance:     e.Balance,
		})
	}
	return t
}
