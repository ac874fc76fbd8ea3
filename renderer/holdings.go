package renderer

import (
	"bytes"

	"github.com/etnz/broker"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders one row per position, followed by the cash and
// the totals of the portfolio.
func HoldingsMarkdown(p *broker.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title(p, "Holdings"))
	doc.PlainText("As of " + p.CurrentDt().Format(date) + ", in " + p.Currency() + ".\n")

	holdings := p.Holdings()
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Quantity", "Book Cost", "Market Value", "Gain", "% Gain"},
		Rows:   [][]string{},
	}
	for _, symbol := range holdings.Symbols() {
		h := holdings[symbol]
		table.Rows = append(table.Rows, []string{
			symbol,
			h.Quantity.String(),
			h.BookCost.String(),
			h.MarketValue.String(),
			h.Gain.SignedString(),
			h.PercGain.SignedString(),
		})
	}
	table.Rows = append(table.Rows,
		[]string{"Cash", "", "", p.TotalCash().String(), "", ""},
		[]string{md.Bold("Total"), "", p.TotalBookCost().String(), md.Bold(p.TotalEquity().String()), p.TotalUnrealisedGain().SignedString(), ""},
	)
	doc.Table(table)

	return doc.String()
}
