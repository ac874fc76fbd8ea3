package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/broker"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the totals of the portfolio.
func SummaryMarkdown(p *broker.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title(p, "Summary"))
	doc.PlainText(fmt.Sprintf("From %s to %s.\n", p.StartDt().Format(date), p.CurrentDt().Format(date)))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Starting Cash", p.StartingCash().String()},
			{"Cash", p.TotalCash().String()},
			{"Market Value", p.TotalNonCashEquity().String()},
			{"Total Equity", md.Bold(p.TotalEquity().String())},
			{"Realised Gain", p.TotalRealisedGain().SignedString()},
			{"Unrealised Gain", p.TotalUnrealisedGain().SignedString()},
			{"Total Gain", p.TotalGain().SignedString()},
		},
	})

	return doc.String()
}
