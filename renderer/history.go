package renderer

import (
	"bytes"

	"github.com/etnz/broker"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders every event of the portfolio history, in order.
func HistoryMarkdown(p *broker.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title(p, "History"))

	t := p.HistoryTable()
	if t.Len() == 0 {
		doc.PlainText("No events.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Type", "Description", "Debit", "Credit", "Balance"},
		Rows:   [][]string{},
	}
	for i, row := range t.Rows {
		table.Rows = append(table.Rows, []string{
			t.Index[i].Format(date),
			string(row.Type),
			row.Description,
			money(row.Debit),
			money(row.Credit),
			row.Balance.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
