// Package renderer renders portfolio reports as markdown.
package renderer

import (
	"github.com/etnz/broker"
)

// date is the layout of dates in reports.
const date = "2006-01-02 15:04"

// money formats an amount for a table cell: zero amounts are left blank.
func money(m broker.Money) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}

// title is the document title of p.
func title(p *broker.Portfolio, report string) string {
	switch {
	case p.Name() != "":
		return report + " of " + p.Name()
	case p.ID() != "":
		return report + " of portfolio " + p.ID()
	default:
		return report
	}
}
