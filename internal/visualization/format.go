package visualization

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const currencySymbol = "₹"

// SummaryDisplay is Summary rendered for people.
type SummaryDisplay struct {
	TotalIncome   string
	TotalExpenses string
	NetSavings    string
}

// FormatAmount renders an amount with the currency glyph, thousands
// separators and at most three fraction digits: ₹50,000, ₹-7,000, ₹1,234.5.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(3)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.Truncate(0)
	out := currencySymbol + sign + humanize.BigComma(whole.BigInt())
	if fraction := rounded.Sub(whole); !fraction.IsZero() {
		out += strings.TrimPrefix(fraction.String(), "0")
	}
	return out
}

// Display formats the summary scalars. Negative savings are shown as they are.
func (s Summary) Display() SummaryDisplay {
	return SummaryDisplay{
		TotalIncome:   FormatAmount(s.TotalIncome),
		TotalExpenses: FormatAmount(s.TotalExpenses),
		NetSavings:    FormatAmount(s.NetSavings),
	}
}
