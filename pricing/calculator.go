package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"forwardworkx-proposals/models"
)

// TaxRate is the GST applied to one-time charges. Fixed, not configurable.
const TaxRate = 0.18

// Summary holds the totals derived from a cart. One-time and monthly
// figures are strictly separate: monthly charges carry no tax line and are
// never folded into the one-time total.
type Summary struct {
	OneTimeSubtotal float64
	TaxAmount       float64
	OneTimeTotal    float64
	MonthlySubtotal float64
}

// Summarize recomputes all totals from the given lines. Pure and
// deterministic; totals are never persisted, only recomputed on demand.
func Summarize(lines []models.LineItem) Summary {
	var s Summary
	for _, line := range lines {
		qty := float64(line.Quantity)
		s.OneTimeSubtotal += line.Price * qty
		s.MonthlySubtotal += line.MonthlyPrice * qty
	}
	s.TaxAmount = s.OneTimeSubtotal * TaxRate
	s.OneTimeTotal = s.OneTimeSubtotal + s.TaxAmount
	return s
}

// LineTotal is the one-time total for a single line
func LineTotal(line models.LineItem) float64 {
	return line.Price * float64(line.Quantity)
}

// CombinedLineTotal is the display-only per-line figure shown in the cart
// sidebar: one-time plus monthly, times quantity. Not a financial total and
// never summed.
func CombinedLineTotal(line models.LineItem) float64 {
	return (line.Price + line.MonthlyPrice) * float64(line.Quantity)
}

var printer = message.NewPrinter(language.English)

// FormatINR renders an amount with locale thousands separators, e.g.
// "12,500". Whole amounts drop the fraction; anything else keeps two
// places. Callers add the "INR " or "₹" prefix themselves.
func FormatINR(amount float64) string {
	if amount == math.Trunc(amount) {
		return printer.Sprintf("%.0f", amount)
	}
	return printer.Sprintf("%.2f", amount)
}
