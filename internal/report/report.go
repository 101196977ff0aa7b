// Package report renders the stat bundles as labeled terminal output. It is
// a thin consumer of the stats engine and holds no logic of its own.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/tradelens-dev/tradelens/internal/stats"
)

const dividerWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	gainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Renderer writes report bundles to a single destination.
type Renderer struct {
	w        io.Writer
	currency string
}

// New creates a Renderer. currency is the suffix printed after amounts.
func New(w io.Writer, currency string) *Renderer {
	return &Renderer{w: w, currency: currency}
}

// Daily renders the daily and running overview.
func (r *Renderer) Daily(s *stats.Stats) {
	r.header("Daily and running overview")
	r.line("Date", s.AsOf().Format("02/01/2006"))
	r.amount("P/L today", s.SumDaysBack(0))
	r.amount("P/L this week", s.ThisWeek())
	r.amount("P/L this month", s.ThisMonth())
	r.amount("P/L this year", s.ThisYear())
	r.amount("P/L total", s.Total())
}

// Historical renders the trailing-window overview.
func (r *Renderer) Historical(s *stats.Stats) {
	r.header("Historical overview")
	r.line("Date", s.AsOf().Format("02/01/2006"))
	r.amount("P/L today", s.SumDaysBack(0))
	r.amount("P/L last 7 days", s.SumDaysBack(7))
	r.amount("P/L last month", s.SumMonthsBack(1))
	r.amount("P/L last 3 months", s.SumMonthsBack(3))
	r.amount("P/L last 6 months", s.SumMonthsBack(6))
	r.amount("P/L total", s.Total())
}

// Summary renders the account summary. Figures that are undefined for the
// loaded ledger (balance of an empty ledger, win ratio with no winning
// trades) render as "n/a" rather than failing the report.
func (r *Renderer) Summary(s *stats.Stats) {
	r.header("Account summary")

	balance, err := s.Balance()
	if err != nil {
		r.line("Account balance", "n/a")
	} else {
		r.line("Account balance", balance+" "+r.currency)
	}

	r.line("Total trades", fmt.Sprintf("%d", s.TotalTrades()))

	feeCount, feeSum := s.OvernightFees()
	r.line("Overnight fees", fmt.Sprintf("%d", feeCount))
	r.amount("Overnight fees sum", feeSum)

	r.amount("Deposits", s.Deposits())
	r.amount("Withdrawals", s.Withdrawals())

	ratio, err := s.WinRatio()
	if err != nil {
		r.line("Win ratio", "n/a")
	} else {
		r.line("Win ratio", ratio.StringFixed(2))
	}
}

// All renders every bundle in order.
func (r *Renderer) All(s *stats.Stats) {
	r.Daily(s)
	r.Historical(s)
	r.Summary(s)
}

func (r *Renderer) header(title string) {
	fmt.Fprintln(r.w, faintStyle.Render(strings.Repeat("-", dividerWidth)))
	fmt.Fprintln(r.w, titleStyle.Render(title))
}

func (r *Renderer) line(label, value string) {
	fmt.Fprintf(r.w, "%s: %s\n", label, value)
}

func (r *Renderer) amount(label string, d decimal.Decimal) {
	text := d.StringFixed(2) + " " + r.currency
	if d.IsNegative() {
		text = lossStyle.Render(text)
	} else if d.IsPositive() {
		text = gainStyle.Render(text)
	}
	r.line(label, text)
}
