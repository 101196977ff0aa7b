// Package stats computes P/L and cash-flow aggregates over a loaded ledger.
// Every method is a pure query: nothing is cached or accumulated between
// calls, and the reference date is fixed at construction so results are
// deterministic.
package stats

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradelens-dev/tradelens/internal/classify"
	"github.com/tradelens-dev/tradelens/internal/ledger"
	"github.com/tradelens-dev/tradelens/internal/model"
)

// ErrNoWinningTrades reports a win ratio that is undefined because the
// ledger holds no winning trades.
var ErrNoWinningTrades = errors.New("no winning trades")

// Stats answers aggregate queries over an immutable ledger snapshot.
type Stats struct {
	ledger *ledger.Ledger
	asOf   time.Time
}

// New creates a Stats engine with an explicit reference date. The date is
// truncated to midnight UTC so that day-window cutoffs compare cleanly
// against the day-granularity transaction dates.
func New(l *ledger.Ledger, asOf time.Time) *Stats {
	y, m, d := asOf.Date()
	return &Stats{
		ledger: l,
		asOf:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

// AsOf returns the reference date used by all date-window queries.
func (s *Stats) AsOf() time.Time { return s.asOf }

// Total returns the sum of all parsed transaction amounts with bank
// transfers excluded, rounded to 2 decimal places.
func (s *Stats) Total() decimal.Decimal {
	return s.sumWhere(func(model.Transaction) bool { return true })
}

// SumDaysBack sums non-transfer transactions dated on or after the
// reference date minus n days. n = 0 covers the reference date only.
func (s *Stats) SumDaysBack(n int) decimal.Decimal {
	cutoff := s.asOf.AddDate(0, 0, -n)
	return s.sumWhere(func(tx model.Transaction) bool {
		return tx.HasDate && !tx.Date.Before(cutoff)
	})
}

// SumMonthsBack sums non-transfer transactions dated within m 30-day
// months of the reference date. The 30-day month is a deliberate
// simplification kept for compatibility, not calendar arithmetic.
func (s *Stats) SumMonthsBack(m int) decimal.Decimal {
	return s.SumDaysBack(m * 30)
}

// ThisWeek sums from the most recent Monday: SumDaysBack(weekdayIndex + 1)
// where Monday is index 0.
func (s *Stats) ThisWeek() decimal.Decimal {
	weekdayIndex := (int(s.asOf.Weekday()) + 6) % 7
	return s.SumDaysBack(weekdayIndex + 1)
}

// ThisMonth sums the last day-of-month days: SumDaysBack(D) on the Dth.
// This approximates "since the 1st" by one day; kept for compatibility.
func (s *Stats) ThisMonth() decimal.Decimal {
	return s.SumDaysBack(s.asOf.Day())
}

// ThisYear sums non-transfer transactions whose year equals the reference
// year.
func (s *Stats) ThisYear() decimal.Decimal {
	year := s.asOf.Year()
	return s.sumWhere(func(tx model.Transaction) bool {
		return tx.HasDate && tx.Date.Year() == year
	})
}

// Deposits returns the sum of non-transfer transactions with a
// non-negative amount. Winning trades count as deposits; the split is by
// sign only.
func (s *Stats) Deposits() decimal.Decimal {
	return s.sumWhere(func(tx model.Transaction) bool {
		return !tx.Amount.IsNegative()
	})
}

// Withdrawals returns the sum of non-transfer transactions with a negative
// amount.
func (s *Stats) Withdrawals() decimal.Decimal {
	return s.sumWhere(func(tx model.Transaction) bool {
		return tx.Amount.IsNegative()
	})
}

// BankTransfers returns the signed sum of all bank-transfer transactions.
func (s *Stats) BankTransfers() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range s.ledger.Transactions() {
		if classify.IsBankTransfer(tx.Description) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum.Round(2)
}

// Balance returns the balance field of the most recent raw row, as
// exported.
func (s *Stats) Balance() (string, error) {
	return s.ledger.Balance()
}

// WinRatio returns losing trades divided by winning trades, rounded to 2
// decimal places. The loss-over-win definition is the established contract
// for this figure. Returns ErrNoWinningTrades when no row carries a
// winning-trade action.
func (s *Stats) WinRatio() (decimal.Decimal, error) {
	var wins, losses int64
	for _, action := range s.ledger.Actions() {
		switch classify.TradeOutcome(action) {
		case classify.OutcomeWin:
			wins++
		case classify.OutcomeLoss:
			losses++
		}
	}
	if wins == 0 {
		return decimal.Zero, ErrNoWinningTrades
	}
	return decimal.NewFromInt(losses).Div(decimal.NewFromInt(wins)).Round(2), nil
}

// TotalTrades returns the parsed transaction count minus the number of raw
// rows whose action marks a non-trade event.
func (s *Stats) TotalTrades() int {
	nonTrades := 0
	for _, action := range s.ledger.Actions() {
		if classify.TradeOutcome(action) == classify.OutcomeNone {
			nonTrades++
		}
	}
	return s.ledger.TransactionCount() - nonTrades
}

// OvernightFees returns the count and signed sum of overnight-financing
// events, rounded to 2 decimal places.
func (s *Stats) OvernightFees() (int, decimal.Decimal) {
	count := 0
	sum := decimal.Zero
	for _, tx := range s.ledger.Transactions() {
		if classify.IsOvernightFee(tx.Description) {
			count++
			sum = sum.Add(tx.Amount)
		}
	}
	return count, sum.Round(2)
}

// sumWhere sums parsed non-transfer transactions matching keep, rounded to
// 2 decimal places. Bank transfers are excluded before keep is consulted.
func (s *Stats) sumWhere(keep func(model.Transaction) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range s.ledger.Transactions() {
		if classify.IsBankTransfer(tx.Description) {
			continue
		}
		if keep(tx) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum.Round(2)
}
