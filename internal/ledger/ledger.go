// Package ledger loads a broker-exported transaction history into an
// immutable in-memory snapshot. The export is a semicolon-delimited UTF-8
// file with a header row; the most recent transaction is the first data row.
package ledger

import (
	"errors"

	"github.com/tradelens-dev/tradelens/internal/model"
)

// ErrMissingColumn reports a required header column that could not be resolved.
var ErrMissingColumn = errors.New("required column missing")

// ErrEmptyLedger reports a ledger with no data rows.
var ErrEmptyLedger = errors.New("ledger has no transactions")

// Ledger is the loaded snapshot. Rows are retained on two tiers: every
// non-blank data row is kept raw (Balance and the action-based counters read
// those), while only rows with a parseable amount become Transactions (all
// sums read those). Both keep file order: index 0 is the most recent row.
type Ledger struct {
	rows    [][]string
	txns    []model.Transaction
	cols    columns
	skipped int
}

// Rows returns the number of raw data rows, including rows whose amount
// failed to parse.
func (l *Ledger) Rows() int { return len(l.rows) }

// TransactionCount returns the number of rows with a parseable amount.
func (l *Ledger) TransactionCount() int { return len(l.txns) }

// Skipped returns the number of rows excluded from Transactions because
// their amount failed to parse.
func (l *Ledger) Skipped() int { return l.skipped }

// Transactions returns a copy of the parsed transactions in file order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Actions returns the action field of every raw row in file order. Rows too
// short to contain the action column yield an empty string.
func (l *Ledger) Actions() []string {
	out := make([]string, len(l.rows))
	for i, row := range l.rows {
		out[i] = field(row, l.cols.action)
	}
	return out
}

// Balance returns the balance field of the most recent raw row, as exported.
// The value is not summed or reparsed.
func (l *Ledger) Balance() (string, error) {
	if len(l.rows) == 0 {
		return "", ErrEmptyLedger
	}
	return field(l.rows[0], l.cols.balance), nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
