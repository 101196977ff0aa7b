package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a parsed ledger row from the broker export.
type Transaction struct {
	Date        time.Time       // day granularity, midnight UTC; zero when unparseable
	HasDate     bool            // false excludes the row from date-filtered aggregates
	Description string
	Action      string          // broker action, e.g. "Trade Receivable"
	Amount      decimal.Decimal // negative = debit
	Balance     string          // account balance after this transaction, as exported
}
