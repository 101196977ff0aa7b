package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tradelens-dev/tradelens/internal/model"
)

// Header column names as the broker exports them. The amount column appears
// as "Amount" or, in an older export variant, "Profit".
const (
	colDate        = "Transaction Date"
	colDescription = "Description"
	colAction      = "Action"
	colAmount      = "Amount"
	colAmountAlt   = "Profit"
	colBalance     = "Balance"
)

// dateFormat is permissive about zero-padding, like the export itself.
// An optional time-of-day component after the date is ignored.
const dateFormat = "2/1/2006"

// columns maps logical fields to resolved header positions.
type columns struct {
	date    int
	desc    int
	action  int
	amount  int
	balance int
}

// Load reads the ledger file at path. A missing or unreadable file is fatal.
func Load(path string, log *zap.Logger) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	l, err := Read(f, log)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return l, nil
}

// Read parses a semicolon-delimited ledger export. The first row must be a
// header naming all required columns; per-row parse failures are logged and
// recovered, never propagated.
func Read(r io.Reader, log *zap.Logger) (*Ledger, error) {
	if log == nil {
		log = zap.NewNop()
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row: %w", ErrMissingColumn)
	}

	cols, err := resolveColumns(records[0])
	if err != nil {
		return nil, err
	}

	l := &Ledger{cols: cols}
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		l.rows = append(l.rows, rec)

		txn, err := parseRow(rec, cols)
		if err != nil {
			l.skipped++
			log.Debug("skipping unparseable row",
				zap.Int("row", i+2),
				zap.Error(err))
			continue
		}
		l.txns = append(l.txns, txn)
	}

	log.Info("ledger loaded",
		zap.Int("rows", len(l.rows)),
		zap.Int("transactions", len(l.txns)),
		zap.Int("skipped", l.skipped))

	return l, nil
}

// resolveColumns finds each required column by header name, in any order.
func resolveColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	cols := columns{}
	lookup := func(name string, dst *int) error {
		i, ok := index[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		*dst = i
		return nil
	}

	if err := lookup(colDate, &cols.date); err != nil {
		return columns{}, err
	}
	if err := lookup(colDescription, &cols.desc); err != nil {
		return columns{}, err
	}
	if err := lookup(colAction, &cols.action); err != nil {
		return columns{}, err
	}
	if err := lookup(colAmount, &cols.amount); err != nil {
		if err := lookup(colAmountAlt, &cols.amount); err != nil {
			return columns{}, fmt.Errorf("%w: %q or %q", ErrMissingColumn, colAmount, colAmountAlt)
		}
	}
	if err := lookup(colBalance, &cols.balance); err != nil {
		return columns{}, err
	}
	return cols, nil
}

// parseRow decodes one raw row into a Transaction. Only an unparseable
// amount rejects the row; a malformed date keeps the row but marks it
// unusable for date-filtered aggregates.
func parseRow(rec []string, cols columns) (model.Transaction, error) {
	raw := field(rec, cols.amount)
	if raw == "" {
		return model.Transaction{}, fmt.Errorf("missing amount field")
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}

	txn := model.Transaction{
		Description: field(rec, cols.desc),
		Action:      field(rec, cols.action),
		Amount:      amount,
		Balance:     field(rec, cols.balance),
	}

	// "28/08/2026" or "28/08/2026 14:32:05"; the time part is dropped.
	if parts := strings.Fields(field(rec, cols.date)); len(parts) > 0 {
		if date, err := time.Parse(dateFormat, parts[0]); err == nil {
			txn.Date = date
			txn.HasDate = true
		}
	}

	return txn, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
