package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradelens-dev/tradelens/internal/ledger"
	"github.com/tradelens-dev/tradelens/internal/stats"
)

var asOf = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

const header = "Transaction Date;Description;Action;Amount;Balance\n"

func newStats(t *testing.T, data string) *stats.Stats {
	t.Helper()
	l, err := ledger.Read(strings.NewReader(data), zap.NewNop())
	require.NoError(t, err)
	return stats.New(l, asOf)
}

func TestDaily(t *testing.T) {
	s := newStats(t, header+
		"14/03/2025;Daily Wall Street;Trade Receivable;25.00;125.00\n")

	var buf bytes.Buffer
	New(&buf, "kr").Daily(s)

	out := buf.String()
	assert.Contains(t, out, "Daily and running overview")
	assert.Contains(t, out, "Date: 14/03/2025")
	assert.Contains(t, out, "P/L today:")
	assert.Contains(t, out, "P/L this week:")
	assert.Contains(t, out, "P/L this month:")
	assert.Contains(t, out, "P/L this year:")
	assert.Contains(t, out, "P/L total:")
	assert.Contains(t, out, "25.00 kr")
}

func TestHistorical(t *testing.T) {
	s := newStats(t, header+
		"14/03/2025;Daily Wall Street;Trade Payable;-25.00;75.00\n")

	var buf bytes.Buffer
	New(&buf, "kr").Historical(s)

	out := buf.String()
	assert.Contains(t, out, "Historical overview")
	assert.Contains(t, out, "P/L last 7 days:")
	assert.Contains(t, out, "P/L last month:")
	assert.Contains(t, out, "P/L last 3 months:")
	assert.Contains(t, out, "P/L last 6 months:")
	assert.Contains(t, out, "-25.00 kr")
}

func TestSummary(t *testing.T) {
	s := newStats(t, header+
		"14/03/2025;Daily Wall Street;Trade Receivable;25.00;125.55\n"+
		"13/03/2025;Funding Charges;Funding Charges;-1.20;100.55\n"+
		"12/03/2025;Daily Wall Street;Trade Payable;-10.00;101.75\n")

	var buf bytes.Buffer
	New(&buf, "kr").Summary(s)

	out := buf.String()
	assert.Contains(t, out, "Account summary")
	assert.Contains(t, out, "Account balance: 125.55 kr")
	assert.Contains(t, out, "Total trades: 2")
	assert.Contains(t, out, "Overnight fees: 1")
	assert.Contains(t, out, "-1.20 kr")
	assert.Contains(t, out, "Deposits:")
	assert.Contains(t, out, "Withdrawals:")
	assert.Contains(t, out, "Win ratio: 1.00")
}

func TestSummary_UndefinedFiguresRenderNA(t *testing.T) {
	s := newStats(t, header)

	var buf bytes.Buffer
	New(&buf, "kr").Summary(s)

	out := buf.String()
	assert.Contains(t, out, "Account balance: n/a")
	assert.Contains(t, out, "Win ratio: n/a")
}

func TestAll_RendersEveryBundle(t *testing.T) {
	s := newStats(t, header+
		"14/03/2025;Daily Wall Street;Trade Receivable;25.00;125.00\n")

	var buf bytes.Buffer
	New(&buf, "kr").All(s)

	out := buf.String()
	assert.Contains(t, out, "Daily and running overview")
	assert.Contains(t, out, "Historical overview")
	assert.Contains(t, out, "Account summary")
}

func TestCurrencySuffix(t *testing.T) {
	s := newStats(t, header+
		"14/03/2025;Daily Wall Street;Trade Receivable;25.00;125.00\n")

	var buf bytes.Buffer
	New(&buf, "USD").Daily(s)

	assert.Contains(t, buf.String(), "25.00 USD")
}
