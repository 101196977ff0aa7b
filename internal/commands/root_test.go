package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../testdata/transaction_history.csv"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDailyCommand(t *testing.T) {
	out, err := execute(t, "", "daily", "--file", fixture, "--as-of", "2025-03-14")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily and running overview")
	assert.Contains(t, out, "Date: 14/03/2025")
	assert.Contains(t, out, "200.50 kr")
	assert.Contains(t, out, "388.15 kr")
}

func TestHistoryCommand(t *testing.T) {
	out, err := execute(t, "", "history", "--file", fixture, "--as-of", "2025-03-14")
	require.NoError(t, err)
	assert.Contains(t, out, "Historical overview")
	assert.Contains(t, out, "P/L last 3 months:")
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "", "summary", "--file", fixture, "--as-of", "2025-03-14")
	require.NoError(t, err)
	assert.Contains(t, out, "Account balance: 10250.50 kr")
	assert.Contains(t, out, "Total trades: 3")
	assert.Contains(t, out, "Win ratio: 0.33")
}

func TestAllCommand(t *testing.T) {
	out, err := execute(t, "", "all", "--file", fixture, "--as-of", "2025-03-14")
	require.NoError(t, err)
	assert.Contains(t, out, "Daily and running overview")
	assert.Contains(t, out, "Historical overview")
	assert.Contains(t, out, "Account summary")
}

func TestMissingLedgerFileIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")
	_, err := execute(t, "", "daily", "--file", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening ledger")
}

func TestBadAsOfFlag(t *testing.T) {
	_, err := execute(t, "", "daily", "--file", fixture, "--as-of", "14/03/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--as-of")
}

func TestMenu_ValidSelection(t *testing.T) {
	out, err := execute(t, "1\n", "--file", fixture, "--as-of", "2025-03-14")
	require.NoError(t, err)
	assert.Contains(t, out, "Select view:")
	assert.Contains(t, out, "Daily and running overview")
}

func TestMenu_ShowAll(t *testing.T) {
	out, err := execute(t, "4\n", "--file", fixture, "--as-of", "2025-03-14")
	require.NoError(t, err)
	assert.Contains(t, out, "Account summary")
}

func TestMenu_InvalidSelection(t *testing.T) {
	for _, stdin := range []string{"0\n", "5\n", "x\n", "\n", ""} {
		// The ledger path is bogus on purpose: an invalid selection must
		// exit cleanly before any analysis is attempted.
		out, err := execute(t, stdin, "--file", "does-not-exist.csv")
		require.NoError(t, err, "stdin=%q", stdin)
		assert.Contains(t, out, "Invalid selection", "stdin=%q", stdin)
		assert.NotContains(t, out, "overview", "stdin=%q", stdin)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit")
}
