package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	assert.False(t, FileExists(dir), "directories do not count as files")
}

func TestEnsureDirCreatesParents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	require.NoError(t, EnsureDir(dir))
}

func TestWriteRunReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	started := time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)

	path, err := WriteRunReport(dir, RunReport{
		RunID:        "abc123",
		Started:      started,
		OrdersFile:   "orders.csv",
		ReturnsFile:  "returns.csv",
		OutputFile:   "ledger.csv",
		RowsRead:     10,
		RowsSkipped:  2,
		Transactions: 7,
		Warnings:     []string{"orders row 3: missing order id (Order ID)"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run_20240105_103000_abc123.log"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Run:          abc123")
	assert.Contains(t, content, "Returns file: returns.csv")
	assert.Contains(t, content, "Rows read:    10")
	assert.Contains(t, content, "  - orders row 3: missing order id (Order ID)")
}

func TestWriteRunReportOmitsEmptySections(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := WriteRunReport(dir, RunReport{
		RunID:      "noret",
		Started:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		OrdersFile: "orders.csv",
		RowsRead:   3,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Returns file:")
	assert.NotContains(t, string(data), "Skipped rows:")
}
