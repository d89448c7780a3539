// =============================================================================
// Amazon Order Ledger - File Utilities
// =============================================================================
//
// Small filesystem helpers shared by the commands, plus the run-report
// writer. A run report is produced whenever rows were skipped, so a ledger
// that silently lost rows always leaves an audit trail next to the output.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// RUN REPORTS
// =============================================================================

// RunReport summarizes one processing run for the audit trail.
type RunReport struct {
	// RunID uniquely identifies the run and is stamped into the file name.
	RunID string

	Started time.Time

	OrdersFile  string
	ReturnsFile string // empty when no returns table was supplied
	OutputFile  string

	RowsRead     int
	RowsSkipped  int
	Transactions int

	// Warnings are the rendered skip reasons, one per dropped row.
	Warnings []string
}

// WriteRunReport writes the report as a plain-text file named
// run_<timestamp>_<run id>.log under dir and returns its path.
func WriteRunReport(dir string, report RunReport) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	name := fmt.Sprintf("run_%s_%s.log", report.Started.Format("20060102_150405"), report.RunID)
	path := filepath.Join(dir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "Run:          %s\n", report.RunID)
	fmt.Fprintf(&b, "Started:      %s\n", report.Started.Format(time.RFC3339))
	fmt.Fprintf(&b, "Orders file:  %s\n", report.OrdersFile)
	if report.ReturnsFile != "" {
		fmt.Fprintf(&b, "Returns file: %s\n", report.ReturnsFile)
	}
	if report.OutputFile != "" {
		fmt.Fprintf(&b, "Output file:  %s\n", report.OutputFile)
	}
	fmt.Fprintf(&b, "Rows read:    %d\n", report.RowsRead)
	fmt.Fprintf(&b, "Rows skipped: %d\n", report.RowsSkipped)
	fmt.Fprintf(&b, "Transactions: %d\n", report.Transactions)

	if len(report.Warnings) > 0 {
		b.WriteString("\nSkipped rows:\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write run report: %w", err)
	}
	return path, nil
}
