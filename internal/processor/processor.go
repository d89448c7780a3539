// =============================================================================
// Amazon Order Ledger - Run Orchestrator
// =============================================================================
//
// The processor drives one complete run:
//
//   1. Read the orders table (CSV or XLSX)
//   2. Read the returns table, when supplied
//   3. Normalize all rows, collecting row-level warnings
//   4. Build the ledger (group -> aggregate -> enrich -> sort)
//   5. Write the output CSV
//   6. Write a run report when rows were skipped
//
// The pipeline is single-threaded and fully synchronous, and the whole
// input is held in memory: order-history exports are bounded (thousands of
// rows) and grouping needs a full pass before any group can be finalized.
// Each run is independent; no state survives between invocations.
//
// =============================================================================

package processor

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/amzledger/internal/config"
	"github.com/mwhitfield/amzledger/internal/ledger"
	"github.com/mwhitfield/amzledger/internal/logging"
	"github.com/mwhitfield/amzledger/internal/tabular"
	"github.com/mwhitfield/amzledger/pkg/utils"
)

// Options configures a single run.
type Options struct {
	// OrdersPath is the required orders export (CSV or XLSX).
	OrdersPath string

	// ReturnsPath is the optional returns export; empty means none.
	ReturnsPath string

	// OutputPath is where the ledger CSV is written.
	OutputPath string

	// DryRun executes the full pipeline but writes no files.
	DryRun bool

	Config *config.Config
	Logger logging.Logger
}

// Result is the outcome of a run.
type Result struct {
	// OutputFile is the written ledger path; empty on dry runs.
	OutputFile string

	// ReportFile is the run-report path; empty when no rows were skipped
	// or on dry runs.
	ReportFile string

	// Warnings lists every dropped row. A run with warnings is still a
	// successful run.
	Warnings []*ledger.RowError

	Stats Stats
}

// Stats carries the run counters shown in the CLI summary.
type Stats struct {
	RowsRead       int
	RowsSkipped    int
	Transactions   int
	ProcessingTime time.Duration
}

// Run executes the pipeline. The returned error is always fatal: the input
// could not be read, or the output could not be written. Row-level problems
// are reported through Result.Warnings instead.
func Run(opts Options) (Result, error) {
	start := time.Now()
	res := Result{}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.New(false)
	}
	mapping := cfg.RowMapping()

	// Read and normalize the orders table.
	log.Info("Reading orders from %s", opts.OrdersPath)
	ordersTable, err := tabular.Read(opts.OrdersPath, cfg.Encoding)
	if err != nil {
		return res, err
	}
	items, warnings := ledger.NormalizeTable(ordersTable.Rows, ledger.SourceOrders, mapping)
	res.Stats.RowsRead = len(ordersTable.Rows)
	log.Debug("Orders: %d rows, %d skipped", len(ordersTable.Rows), len(warnings))

	// Returns rows are appended after all orders rows, in their own file
	// order, so grouping sees the combined stream the contract describes.
	if opts.ReturnsPath != "" {
		log.Info("Reading returns from %s", opts.ReturnsPath)
		returnsTable, err := tabular.Read(opts.ReturnsPath, cfg.Encoding)
		if err != nil {
			return res, err
		}
		returnItems, returnWarnings := ledger.NormalizeTable(returnsTable.Rows, ledger.SourceReturns, mapping)
		items = append(items, returnItems...)
		warnings = append(warnings, returnWarnings...)
		res.Stats.RowsRead += len(returnsTable.Rows)
		log.Debug("Returns: %d rows, %d skipped", len(returnsTable.Rows), len(returnWarnings))
	}

	for _, w := range warnings {
		log.Warn("Skipping row: %s", w.Error())
	}
	res.Warnings = warnings
	res.Stats.RowsSkipped = len(warnings)

	// The core: pure function from line items to the ordered ledger.
	txns := ledger.Build(items, cfg.OrderURLTemplate)
	res.Stats.Transactions = len(txns)
	log.Info("Consolidated %d line items into %d transactions", len(items), len(txns))

	if opts.DryRun {
		log.Info("Dry run: no files written")
		res.Stats.ProcessingTime = time.Since(start)
		return res, nil
	}

	if err := writeLedgerFile(opts.OutputPath, txns); err != nil {
		return res, err
	}
	res.OutputFile = opts.OutputPath
	log.Info("Wrote ledger to %s", opts.OutputPath)

	if len(warnings) > 0 {
		reportPath, err := writeReport(cfg.ReportDir, opts, res, start)
		if err != nil {
			// The ledger itself is intact; losing the audit file is not
			// worth failing the run over.
			log.Warn("Could not write run report: %v", err)
		} else {
			res.ReportFile = reportPath
			log.Info("Wrote run report to %s", reportPath)
		}
	}

	res.Stats.ProcessingTime = time.Since(start)
	return res, nil
}

func writeLedgerFile(path string, txns []ledger.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := ledger.WriteLedger(f, txns); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

func writeReport(dir string, opts Options, res Result, start time.Time) (string, error) {
	rendered := make([]string, len(res.Warnings))
	for i, w := range res.Warnings {
		rendered[i] = w.Error()
	}
	return utils.WriteRunReport(dir, utils.RunReport{
		RunID:        uuid.New().String(),
		Started:      start,
		OrdersFile:   opts.OrdersPath,
		ReturnsFile:  opts.ReturnsPath,
		OutputFile:   res.OutputFile,
		RowsRead:     res.Stats.RowsRead,
		RowsSkipped:  res.Stats.RowsSkipped,
		Transactions: res.Stats.Transactions,
		Warnings:     rendered,
	})
}
