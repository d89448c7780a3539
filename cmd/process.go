// =============================================================================
// Amazon Order Ledger - Process Command
// =============================================================================
//
// COMMAND USAGE:
//   amzledger process ORDERS_FILE OUTPUT_FILE [flags]
//
// FLAGS:
//   --returns PATH : Optional returns export, merged into the same ledger
//   --dry-run      : Run the full pipeline without writing any files
//
// Row-level problems (missing order id, malformed amount or date) drop the
// offending row with a warning and the run still succeeds; file-level
// problems (missing input, undecodable encoding) abort with a non-zero exit
// and no output file.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/amzledger/internal/config"
	"github.com/mwhitfield/amzledger/internal/logging"
	"github.com/mwhitfield/amzledger/internal/processor"
)

// returnsPath is the optional returns export.
var returnsPath string

// dryRun simulates processing without writing output files.
var dryRun bool

var processCmd = &cobra.Command{
	Use:   "process ORDERS_FILE OUTPUT_FILE",
	Short: "Convert an order-history export into a consolidated ledger CSV",
	Long: `The process command reads an Amazon order-history export (CSV or XLSX),
optionally merges a returns export of the same shape, consolidates line items
into transactions and writes the ledger CSV:

  Order Date, Order ID, Transaction Amount, Product Names, Order URL

Transactions are ordered most recent first. When rows had to be skipped, a
run report listing each dropped row is written to the report directory.`,

	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&returnsPath,
		"returns",
		"",
		"Path to an optional returns export merged into the ledger",
	)
	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline without writing output files",
	)
}

func runProcess(ordersPath, outputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	res, err := processor.Run(processor.Options{
		OrdersPath:  ordersPath,
		ReturnsPath: returnsPath,
		OutputPath:  outputPath,
		DryRun:      dryRun,
		Config:      cfg,
		Logger:      logging.New(verbose),
	})
	if err != nil {
		return err
	}

	fmt.Println("=== Processing Complete ===")
	fmt.Printf("Rows read:       %d\n", res.Stats.RowsRead)
	fmt.Printf("Rows skipped:    %d\n", res.Stats.RowsSkipped)
	fmt.Printf("Transactions:    %d\n", res.Stats.Transactions)
	fmt.Printf("Time elapsed:    %s\n", res.Stats.ProcessingTime)
	if res.ReportFile != "" {
		fmt.Printf("Run report:      %s\n", res.ReportFile)
	}
	return nil
}
