// =============================================================================
// Amazon Order Ledger - Root Command
// =============================================================================
//
// COBRA CLI STRUCTURE:
//   rootCmd (amzledger)
//   ├── processCmd  (amzledger process)
//   ├── validateCmd (amzledger validate)
//   └── versionCmd  (amzledger version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile is the optional YAML configuration file. Empty means built-in
// defaults, which match a stock Amazon export.
var cfgFile string

// verbose enables debug logging.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "amzledger",
	Short: "Consolidate Amazon order-history exports into a transaction ledger",
	Long: `amzledger turns a flat Amazon order-history export (one row per shipped
item) into a consolidated transaction ledger (one row per financial charge or
refund event) for reconciliation against credit-card statements.

Line items are grouped by (order id, shipment item subtotal): Amazon splits
one order into multiple charges and refunds of differing amounts, and the
exact-amount key keeps those apart while merging identical sub-charges into
one ledger line.

Example Usage:
  amzledger process orders.csv ledger.csv
  amzledger process orders.csv ledger.csv --returns returns.csv
  amzledger validate orders.csv`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Fatal errors exit non-zero; runs that only
// skipped individual malformed rows exit zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional YAML configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
