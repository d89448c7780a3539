// =============================================================================
// Amazon Order Ledger - Validate Command
// =============================================================================
//
// COMMAND USAGE:
//   amzledger validate ORDERS_FILE [--returns PATH]
//
// Runs the read and normalization stages only and reports every row that
// the process command would skip, without writing any output. Useful for
// checking an export before committing to a ledger.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/amzledger/internal/config"
	"github.com/mwhitfield/amzledger/internal/ledger"
	"github.com/mwhitfield/amzledger/internal/tabular"
)

var validateReturnsPath string

var validateCmd = &cobra.Command{
	Use:   "validate ORDERS_FILE",
	Short: "Check an export for rows the ledger conversion would skip",

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&validateReturnsPath,
		"returns",
		"",
		"Path to an optional returns export to validate as well",
	)
}

func runValidate(ordersPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	mapping := cfg.RowMapping()

	rows, warnings, err := validateFile(ordersPath, ledger.SourceOrders, cfg.Encoding, mapping)
	if err != nil {
		return err
	}
	if validateReturnsPath != "" {
		returnRows, returnWarnings, err := validateFile(validateReturnsPath, ledger.SourceReturns, cfg.Encoding, mapping)
		if err != nil {
			return err
		}
		rows += returnRows
		warnings = append(warnings, returnWarnings...)
	}

	for _, w := range warnings {
		fmt.Printf("  ✗ %s\n", w.Error())
	}
	fmt.Printf("%d rows checked, %d would be skipped\n", rows, len(warnings))
	return nil
}

func validateFile(path string, src ledger.Source, encoding string, m ledger.RowMapping) (int, []*ledger.RowError, error) {
	table, err := tabular.Read(path, encoding)
	if err != nil {
		return 0, nil, err
	}
	_, warnings := ledger.NormalizeTable(table.Rows, src, m)
	return len(table.Rows), warnings, nil
}
