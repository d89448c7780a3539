// =============================================================================
// Amazon Order Ledger - Ledger CSV Serialization
// =============================================================================

package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Output column order is fixed by the reconciliation contract.
var outputHeader = []string{"Order Date", "Order ID", "Transaction Amount", "Product Names", "Order URL"}

const (
	outputDateFormat = "2006-01-02"

	// ProductNameSeparator joins member product names in the output.
	// Names containing the separator are preserved verbatim; CSV quoting
	// keeps the surrounding fields intact.
	ProductNameSeparator = "; "
)

// WriteLedger serializes transactions as the output CSV: one row per
// transaction, header first. Amounts are rendered with exactly two decimal
// places, '.' separator, no thousands separator, sign only when negative.
func WriteLedger(w io.Writer, txns []Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(outputHeader); err != nil {
		return fmt.Errorf("write ledger header: %w", err)
	}
	for i, txn := range txns {
		rec := []string{
			txn.OrderDate.Format(outputDateFormat),
			txn.OrderID,
			txn.Amount.StringFixed(2),
			strings.Join(txn.ProductNames, ProductNameSeparator),
			txn.OrderURL,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write ledger row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	return nil
}
