// =============================================================================
// Amazon Order Ledger - Main Entry Point
// =============================================================================
//
// amzledger converts a flat Amazon order-history export (one row per shipped
// item) into a consolidated transaction ledger (one row per charge or refund
// event), suitable for reconciliation against credit-card statements.
//
// USAGE:
//   amzledger process ORDERS_CSV OUTPUT_CSV [--returns PATH]
//   amzledger validate ORDERS_CSV [--returns PATH]
//   amzledger version
//
// =============================================================================

package main

import (
	"github.com/mwhitfield/amzledger/cmd"
)

func main() {
	cmd.Execute()
}
