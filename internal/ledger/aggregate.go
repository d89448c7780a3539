// =============================================================================
// Amazon Order Ledger - Transaction Aggregator
// =============================================================================

package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one consolidated financial event (charge or refund),
// corresponding to one real-world credit-card line. Built once per group,
// mutated only by enrichment (the URL) and never after ordering.
type Transaction struct {
	// OrderDate is the date of the group's first member. Members of a group
	// can in principle disagree on date (a return whose amount coincidentally
	// matches the original charge); first-seen wins, as a documented
	// simplification rather than a silent bug.
	OrderDate time.Time

	OrderID string

	// Amount is the exact decimal sum of all member subtotals, sign
	// preserved. No intermediate rounding takes place.
	Amount decimal.Decimal

	// ProductNames holds every member's product name in member order,
	// including duplicates and empty names. Never re-sorted, never deduped.
	ProductNames []string

	// OrderURL is derived during enrichment; empty until then.
	OrderURL string
}

// AggregateGroup reduces one bucket to exactly one Transaction. Pure and
// deterministic: same bucket in, same Transaction out, always.
func AggregateGroup(g Group) Transaction {
	txn := Transaction{
		OrderID:      g.Key.OrderID,
		Amount:       decimal.Zero,
		ProductNames: make([]string, 0, len(g.Items)),
	}
	for i, item := range g.Items {
		if i == 0 {
			txn.OrderDate = item.OrderDate
		}
		txn.Amount = txn.Amount.Add(item.Subtotal)
		txn.ProductNames = append(txn.ProductNames, item.ProductName)
	}
	return txn
}

// AggregateGroups reduces every bucket, preserving bucket order.
func AggregateGroups(groups []Group) []Transaction {
	txns := make([]Transaction, len(groups))
	for i, g := range groups {
		txns[i] = AggregateGroup(g)
	}
	return txns
}
