// =============================================================================
// Amazon Order Ledger - Ordering Stage
// =============================================================================

package ledger

import "sort"

// SortTransactions orders transactions by date, most recent first.
//
// Same-date ties keep the relative order produced by aggregation, which is
// first-appearance order in the combined input. There is deliberately no
// secondary business key; callers needing a strict total order should treat
// same-date transactions as an unordered set.
func SortTransactions(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].OrderDate.After(txns[j].OrderDate)
	})
}
