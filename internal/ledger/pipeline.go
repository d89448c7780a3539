// =============================================================================
// Amazon Order Ledger - Core Pipeline
// =============================================================================
//
// The core is a pure function from line items to an ordered transaction
// sequence:
//
//   line items -> grouped buckets -> aggregated transactions
//              -> enriched transactions -> date-descending sequence
//
// Data flows strictly left to right; no feedback loops, no shared mutable
// state between stages, no state across runs. The whole input is processed
// in memory: a group's last member may appear anywhere in the stream,
// including in the separately supplied returns file, so no group can be
// finalized before the full pass.
//
// =============================================================================

package ledger

// Build runs grouping, aggregation, enrichment and ordering over an already
// normalized item sequence (orders rows first, then returns rows, each in
// file order). urlTemplate may be empty to use the Amazon default.
func Build(items []LineItem, urlTemplate string) []Transaction {
	txns := AggregateGroups(GroupItems(items))
	EnrichTransactions(txns, urlTemplate)
	SortTransactions(txns)
	return txns
}
