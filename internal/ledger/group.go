// =============================================================================
// Amazon Order Ledger - Grouping Key Resolver
// =============================================================================
//
// Two line items belong to the same real-world transaction if and only if
// they agree exactly on (order id, subtotal amount). Amazon splits one order
// into multiple charges/refunds of differing amounts (partial shipments,
// partial refunds); keying on the amount keeps those apart while still
// merging genuinely identical sub-charges into one ledger line.
//
// Equality is exact decimal equality. No tolerance, no rounding: tolerance
// could silently merge legitimately distinct transactions.
//
// =============================================================================

package ledger

// GroupKey is the composite transaction identity. The amount participates as
// its canonical decimal string (trailing zeros trimmed), so numerically equal
// subtotals such as 10.0 and 10.00 resolve to the same key.
type GroupKey struct {
	OrderID string
	Amount  string
}

// KeyFor computes the grouping key for a line item.
func KeyFor(item LineItem) GroupKey {
	return GroupKey{OrderID: item.OrderID, Amount: item.Subtotal.String()}
}

// Group is a bucket of line items sharing one GroupKey. A single-member
// group is still a valid transaction of size one.
type Group struct {
	Key   GroupKey
	Items []LineItem
}

// GroupItems buckets line items by GroupKey.
//
// Grouping is stable in both dimensions: buckets appear in order of their
// first line item, and members keep the relative order they were encountered
// in the combined input stream (orders before returns, file order within
// each file).
func GroupItems(items []LineItem) []Group {
	index := make(map[GroupKey]int, len(items))
	groups := make([]Group, 0, len(items))

	for _, item := range items {
		key := KeyFor(item)
		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, Group{Key: key})
			i = len(groups) - 1
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
