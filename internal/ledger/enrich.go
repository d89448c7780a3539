// =============================================================================
// Amazon Order Ledger - Enricher
// =============================================================================

package ledger

import (
	"net/url"
	"strings"
)

// DefaultOrderURLTemplate is the Amazon order-details page. The {order_id}
// placeholder is substituted, percent-escaped, at enrichment time.
const DefaultOrderURLTemplate = "https://amazon.com/gp/your-account/order-details?orderID={order_id}"

// OrderURL renders the order-details URL for an order id. Pure string
// construction, no network access; a syntactically valid order id always
// yields a valid URL.
func OrderURL(template, orderID string) string {
	if template == "" {
		template = DefaultOrderURLTemplate
	}
	return strings.ReplaceAll(template, "{order_id}", url.QueryEscape(orderID))
}

// EnrichTransactions attaches the derived OrderURL to every transaction.
func EnrichTransactions(txns []Transaction, template string) {
	for i := range txns {
		txns[i].OrderURL = OrderURL(template, txns[i].OrderID)
	}
}
