// =============================================================================
// Amazon Order Ledger - Line Item Normalizer
// =============================================================================
//
// This file defines the canonical line-item representation and the normalizer
// that turns raw tabular rows (column name -> raw string) into typed LineItems.
//
// Both supported source tables (the orders export and the optional returns
// export) share the same column shape and are normalized through the same
// function, distinguished only by a source tag.
//
// =============================================================================

package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which input table a row came from.
type Source string

const (
	// SourceOrders marks rows from the main order-history export.
	SourceOrders Source = "orders"

	// SourceReturns marks rows from the optional returns export. Return
	// amounts already carry their (negative) sign in the source and are
	// never re-signed here.
	SourceReturns Source = "returns"
)

// LineItem is one row of the Amazon export: one product within one
// shipment/charge event. LineItems are constructed once from input and
// never mutated afterwards.
type LineItem struct {
	// OrderID is the stable identifier of the parent order. Never empty.
	OrderID string

	// OrderDate is the calendar date the order was placed. Any time-of-day
	// component in the source is discarded.
	OrderDate time.Time

	// Subtotal is the signed monetary amount for this line item.
	// Positive = charge, negative = refund/return credit.
	Subtotal decimal.Decimal

	// ProductName is the free-text description, whitespace-trimmed.
	// May legitimately be empty.
	ProductName string

	// FromReturns is true when the row was sourced from the returns table.
	FromReturns bool
}

// RowMapping names the input columns the normalizer reads.
type RowMapping struct {
	OrderID     string
	OrderDate   string
	Subtotal    string
	ProductName string
}

// DefaultRowMapping returns the column names used by Amazon's order-history
// export.
func DefaultRowMapping() RowMapping {
	return RowMapping{
		OrderID:     "Order ID",
		OrderDate:   "Order Date",
		Subtotal:    "Shipment Item Subtotal",
		ProductName: "Product Name",
	}
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// NormalizeRow converts one raw row into a LineItem.
//
// Row-level failures are reported as *RowError with the offending kind:
//   - empty order id              -> MissingOrderID
//   - non-numeric amount          -> MalformedAmount (empty cells are valid
//     zero-amount rows; Amazon exports emit those for some shipments)
//   - unparseable date            -> MalformedDate
//
// rowNum is the 1-based data row number, used only for error reporting.
func NormalizeRow(row map[string]string, rowNum int, src Source, m RowMapping) (LineItem, error) {
	orderID := strings.TrimSpace(row[m.OrderID])
	if orderID == "" {
		return LineItem{}, &RowError{Kind: MissingOrderID, Source: src, Row: rowNum, Column: m.OrderID}
	}

	amount, ok := parseAmount(row[m.Subtotal])
	if !ok {
		return LineItem{}, &RowError{Kind: MalformedAmount, Source: src, Row: rowNum, Column: m.Subtotal, Value: row[m.Subtotal]}
	}

	date, ok := parseOrderDate(row[m.OrderDate])
	if !ok {
		return LineItem{}, &RowError{Kind: MalformedDate, Source: src, Row: rowNum, Column: m.OrderDate, Value: row[m.OrderDate]}
	}

	return LineItem{
		OrderID:     orderID,
		OrderDate:   date,
		Subtotal:    amount,
		ProductName: strings.TrimSpace(row[m.ProductName]),
		FromReturns: src == SourceReturns,
	}, nil
}

// NormalizeTable normalizes every row of a table, in order. Failed rows are
// dropped and reported; normalization never aborts on a row-level error.
func NormalizeTable(rows []map[string]string, src Source, m RowMapping) ([]LineItem, []*RowError) {
	items := make([]LineItem, 0, len(rows))
	var warnings []*RowError

	for i, row := range rows {
		item, err := NormalizeRow(row, i+1, src, m)
		if err != nil {
			if re, ok := err.(*RowError); ok {
				warnings = append(warnings, re)
				continue
			}
			// NormalizeRow only produces *RowError; anything else would be
			// a programming error worth surfacing loudly.
			panic(err)
		}
		items = append(items, item)
	}
	return items, warnings
}

// =============================================================================
// FIELD PARSERS
// =============================================================================

// currencySymbols are stripped from amount cells before decimal parsing.
// Amazon exports prefix amounts with the marketplace currency symbol.
const currencySymbols = "$£€"

// parseAmount parses a monetary cell into an exact decimal. An empty cell is
// a valid zero amount. Thousands separators and a leading currency symbol
// are tolerated; everything else must be a plain decimal string.
func parseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, true
	}
	s = strings.ReplaceAll(s, ",", "")
	for _, sym := range currencySymbols {
		s = strings.ReplaceAll(s, string(sym), "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// dateLayouts are the accepted source date shapes, most specific first.
// Amazon emits ISO-8601 dates, sometimes with a time component; the time
// component is immaterial for grouping and is dropped.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseOrderDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Keep the calendar date only.
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
