package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRow(orderID, date, subtotal, name string) map[string]string {
	return map[string]string{
		"Order ID":               orderID,
		"Order Date":             date,
		"Shipment Item Subtotal": subtotal,
		"Product Name":           name,
	}
}

func TestNormalizeRow(t *testing.T) {
	m := DefaultRowMapping()

	item, err := NormalizeRow(orderRow("111-222", "2024-01-05", "$10.00", "  Widget  "), 1, SourceOrders, m)
	require.NoError(t, err)
	assert.Equal(t, "111-222", item.OrderID)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), item.OrderDate)
	assert.True(t, item.Subtotal.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "Widget", item.ProductName)
	assert.False(t, item.FromReturns)
}

func TestNormalizeRowReturnsTagged(t *testing.T) {
	m := DefaultRowMapping()

	item, err := NormalizeRow(orderRow("111-222", "2024-02-01", "-5.00", "Widget"), 3, SourceReturns, m)
	require.NoError(t, err)
	assert.True(t, item.FromReturns)
	// Returns amounts already carry their sign; nothing re-signs them.
	assert.True(t, item.Subtotal.IsNegative())
}

func TestNormalizeRowEmptyAmountIsZero(t *testing.T) {
	// Amazon exports emit zero-subtotal lines with an empty cell; those are
	// valid rows, not errors.
	item, err := NormalizeRow(orderRow("111-222", "2024-01-05", "", "Widget"), 1, SourceOrders, DefaultRowMapping())
	require.NoError(t, err)
	assert.True(t, item.Subtotal.IsZero())
}

func TestNormalizeRowEmptyProductNameKept(t *testing.T) {
	item, err := NormalizeRow(orderRow("111-222", "2024-01-05", "1.00", "   "), 1, SourceOrders, DefaultRowMapping())
	require.NoError(t, err)
	assert.Equal(t, "", item.ProductName)
}

func TestNormalizeRowErrors(t *testing.T) {
	m := DefaultRowMapping()

	tests := []struct {
		name string
		row  map[string]string
		kind RowErrorKind
	}{
		{"missing order id", orderRow("", "2024-01-05", "10.00", "Widget"), MissingOrderID},
		{"blank order id", orderRow("   ", "2024-01-05", "10.00", "Widget"), MissingOrderID},
		{"non-numeric amount", orderRow("111", "2024-01-05", "abc", "Widget"), MalformedAmount},
		{"not available amount", orderRow("111", "2024-01-05", "Not Available", "Widget"), MalformedAmount},
		{"unparseable date", orderRow("111", "05/01/2024", "10.00", "Widget"), MalformedDate},
		{"not available date", orderRow("111", "Not Available", "10.00", "Widget"), MalformedDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeRow(tt.row, 7, SourceOrders, m)
			require.Error(t, err)
			var re *RowError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.kind, re.Kind)
			assert.Equal(t, 7, re.Row)
			assert.Equal(t, SourceOrders, re.Source)
		})
	}
}

func TestNormalizeRowDateVariants(t *testing.T) {
	m := DefaultRowMapping()
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2024-01-05",
		"2024-01-05T08:30:00Z",
		"2024-01-05T08:30:00+01:00",
		"2024-01-05 08:30:00",
	} {
		item, err := NormalizeRow(orderRow("111", raw, "1.00", "Widget"), 1, SourceOrders, m)
		require.NoError(t, err, "date %q", raw)
		assert.Equal(t, want, item.OrderDate, "date %q", raw)
	}
}

func TestNormalizeRowAmountVariants(t *testing.T) {
	m := DefaultRowMapping()

	tests := []struct {
		raw  string
		want string
	}{
		{"10.00", "10"},
		{"$10.00", "10"},
		{"£1,234.56", "1234.56"},
		{"€7.50", "7.5"},
		{"-5.00", "-5"},
		{"$-5.00", "-5"},
		{"0", "0"},
	}
	for _, tt := range tests {
		item, err := NormalizeRow(orderRow("111", "2024-01-05", tt.raw, "Widget"), 1, SourceOrders, m)
		require.NoError(t, err, "amount %q", tt.raw)
		assert.Equal(t, tt.want, item.Subtotal.String(), "amount %q", tt.raw)
	}
}

func TestNormalizeTableDropsBadRowsAndContinues(t *testing.T) {
	rows := []map[string]string{
		orderRow("111", "2024-01-05", "10.00", "Widget"),
		orderRow("", "2024-01-05", "10.00", "Orphan"),
		orderRow("222", "bad-date", "10.00", "Gadget"),
		orderRow("333", "2024-01-06", "3.00", "Gizmo"),
	}

	items, warnings := NormalizeTable(rows, SourceOrders, DefaultRowMapping())
	require.Len(t, items, 2)
	assert.Equal(t, "111", items[0].OrderID)
	assert.Equal(t, "333", items[1].OrderID)

	require.Len(t, warnings, 2)
	assert.Equal(t, MissingOrderID, warnings[0].Kind)
	assert.Equal(t, 2, warnings[0].Row)
	assert.Equal(t, MalformedDate, warnings[1].Kind)
	assert.Equal(t, 3, warnings[1].Row)
}
