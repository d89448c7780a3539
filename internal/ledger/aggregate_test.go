package ledger

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateGroupSumsExactly(t *testing.T) {
	// The classic float trap: 0.10 + 0.20 must be exactly 0.30.
	g := Group{
		Key: GroupKey{OrderID: "order1", Amount: "0.1"},
		Items: []LineItem{
			item("order1", "2024-01-05", "0.10", "A"),
			item("order1", "2024-01-05", "0.20", "B"),
		},
	}

	txn := AggregateGroup(g)
	assert.Equal(t, "0.30", txn.Amount.StringFixed(2))
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("0.3")))
}

func TestAggregateGroupSumExactnessRandomized(t *testing.T) {
	// Property check: the aggregate equals an independently computed exact
	// sum for random cent amounts, including negatives.
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(20)
		items := make([]LineItem, n)
		want := decimal.Zero
		for i := range items {
			cents := rng.Int63n(2_000_001) - 1_000_000 // -10000.00 .. 10000.00
			amt := decimal.New(cents, -2)
			items[i] = LineItem{
				OrderID:     "order1",
				OrderDate:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				Subtotal:    amt,
				ProductName: fmt.Sprintf("item-%d", i),
			}
			want = want.Add(amt)
		}

		txn := AggregateGroup(Group{Key: GroupKey{OrderID: "order1"}, Items: items})
		require.True(t, txn.Amount.Equal(want), "trial %d: got %s want %s", trial, txn.Amount, want)
	}
}

func TestAggregateGroupNamesInMemberOrder(t *testing.T) {
	g := Group{
		Key: GroupKey{OrderID: "order1", Amount: "10"},
		Items: []LineItem{
			item("order1", "2024-01-05", "10.00", "Zebra"),
			item("order1", "2024-01-05", "10.00", "Apple"),
			item("order1", "2024-01-05", "10.00", ""),
			item("order1", "2024-01-05", "10.00", "Apple"),
		},
	}

	txn := AggregateGroup(g)
	// Never re-sorted, never deduplicated, empties kept.
	assert.Equal(t, []string{"Zebra", "Apple", "", "Apple"}, txn.ProductNames)
}

func TestAggregateGroupFirstDateWins(t *testing.T) {
	// A return can share a group with its original charge when the (signed)
	// amount coincidentally matches; the first member's date wins.
	g := Group{
		Key: GroupKey{OrderID: "order1", Amount: "10"},
		Items: []LineItem{
			item("order1", "2024-01-05", "10.00", "Widget"),
			item("order1", "2024-02-20", "10.00", "Widget"),
		},
	}

	txn := AggregateGroup(g)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), txn.OrderDate)
}

func TestAggregateGroupNegativeSignPreserved(t *testing.T) {
	g := Group{
		Key:   GroupKey{OrderID: "order2", Amount: "-5"},
		Items: []LineItem{item("order2", "2024-01-01", "-5.00", "Refund: Widget")},
	}

	txn := AggregateGroup(g)
	assert.Equal(t, "-5.00", txn.Amount.StringFixed(2))
}

func TestAggregateGroupDeterministic(t *testing.T) {
	g := Group{
		Key: GroupKey{OrderID: "order1", Amount: "10"},
		Items: []LineItem{
			item("order1", "2024-01-05", "10.00", "Widget"),
			item("order1", "2024-01-05", "10.00", "Gadget"),
		},
	}

	first := AggregateGroup(g)
	second := AggregateGroup(g)
	assert.Equal(t, first.OrderID, second.OrderID)
	assert.Equal(t, first.ProductNames, second.ProductNames)
	assert.True(t, first.Amount.Equal(second.Amount))
	assert.True(t, first.OrderDate.Equal(second.OrderDate))
}
