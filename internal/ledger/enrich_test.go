package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderURLDefaultTemplate(t *testing.T) {
	got := OrderURL("", "111-2223334-5556667")
	assert.Equal(t, "https://amazon.com/gp/your-account/order-details?orderID=111-2223334-5556667", got)
}

func TestOrderURLEscapesReservedCharacters(t *testing.T) {
	got := OrderURL(DefaultOrderURLTemplate, "a b&c")
	assert.Equal(t, "https://amazon.com/gp/your-account/order-details?orderID=a+b%26c", got)
}

func TestOrderURLCustomTemplate(t *testing.T) {
	got := OrderURL("https://amazon.co.uk/orders/{order_id}", "123")
	assert.Equal(t, "https://amazon.co.uk/orders/123", got)
}

func TestEnrichTransactions(t *testing.T) {
	txns := []Transaction{
		{OrderID: "order1"},
		{OrderID: "order2"},
	}

	EnrichTransactions(txns, "")
	assert.Contains(t, txns[0].OrderURL, "orderID=order1")
	assert.Contains(t, txns[1].OrderURL, "orderID=order2")
}
