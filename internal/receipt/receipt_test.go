package receipt_test

import (
	"bytes"
	"slices"
	"testing"

	"racetix/internal/models"
	"racetix/internal/receipt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func sampleOrder() models.Order {
	return models.Order{
		OrderID:       "ord-1",
		Ticket:        "Single Race Pass | Price: $100 | Validity: 1 day | Features: One entry | Race: Grand Prix | Date: 2026-08-31 | Seat: A12 | Access: Main Zone",
		Method:        models.CreditCard,
		Price:         90,
		Date:          "2026-08-31",
		OriginalPrice: 100,
		Discount:      10,
	}
}

func TestInvoice(t *testing.T) {
	got := receipt.Invoice("alice", sampleOrder())

	want := "Invoice\n-------\n" +
		"User: alice\n" +
		"Ticket: Single Race Pass | Price: $100 | Validity: 1 day | Features: One entry | Race: Grand Prix | Date: 2026-08-31 | Seat: A12 | Access: Main Zone\n" +
		"Method: Credit Card\n" +
		"Original Price: $100\n" +
		"Discount: 10%\n" +
		"Final Price: $90\n" +
		"Date: 2026-08-31"
	assert.Equal(t, want, got)
}

func TestFormatOrders(t *testing.T) {
	orders := []models.Order{
		sampleOrder(),
		{
			OrderID:       "ord-2",
			Ticket:        "Season Membership | Price: $250",
			Method:        models.DebitCard,
			Price:         250,
			Date:          "2026-09-01",
			OriginalPrice: 250,
			Discount:      0,
		},
	}

	got := receipt.FormatOrders(slices.Values(orders))
	want := "2026-08-31: $90 (Original: $100 - Discount: 10%)\nMethod: Credit Card" +
		"\n\n" +
		"2026-09-01: $250 (Original: $250 - Discount: 0%)\nMethod: Debit Card"
	assert.Equal(t, want, got)
}

func TestFormatOrdersEmpty(t *testing.T) {
	got := receipt.FormatOrders(slices.Values([]models.Order{}))
	assert.Equal(t, "No orders found", got)
}

func TestQRProducesPNG(t *testing.T) {
	png, err := receipt.QR(sampleOrder())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
