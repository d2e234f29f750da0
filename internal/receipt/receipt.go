package receipt

import (
	"encoding/json"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"racetix/internal/models"

	"github.com/skip2/go-qrcode"
)

// Invoice renders the confirmation text shown after a successful purchase.
func Invoice(username string, ord models.Order) string {
	return fmt.Sprintf(
		"Invoice\n-------\nUser: %s\nTicket: %s\nMethod: %s\nOriginal Price: $%s\nDiscount: %s%%\nFinal Price: $%s\nDate: %s",
		username,
		ord.Ticket,
		ord.Method,
		num(ord.OriginalPrice),
		num(ord.Discount),
		num(ord.Price),
		ord.Date,
	)
}

// FormatOrders renders an order history for display, one block per order in
// insertion order.
func FormatOrders(orders iter.Seq[models.Order]) string {
	var blocks []string
	for ord := range orders {
		blocks = append(blocks, fmt.Sprintf("%s: $%s (Original: $%s - Discount: %s%%)\nMethod: %s",
			ord.Date, num(ord.Price), num(ord.OriginalPrice), num(ord.Discount), ord.Method))
	}
	if len(blocks) == 0 {
		return "No orders found"
	}
	return strings.Join(blocks, "\n\n")
}

// QR encodes the order as a PNG QR code, suitable for gate scanning.
func QR(ord models.Order) ([]byte, error) {
	data, err := json.Marshal(ord)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(data), qrcode.Medium, 256)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
