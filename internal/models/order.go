package models

import "fmt"

type PaymentMethod string

const (
	CreditCard PaymentMethod = "Credit Card"
	DebitCard  PaymentMethod = "Debit Card"
)

// ParsePaymentMethod maps presentation input onto the payment enum.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case CreditCard:
		return CreditCard, nil
	case DebitCard:
		return DebitCard, nil
	}
	return "", fmt.Errorf("payment method %q: %w", s, ErrValidation)
}

// Order is one completed purchase inside an account's history. Orders are
// immutable once created; they are only ever removed whole (pop last) or
// together with their account.
type Order struct {
	OrderID       string        `json:"order_id"`
	Ticket        string        `json:"ticket"` // rendered ticket description
	Method        PaymentMethod `json:"method"`
	Price         float64       `json:"price"` // final price, 2-decimal rounding
	Date          string        `json:"date"`  // purchase date, ISO form
	OriginalPrice float64       `json:"original_price"`
	Discount      float64       `json:"discount"`
}
