package ledger

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
	"time"

	"racetix/internal/logger"
	"racetix/internal/models"
	"racetix/internal/tickets"

	"github.com/google/uuid"
)

// AccountsWriter persists the accounts mapping after the ledger mutates an
// account's order history.
type AccountsWriter interface {
	Commit() error
}

// SalesStore persists the per-day sales counters as a whole mapping.
type SalesStore interface {
	LoadSales() (map[string]int, error)
	SaveSales(map[string]int) error
}

// Service appends purchases to an account's history and keeps the per-day
// sales counter. Every successful mutation persists immediately; there is
// no batching and no write-behind.
type Service struct {
	Accounts AccountsWriter
	Store    SalesStore
	log      *logger.Logger
}

func NewService(accounts AccountsWriter, store SalesStore, log *logger.Logger) *Service {
	return &Service{Accounts: accounts, Store: store, log: log}
}

// Purchase resolves a ticket from the catalog, prices it with the given
// discount percentage and appends the resulting order to the account.
// ticketType and method must be non-empty and recognized; discount is a
// presentation-supplied string, empty meaning zero. The account is not
// touched until everything has been validated and the sales counters have
// been loaded.
func (s *Service) Purchase(acct *models.Account, ticketType, method, discount string, today time.Time) (*models.Order, error) {
	if strings.TrimSpace(ticketType) == "" || strings.TrimSpace(method) == "" {
		return nil, fmt.Errorf("ticket type and payment method are required: %w", models.ErrValidation)
	}

	pct := 0.0
	if trimmed := strings.TrimSpace(discount); trimmed != "" {
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("discount %q is not a number: %w", discount, models.ErrValidation)
		}
		pct = parsed
	}

	pay, err := models.ParsePaymentMethod(method)
	if err != nil {
		return nil, err
	}

	date := today.Format("2006-01-02")
	ticket, err := tickets.New(ticketType, len(acct.Orders)+1, date)
	if err != nil {
		return nil, err
	}

	sales, err := s.Store.LoadSales()
	if err != nil {
		return nil, err
	}

	// The discount percentage is deliberately unbounded; a value over 100
	// yields a negative final price. Observed behavior, kept as is.
	order := models.Order{
		OrderID:       uuid.NewString(),
		Ticket:        ticket.Display(),
		Method:        pay,
		Price:         round2(ticket.Price * (1 - pct/100)),
		Date:          date,
		OriginalPrice: ticket.Price,
		Discount:      pct,
	}

	acct.Orders = append(acct.Orders, order)
	sales[date]++

	if err := s.Store.SaveSales(sales); err != nil {
		return nil, err
	}
	if err := s.Accounts.Commit(); err != nil {
		return nil, err
	}

	s.log.LogOrder("PURCHASE", order.OrderID,
		fmt.Sprintf("%s for %s at $%.2f (%.0f%% off $%.2f)", ticket.Kind, acct.Username, order.Price, pct, order.OriginalPrice))
	return &order, nil
}

// DeleteLastOrder removes exactly the most recently appended order.
func (s *Service) DeleteLastOrder(acct *models.Account) (*models.Order, error) {
	if len(acct.Orders) == 0 {
		return nil, fmt.Errorf("account %q: %w", acct.Username, models.ErrEmptyHistory)
	}

	last := acct.Orders[len(acct.Orders)-1]
	acct.Orders = acct.Orders[:len(acct.Orders)-1]

	if err := s.Accounts.Commit(); err != nil {
		return nil, err
	}

	s.log.LogOrder("DELETE", last.OrderID, fmt.Sprintf("last order removed for %s", acct.Username))
	return &last, nil
}

// Orders yields the account's orders in insertion order. The sequence is a
// read-only projection for display: lazy, finite and restartable.
func (s *Service) Orders(acct *models.Account) iter.Seq[models.Order] {
	return func(yield func(models.Order) bool) {
		for _, o := range acct.Orders {
			if !yield(o) {
				return
			}
		}
	}
}

// SalesByDay returns the per-day ticket counters, date (ISO) to count.
func (s *Service) SalesByDay() (map[string]int, error) {
	return s.Store.LoadSales()
}

// ResetSales replaces the sales counters with an empty mapping.
func (s *Service) ResetSales() error {
	if err := s.Store.SaveSales(map[string]int{}); err != nil {
		return err
	}
	s.log.LogStore("RESET", "sales", "daily counters cleared")
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
