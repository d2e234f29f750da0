package tickets

import (
	"fmt"
	"racetix/internal/models"
	"strconv"
)

// Kind labels the two constructible ticket variants. The set is closed;
// anything else is rejected at construction.
type Kind string

const (
	SingleRacePass   Kind = "Single Race Pass"
	SeasonMembership Kind = "Season Membership"
)

// Kinds lists the purchasable ticket types in catalog order.
func Kinds() []Kind {
	return []Kind{SingleRacePass, SeasonMembership}
}

// Catalog constants. Prices, validity and feature text are fixed; they are
// not user-editable.
const (
	singleRacePrice    = 100.0
	singleRaceValidity = "1 day"
	singleRaceFeatures = "One entry"
	singleRaceName     = "Grand Prix"
	singleRaceSeat     = "A12"
	singleRaceZone     = "Main Zone"

	seasonPrice    = 250.0
	seasonValidity = "Season"
	seasonFeatures = "All-access"
	seasonYear     = "2025"
	seasonRaces    = 10
	seasonBenefits = "Lounge Access"
	seasonRenewal  = "2025-12-01"
)

// Ticket is a priced, displayable ticket instance. It is immutable and
// transient: constructed to compute a purchase's price and description,
// then discarded. Only the rendered description and the price survive,
// inside an Order. Variant fields are populated according to Kind.
type Ticket struct {
	ID       int
	Kind     Kind
	Price    float64
	Validity string
	Features string

	// Single Race Pass
	RaceName   string
	RaceDate   string
	SeatNumber string
	ZoneAccess string

	// Season Membership
	SeasonYear     string
	RacesIncluded  int
	MemberBenefits string
	RenewalDate    string
}

// New resolves a ticket type label against the catalog. The id is unique
// within one order batch; today is the purchase date in ISO form (used as
// the race date of a Single Race Pass).
func New(kind string, id int, today string) (*Ticket, error) {
	switch Kind(kind) {
	case SingleRacePass:
		return &Ticket{
			ID:         id,
			Kind:       SingleRacePass,
			Price:      singleRacePrice,
			Validity:   singleRaceValidity,
			Features:   singleRaceFeatures,
			RaceName:   singleRaceName,
			RaceDate:   today,
			SeatNumber: singleRaceSeat,
			ZoneAccess: singleRaceZone,
		}, nil
	case SeasonMembership:
		return &Ticket{
			ID:             id,
			Kind:           SeasonMembership,
			Price:          seasonPrice,
			Validity:       seasonValidity,
			Features:       seasonFeatures,
			SeasonYear:     seasonYear,
			RacesIncluded:  seasonRaces,
			MemberBenefits: seasonBenefits,
			RenewalDate:    seasonRenewal,
		}, nil
	}
	return nil, fmt.Errorf("ticket type %q: %w", kind, models.ErrUnknownTicketType)
}

// Display renders the ticket description persisted inside an Order. The
// field order is fixed: the base description first, then the variant's own
// fields. Order history round-trips compare these strings, so the format
// must stay deterministic.
func (t *Ticket) Display() string {
	base := fmt.Sprintf("%s | Price: $%s | Validity: %s | Features: %s",
		t.Kind, formatPrice(t.Price), t.Validity, t.Features)

	switch t.Kind {
	case SingleRacePass:
		return base + fmt.Sprintf(" | Race: %s | Date: %s | Seat: %s | Access: %s",
			t.RaceName, t.RaceDate, t.SeatNumber, t.ZoneAccess)
	case SeasonMembership:
		return base + fmt.Sprintf(" | Season: %s | Races: %d | Benefits: %s | Renewal: %s",
			t.SeasonYear, t.RacesIncluded, t.MemberBenefits, t.RenewalDate)
	}
	return base
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
