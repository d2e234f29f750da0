package tickets_test

import (
	"testing"

	"racetix/internal/models"
	"racetix/internal/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleRacePassCatalog(t *testing.T) {
	ticket, err := tickets.New("Single Race Pass", 1, "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, tickets.SingleRacePass, ticket.Kind)
	assert.Equal(t, 100.0, ticket.Price)
	assert.Equal(t, "1 day", ticket.Validity)
	assert.Equal(t, "One entry", ticket.Features)
	assert.Equal(t, "2026-08-31", ticket.RaceDate)
}

func TestSeasonMembershipCatalog(t *testing.T) {
	ticket, err := tickets.New("Season Membership", 1, "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, tickets.SeasonMembership, ticket.Kind)
	assert.Equal(t, 250.0, ticket.Price)
	assert.Equal(t, "Season", ticket.Validity)
	assert.Equal(t, "All-access", ticket.Features)
	assert.Equal(t, 10, ticket.RacesIncluded)
}

func TestUnknownTicketType(t *testing.T) {
	ticket, err := tickets.New("Paddock Club", 1, "2026-08-31")
	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, models.ErrUnknownTicketType)

	ticket, err = tickets.New("", 1, "2026-08-31")
	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, models.ErrUnknownTicketType)
}

// Display strings are persisted inside orders and compared on round trips,
// so the exact field order has to stay stable.
func TestDisplayIsDeterministic(t *testing.T) {
	single, err := tickets.New("Single Race Pass", 1, "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t,
		"Single Race Pass | Price: $100 | Validity: 1 day | Features: One entry | Race: Grand Prix | Date: 2026-08-31 | Seat: A12 | Access: Main Zone",
		single.Display())

	season, err := tickets.New("Season Membership", 2, "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t,
		"Season Membership | Price: $250 | Validity: Season | Features: All-access | Season: 2025 | Races: 10 | Benefits: Lounge Access | Renewal: 2025-12-01",
		season.Display())
}

func TestKindsListsCatalogOrder(t *testing.T) {
	assert.Equal(t, []tickets.Kind{tickets.SingleRacePass, tickets.SeasonMembership}, tickets.Kinds())
}
