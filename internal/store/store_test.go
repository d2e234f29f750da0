package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"racetix/internal/models"
	"racetix/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestStore(t *testing.T) (*store.Store, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	st := store.New(bunDB)
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}

	return st, bunDB
}

func TestLoadAccountsEmptyWhenNothingSaved(t *testing.T) {
	st, bunDB := setupTestStore(t)
	defer bunDB.Close()

	accounts, err := st.LoadAccounts()
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)

	sales, err := st.LoadSales()
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
}

func TestAccountsRoundTrip(t *testing.T) {
	st, bunDB := setupTestStore(t)
	defer bunDB.Close()

	accounts := map[string]*models.Account{
		"alice": {
			Username: "alice",
			Password: "pw1",
			Email:    "alice@example.com",
			Orders: []models.Order{
				{
					OrderID:       "ord-1",
					Ticket:        "Single Race Pass | Price: $100",
					Method:        models.CreditCard,
					Price:         90.0,
					Date:          "2026-08-31",
					OriginalPrice: 100.0,
					Discount:      10,
				},
			},
		},
		"bob": {Username: "bob", Password: "pw2", Orders: []models.Order{}},
	}

	require.NoError(t, st.SaveAccounts(accounts))

	loaded, err := st.LoadAccounts()
	require.NoError(t, err)
	assert.Equal(t, accounts, loaded)
}

func TestSalesRoundTripAndOverwrite(t *testing.T) {
	st, bunDB := setupTestStore(t)
	defer bunDB.Close()

	sales := map[string]int{"2026-08-30": 3, "2026-08-31": 1}
	require.NoError(t, st.SaveSales(sales))

	loaded, err := st.LoadSales()
	require.NoError(t, err)
	assert.Equal(t, sales, loaded)

	// Save replaces the whole mapping, it does not merge.
	require.NoError(t, st.SaveSales(map[string]int{"2026-09-01": 7}))

	loaded, err = st.LoadSales()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-09-01": 7}, loaded)
}

func TestStoresAreIndependent(t *testing.T) {
	st, bunDB := setupTestStore(t)
	defer bunDB.Close()

	require.NoError(t, st.SaveSales(map[string]int{"2026-08-31": 2}))

	accounts, err := st.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestCorruptPayloadIsUnreadable(t *testing.T) {
	st, bunDB := setupTestStore(t)
	defer bunDB.Close()

	_, err := bunDB.NewRaw(
		"INSERT INTO store_blobs (name, version, payload, saved_at) VALUES (?, ?, ?, ?)",
		"accounts", 1, []byte("{not json"), time.Now(),
	).Exec(context.Background())
	require.NoError(t, err)

	_, err = st.LoadAccounts()
	assert.ErrorIs(t, err, models.ErrStoreUnreadable)
}

func TestUnsupportedVersionIsUnreadable(t *testing.T) {
	st, bunDB := setupTestStore(t)
	defer bunDB.Close()

	_, err := bunDB.NewRaw(
		"INSERT INTO store_blobs (name, version, payload, saved_at) VALUES (?, ?, ?, ?)",
		"sales", 99, []byte("{}"), time.Now(),
	).Exec(context.Background())
	require.NoError(t, err)

	_, err = st.LoadSales()
	assert.ErrorIs(t, err, models.ErrStoreUnreadable)
}
