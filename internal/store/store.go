package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"racetix/internal/models"
	"time"

	"github.com/uptrace/bun"
)

// Each logical store (accounts, sales) is persisted as a single row whose
// payload is the JSON serialization of the whole mapping. Load and save
// always move the full mapping; there is no incremental update.
const (
	accountsBlob = "accounts"
	salesBlob    = "sales"

	schemaVersion = 1
)

type blob struct {
	bun.BaseModel `bun:"table:store_blobs"`

	Name    string    `bun:"name,pk"`
	Version int       `bun:"version"`
	Payload []byte    `bun:"payload"`
	SavedAt time.Time `bun:"saved_at"`
}

type Store struct {
	Bun *bun.DB
}

func New(bunDB *bun.DB) *Store {
	return &Store{Bun: bunDB}
}

// Init creates the blob table if it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.Bun.NewCreateTable().
		Model((*blob)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *Store) load(name string, out any) error {
	var row blob
	err := s.Bun.NewSelect().
		Model(&row).
		Where("name = ?", name).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		// No blob saved yet: the caller keeps its empty mapping.
		return nil
	}
	if err != nil {
		return fmt.Errorf("load store %q: %w", name, err)
	}

	if row.Version != schemaVersion {
		return fmt.Errorf("store %q has unsupported version %d: %w", name, row.Version, models.ErrStoreUnreadable)
	}
	if err := json.Unmarshal(row.Payload, out); err != nil {
		return fmt.Errorf("store %q: %v: %w", name, err, models.ErrStoreUnreadable)
	}
	return nil
}

func (s *Store) save(name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serialize store %q: %w", name, err)
	}

	row := &blob{
		Name:    name,
		Version: schemaVersion,
		Payload: payload,
		SavedAt: time.Now(),
	}

	// Single upsert statement, so readers never observe a partial write.
	_, err = s.Bun.NewInsert().
		Model(row).
		On("CONFLICT (name) DO UPDATE").
		Set("version = EXCLUDED.version").
		Set("payload = EXCLUDED.payload").
		Set("saved_at = EXCLUDED.saved_at").
		Exec(context.Background())
	if err != nil {
		return fmt.Errorf("save store %q: %w", name, err)
	}
	return nil
}

func (s *Store) LoadAccounts() (map[string]*models.Account, error) {
	accounts := map[string]*models.Account{}
	if err := s.load(accountsBlob, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Store) SaveAccounts(accounts map[string]*models.Account) error {
	return s.save(accountsBlob, accounts)
}

func (s *Store) LoadSales() (map[string]int, error) {
	sales := map[string]int{}
	if err := s.load(salesBlob, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *Store) SaveSales(sales map[string]int) error {
	return s.save(salesBlob, sales)
}
