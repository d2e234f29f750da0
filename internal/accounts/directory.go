package accounts

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"racetix/internal/config"
	"racetix/internal/logger"
	"racetix/internal/models"
)

// AccountsStore persists the accounts mapping as a whole.
type AccountsStore interface {
	LoadAccounts() (map[string]*models.Account, error)
	SaveAccounts(map[string]*models.Account) error
}

// Session is the explicit "who is driving this operation" value handed to
// the presentation layer after authentication. Account is nil for the
// administrator, which never exists as a stored account.
type Session struct {
	Username string
	Account  *models.Account
	Admin    bool
}

// Directory owns the accounts mapping exclusively: it is loaded once at
// construction and persisted whole after every mutation.
type Directory struct {
	store    AccountsStore
	admin    config.AdminConfig
	log      *logger.Logger
	accounts map[string]*models.Account
}

func NewDirectory(store AccountsStore, admin config.AdminConfig, log *logger.Logger) (*Directory, error) {
	accounts, err := store.LoadAccounts()
	if err != nil {
		return nil, fmt.Errorf("load account directory: %w", err)
	}
	log.LogStore("LOAD", "accounts", fmt.Sprintf("%d account(s) loaded", len(accounts)))

	return &Directory{
		store:    store,
		admin:    admin,
		log:      log,
		accounts: accounts,
	}, nil
}

// Register creates a new customer account. Both fields are trimmed before
// validation; the administrator name is reserved.
func (d *Directory) Register(username, password string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", models.ErrValidation)
	}
	if username == d.admin.Username {
		return nil, fmt.Errorf("username %q is reserved: %w", username, models.ErrDuplicateUsername)
	}
	if _, exists := d.accounts[username]; exists {
		return nil, fmt.Errorf("username %q: %w", username, models.ErrDuplicateUsername)
	}

	acct := models.NewAccount(username, password)
	d.accounts[username] = acct
	if err := d.Commit(); err != nil {
		return nil, err
	}

	d.log.LogAccount("REGISTER", username, "account created")
	return acct, nil
}

// Authenticate is a two-tier check: the hardcoded administrator pair
// short-circuits before any lookup; everything else needs an exact,
// case-sensitive match of both username and password.
func (d *Directory) Authenticate(username, password string) (*Session, error) {
	if username == d.admin.Username && password == d.admin.Password {
		d.log.LogAccount("LOGIN", username, "administrator session opened")
		return &Session{Username: username, Admin: true}, nil
	}

	acct, ok := d.accounts[username]
	if !ok || acct.Password != password {
		return nil, fmt.Errorf("login for %q: %w", username, models.ErrInvalidCredentials)
	}

	d.log.LogAccount("LOGIN", username, "customer session opened")
	return &Session{Username: username, Account: acct}, nil
}

// Get looks up a stored account by username.
func (d *Directory) Get(username string) (*models.Account, error) {
	acct, ok := d.accounts[username]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", username, models.ErrNotFound)
	}
	return acct, nil
}

// UpdateField sets one of the profile fields (email, phone, city). The value
// itself is not validated; it persists immediately.
func (d *Directory) UpdateField(acct *models.Account, field, value string) error {
	switch field {
	case "email":
		acct.Email = value
	case "phone":
		acct.Phone = value
	case "city":
		acct.City = value
	default:
		return fmt.Errorf("unknown profile field %q: %w", field, models.ErrValidation)
	}

	if err := d.Commit(); err != nil {
		return err
	}
	d.log.LogAccount("UPDATE", acct.Username, fmt.Sprintf("%s updated", field))
	return nil
}

// Delete irreversibly removes an account and all its orders. Sales ledger
// counters for the account's past purchases are not decremented; the ledger
// is an append-only aggregate and is never reconciled against orders.
func (d *Directory) Delete(username string) error {
	if _, ok := d.accounts[username]; !ok {
		return fmt.Errorf("account %q: %w", username, models.ErrNotFound)
	}

	delete(d.accounts, username)
	if err := d.Commit(); err != nil {
		return err
	}

	d.log.LogAccount("DELETE", username, "account removed")
	return nil
}

// List yields the stored accounts in username order. The administrator is
// never stored, so it never appears. The sequence is lazy and restartable.
func (d *Directory) List() iter.Seq2[string, *models.Account] {
	return func(yield func(string, *models.Account) bool) {
		for _, username := range slices.Sorted(maps.Keys(d.accounts)) {
			if !yield(username, d.accounts[username]) {
				return
			}
		}
	}
}

// Commit persists the whole accounts mapping.
func (d *Directory) Commit() error {
	if err := d.store.SaveAccounts(d.accounts); err != nil {
		return fmt.Errorf("persist account directory: %w", err)
	}
	return nil
}
