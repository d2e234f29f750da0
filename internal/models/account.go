package models

// Account is a customer record in the accounts store. The administrator is
// never stored as an Account; its credential check happens before any lookup.
type Account struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	City     string  `json:"city"`
	Orders   []Order `json:"orders"`
}

// ProfileFields are the account attributes a customer (or the administrator
// on a customer's behalf) may update after registration.
var ProfileFields = []string{"email", "phone", "city"}

func NewAccount(username, password string) *Account {
	return &Account{
		Username: username,
		Password: password,
		Orders:   []Order{},
	}
}
