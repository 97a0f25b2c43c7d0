package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Customer name length bounds, in characters
const (
	MinNameLength = 2
	MaxNameLength = 50
)

const (
	minPinCode     = 100000
	maxPinCode     = 999999
	unknownAddress = "Unknown"
)

// Address is an immutable postal address compared by value.
type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode int    `json:"pin_code"`
}

// NewAddress trims city and state and clamps the pin code into the six digit range.
func NewAddress(city, state string, pinCode int) Address {
	return Address{
		City:    orUnknown(city),
		State:   orUnknown(state),
		PinCode: min(maxPinCode, max(minPinCode, pinCode)),
	}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s - %06d", a.City, a.State, a.PinCode)
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknownAddress
	}
	return s
}

// NormalizeName trims name and checks its length.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < MinNameLength || n > MaxNameLength {
		return "", fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidArgument, MinNameLength, MaxNameLength)
	}
	return name, nil
}

// Customer binds an identity to exactly one account. The id and the account
// never change; name and address may be replaced.
type Customer struct {
	account *Account
	address Address
	name    string
	id      int64
}

// NewCustomer validates the identity fields and binds account to it.
func NewCustomer(id int64, name string, account *Account, address Address) (*Customer, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: customer id must be positive", ErrInvalidArgument)
	}
	normalized, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: account required", ErrInvalidArgument)
	}
	if address == (Address{}) {
		return nil, fmt.Errorf("%w: address required", ErrInvalidArgument)
	}

	return &Customer{
		id:      id,
		name:    normalized,
		account: account,
		address: address,
	}, nil
}

func (c *Customer) ID() int64 { return c.id }

func (c *Customer) Name() string { return c.name }

func (c *Customer) Address() Address { return c.address }

func (c *Customer) Account() *Account { return c.account }

// SetName replaces the display name.
func (c *Customer) SetName(name string) error {
	normalized, err := NormalizeName(name)
	if err != nil {
		return err
	}
	c.name = normalized
	return nil
}

// SetAddress replaces the address.
func (c *Customer) SetAddress(address Address) error {
	if address == (Address{}) {
		return fmt.Errorf("%w: address required", ErrInvalidArgument)
	}
	c.address = address
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("ID:%-4d %-15s | %-35s | %s", c.id, c.name, c.account, c.address)
}

// AccountSnapshot is a point-in-time copy of an account's state.
type AccountSnapshot struct {
	IFSC           string          `json:"ifsc"`
	CompanyName    string          `json:"company_name,omitempty"`
	Type           AccountType     `json:"type"`
	Balance        decimal.Decimal `json:"balance"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	DebitedToday   decimal.Decimal `json:"debited_today"`
	Number         int64           `json:"account_number"`
	CreditsBlocked bool            `json:"credits_blocked"`
}

// CustomerSnapshot is a point-in-time copy of a customer and their account.
type CustomerSnapshot struct {
	Name    string          `json:"name"`
	Address Address         `json:"address"`
	Account AccountSnapshot `json:"account"`
	ID      int64           `json:"id"`
}

// Snapshot copies the account state.
func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		Number:         a.number,
		IFSC:           a.ifsc,
		Type:           a.accountType,
		Balance:        a.balance,
		InterestRate:   a.interestRate,
		CompanyName:    a.companyName,
		DebitedToday:   a.DebitedToday(),
		CreditsBlocked: a.creditsBlocked,
	}
}

// Snapshot copies the customer and account state.
func (c *Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{
		ID:      c.id,
		Name:    c.name,
		Address: c.address,
		Account: c.account.Snapshot(),
	}
}
