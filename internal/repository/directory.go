// Package repository provides the in-memory customer directory and the
// stores that guard it.
package repository

import (
	"fmt"
	"strings"

	"github.com/benx421/bank-ledger/internal/models"
	"golang.org/x/text/cases"
)

// CustomerRepository defines the interface for customer directory access
type CustomerRepository interface {
	Add(customer *models.Customer) error
	FindByID(id int64) (*models.Customer, error)
	FindByAccountNumber(accountNumber int64) (*models.Customer, error)
	SearchByName(fragment string) []*models.Customer
	Update(customer *models.Customer) error
	Delete(id int64) (bool, error)
	All() []*models.Customer
	Sequence() *models.Sequence
}

// Directory is the registry of customers. Customer ids and account numbers
// are unique across all entries. Entries keep insertion order; Update moves
// the replaced entry to the end.
type Directory struct {
	seq       *models.Sequence
	customers []*models.Customer
}

// NewDirectory creates an empty directory that owns seq. A nil seq starts at 1.
func NewDirectory(seq *models.Sequence) *Directory {
	if seq == nil {
		seq = models.NewSequence(1)
	}
	return &Directory{seq: seq}
}

// Sequence returns the transaction id sequence shared by every account in
// the directory.
func (d *Directory) Sequence() *models.Sequence {
	return d.seq
}

// Add registers customer. It fails with models.ErrDuplicateAccount when the
// customer id or the account number is taken.
func (d *Directory) Add(customer *models.Customer) error {
	if customer == nil {
		return fmt.Errorf("%w: customer required", models.ErrInvalidArgument)
	}

	for _, c := range d.customers {
		if c.ID() == customer.ID() {
			return fmt.Errorf("%w: customer id %d", models.ErrDuplicateAccount, customer.ID())
		}
		if c.Account().Number() == customer.Account().Number() {
			return fmt.Errorf("%w: account number %d", models.ErrDuplicateAccount, customer.Account().Number())
		}
	}

	d.customers = append(d.customers, customer)
	return nil
}

// FindByID returns the registered customer, not a copy.
func (d *Directory) FindByID(id int64) (*models.Customer, error) {
	if i := d.indexOf(id); i >= 0 {
		return d.customers[i], nil
	}
	return nil, fmt.Errorf("%w: customer id %d", models.ErrNotFound, id)
}

// FindByAccountNumber returns the first customer owning accountNumber.
func (d *Directory) FindByAccountNumber(accountNumber int64) (*models.Customer, error) {
	for _, c := range d.customers {
		if c.Account().Number() == accountNumber {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: account number %d", models.ErrNotFound, accountNumber)
}

// SearchByName returns every customer whose name contains fragment, ignoring case.
func (d *Directory) SearchByName(fragment string) []*models.Customer {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(fragment))

	matches := []*models.Customer{}
	for _, c := range d.customers {
		if strings.Contains(folder.String(c.Name()), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Update replaces the entry with the same customer id, or inserts it when
// there is none. An account number owned by another customer is rejected.
func (d *Directory) Update(customer *models.Customer) error {
	if customer == nil {
		return fmt.Errorf("%w: customer required", models.ErrInvalidArgument)
	}

	for _, c := range d.customers {
		if c.ID() != customer.ID() && c.Account().Number() == customer.Account().Number() {
			return fmt.Errorf("%w: account number %d", models.ErrDuplicateAccount, customer.Account().Number())
		}
	}

	if i := d.indexOf(customer.ID()); i >= 0 {
		d.customers = append(d.customers[:i], d.customers[i+1:]...)
	}
	d.customers = append(d.customers, customer)
	return nil
}

// Delete removes the customer with id. It refuses, returning false, while the
// account still holds funds.
func (d *Directory) Delete(id int64) (bool, error) {
	i := d.indexOf(id)
	if i < 0 {
		return false, fmt.Errorf("%w: customer id %d", models.ErrNotFound, id)
	}

	if d.customers[i].Account().Balance().IsPositive() {
		return false, nil
	}

	d.customers = append(d.customers[:i], d.customers[i+1:]...)
	return true, nil
}

// All returns a copy of the customer list.
func (d *Directory) All() []*models.Customer {
	out := make([]*models.Customer, len(d.customers))
	copy(out, d.customers)
	return out
}

func (d *Directory) indexOf(id int64) int {
	for i, c := range d.customers {
		if c.ID() == id {
			return i
		}
	}
	return -1
}
