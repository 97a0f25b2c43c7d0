package mocks

import (
	"github.com/benx421/bank-ledger/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock type for the CustomerRepository type
type MockCustomerRepository struct {
	mock.Mock
}

// Add provides a mock function with given fields: customer
func (_m *MockCustomerRepository) Add(customer *models.Customer) error {
	ret := _m.Called(customer)

	if len(ret) == 0 {
		panic("no return value specified for Add")
	}

	return ret.Error(0)
}

// FindByID provides a mock function with given fields: id
func (_m *MockCustomerRepository) FindByID(id int64) (*models.Customer, error) {
	ret := _m.Called(id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *models.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Customer)
	}

	return r0, ret.Error(1)
}

// FindByAccountNumber provides a mock function with given fields: accountNumber
func (_m *MockCustomerRepository) FindByAccountNumber(accountNumber int64) (*models.Customer, error) {
	ret := _m.Called(accountNumber)

	if len(ret) == 0 {
		panic("no return value specified for FindByAccountNumber")
	}

	var r0 *models.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Customer)
	}

	return r0, ret.Error(1)
}

// SearchByName provides a mock function with given fields: fragment
func (_m *MockCustomerRepository) SearchByName(fragment string) []*models.Customer {
	ret := _m.Called(fragment)

	if len(ret) == 0 {
		panic("no return value specified for SearchByName")
	}

	var r0 []*models.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Customer)
	}

	return r0
}

// Update provides a mock function with given fields: customer
func (_m *MockCustomerRepository) Update(customer *models.Customer) error {
	ret := _m.Called(customer)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	return ret.Error(0)
}

// Delete provides a mock function with given fields: id
func (_m *MockCustomerRepository) Delete(id int64) (bool, error) {
	ret := _m.Called(id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	return ret.Bool(0), ret.Error(1)
}

// All provides a mock function with no fields
func (_m *MockCustomerRepository) All() []*models.Customer {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for All")
	}

	var r0 []*models.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Customer)
	}

	return r0
}

// Sequence provides a mock function with no fields
func (_m *MockCustomerRepository) Sequence() *models.Sequence {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Sequence")
	}

	var r0 *models.Sequence
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Sequence)
	}

	return r0
}

// NewMockCustomerRepository creates a new instance of MockCustomerRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	mock := &MockCustomerRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
