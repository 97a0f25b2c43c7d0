package mocks

import (
	"context"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

// MockAccountOperator is a mock type for the AccountOperator type
type MockAccountOperator struct {
	mock.Mock
}

// Deposit provides a mock function with given fields: ctx, customerID, amount
func (_m *MockAccountOperator) Deposit(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Transaction, error) {
	ret := _m.Called(ctx, customerID, amount)

	if len(ret) == 0 {
		panic("no return value specified for Deposit")
	}

	var r0 *models.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Transaction)
	}

	return r0, ret.Error(1)
}

// Withdraw provides a mock function with given fields: ctx, customerID, amount
func (_m *MockAccountOperator) Withdraw(ctx context.Context, customerID int64, amount decimal.Decimal) (*models.Transaction, error) {
	ret := _m.Called(ctx, customerID, amount)

	if len(ret) == 0 {
		panic("no return value specified for Withdraw")
	}

	var r0 *models.Transaction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Transaction)
	}

	return r0, ret.Error(1)
}

// Balance provides a mock function with given fields: ctx, customerID
func (_m *MockAccountOperator) Balance(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	ret := _m.Called(ctx, customerID)

	if len(ret) == 0 {
		panic("no return value specified for Balance")
	}

	return ret.Get(0).(decimal.Decimal), ret.Error(1)
}

// Statement provides a mock function with given fields: ctx, customerID, count
func (_m *MockAccountOperator) Statement(ctx context.Context, customerID int64, count int) (*models.Statement, error) {
	ret := _m.Called(ctx, customerID, count)

	if len(ret) == 0 {
		panic("no return value specified for Statement")
	}

	var r0 *models.Statement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Statement)
	}

	return r0, ret.Error(1)
}

// InterestQuote provides a mock function with given fields: ctx, customerID
func (_m *MockAccountOperator) InterestQuote(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	ret := _m.Called(ctx, customerID)

	if len(ret) == 0 {
		panic("no return value specified for InterestQuote")
	}

	return ret.Get(0).(decimal.Decimal), ret.Error(1)
}

// ApplyInterest provides a mock function with given fields: ctx, customerID
func (_m *MockAccountOperator) ApplyInterest(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	ret := _m.Called(ctx, customerID)

	if len(ret) == 0 {
		panic("no return value specified for ApplyInterest")
	}

	return ret.Get(0).(decimal.Decimal), ret.Error(1)
}

// SetCreditBlock provides a mock function with given fields: ctx, customerID, blocked
func (_m *MockAccountOperator) SetCreditBlock(ctx context.Context, customerID int64, blocked bool) (models.CustomerSnapshot, error) {
	ret := _m.Called(ctx, customerID, blocked)

	if len(ret) == 0 {
		panic("no return value specified for SetCreditBlock")
	}

	return ret.Get(0).(models.CustomerSnapshot), ret.Error(1)
}

// NewMockAccountOperator creates a new instance of MockAccountOperator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountOperator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountOperator {
	mock := &MockAccountOperator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
