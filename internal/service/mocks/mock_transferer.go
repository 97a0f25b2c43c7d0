package mocks

import (
	"context"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

// MockTransferer is a mock type for the Transferer type
type MockTransferer struct {
	mock.Mock
}

// Transfer provides a mock function with given fields: ctx, fromID, toID, amount
func (_m *MockTransferer) Transfer(ctx context.Context, fromID int64, toID int64, amount decimal.Decimal) (*models.Transfer, error) {
	ret := _m.Called(ctx, fromID, toID, amount)

	if len(ret) == 0 {
		panic("no return value specified for Transfer")
	}

	var r0 *models.Transfer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Transfer)
	}

	return r0, ret.Error(1)
}

// NewMockTransferer creates a new instance of MockTransferer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTransferer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransferer {
	mock := &MockTransferer{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
