package mocks

import (
	"context"

	"github.com/benx421/bank-ledger/internal/service"
	mock "github.com/stretchr/testify/mock"
)

// MockInterestAccruer is a mock type for the InterestAccruer type
type MockInterestAccruer struct {
	mock.Mock
}

// AccrueAll provides a mock function with given fields: ctx
func (_m *MockInterestAccruer) AccrueAll(ctx context.Context) ([]service.AccrualResult, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for AccrueAll")
	}

	var r0 []service.AccrualResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]service.AccrualResult)
	}

	return r0, ret.Error(1)
}

// NewMockInterestAccruer creates a new instance of MockInterestAccruer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockInterestAccruer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInterestAccruer {
	mock := &MockInterestAccruer{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
