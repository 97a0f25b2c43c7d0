package mocks

import (
	"context"

	"github.com/benx421/bank-ledger/internal/service"
	mock "github.com/stretchr/testify/mock"
)

// MockDashboardReporter is a mock type for the DashboardReporter type
type MockDashboardReporter struct {
	mock.Mock
}

// Summary provides a mock function with given fields: ctx
func (_m *MockDashboardReporter) Summary(ctx context.Context) (*service.Summary, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Summary")
	}

	var r0 *service.Summary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Summary)
	}

	return r0, ret.Error(1)
}

// NewMockDashboardReporter creates a new instance of MockDashboardReporter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDashboardReporter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDashboardReporter {
	mock := &MockDashboardReporter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
