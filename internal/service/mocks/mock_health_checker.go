package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockHealthChecker is a mock type for the HealthChecker type
type MockHealthChecker struct {
	mock.Mock
}

// PingContext provides a mock function with given fields: ctx
func (_m *MockHealthChecker) PingContext(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for PingContext")
	}

	return ret.Error(0)
}

// NewMockHealthChecker creates a new instance of MockHealthChecker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHealthChecker(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHealthChecker {
	mock := &MockHealthChecker{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
