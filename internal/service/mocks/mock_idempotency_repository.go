package mocks

import (
	"context"

	"github.com/benx421/bank-ledger/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// MockIdempotencyRepository is a mock type for the IdempotencyRepository type
type MockIdempotencyRepository struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, key, requestPath
func (_m *MockIdempotencyRepository) Get(ctx context.Context, key string, requestPath string) (*models.IdempotencyKey, error) {
	ret := _m.Called(ctx, key, requestPath)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *models.IdempotencyKey
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.IdempotencyKey)
	}

	return r0, ret.Error(1)
}

// Store provides a mock function with given fields: ctx, idemKey
func (_m *MockIdempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	ret := _m.Called(ctx, idemKey)

	if len(ret) == 0 {
		panic("no return value specified for Store")
	}

	return ret.Error(0)
}

// NewMockIdempotencyRepository creates a new instance of MockIdempotencyRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdempotencyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdempotencyRepository {
	mock := &MockIdempotencyRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
