package mocks

import (
	"context"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/benx421/bank-ledger/internal/service"
	mock "github.com/stretchr/testify/mock"
)

// MockCustomerManager is a mock type for the CustomerManager type
type MockCustomerManager struct {
	mock.Mock
}

// Open provides a mock function with given fields: ctx, req
func (_m *MockCustomerManager) Open(ctx context.Context, req service.OpenAccountRequest) (models.CustomerSnapshot, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Open")
	}

	return ret.Get(0).(models.CustomerSnapshot), ret.Error(1)
}

// Get provides a mock function with given fields: ctx, customerID
func (_m *MockCustomerManager) Get(ctx context.Context, customerID int64) (models.CustomerSnapshot, error) {
	ret := _m.Called(ctx, customerID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	return ret.Get(0).(models.CustomerSnapshot), ret.Error(1)
}

// List provides a mock function with given fields: ctx
func (_m *MockCustomerManager) List(ctx context.Context) ([]models.CustomerSnapshot, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []models.CustomerSnapshot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CustomerSnapshot)
	}

	return r0, ret.Error(1)
}

// FindByAccountNumber provides a mock function with given fields: ctx, accountNumber
func (_m *MockCustomerManager) FindByAccountNumber(ctx context.Context, accountNumber int64) (models.CustomerSnapshot, error) {
	ret := _m.Called(ctx, accountNumber)

	if len(ret) == 0 {
		panic("no return value specified for FindByAccountNumber")
	}

	return ret.Get(0).(models.CustomerSnapshot), ret.Error(1)
}

// Search provides a mock function with given fields: ctx, name
func (_m *MockCustomerManager) Search(ctx context.Context, name string) ([]models.CustomerSnapshot, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 []models.CustomerSnapshot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CustomerSnapshot)
	}

	return r0, ret.Error(1)
}

// UpdateProfile provides a mock function with given fields: ctx, customerID, update
func (_m *MockCustomerManager) UpdateProfile(ctx context.Context, customerID int64, update service.ProfileUpdate) (models.CustomerSnapshot, error) {
	ret := _m.Called(ctx, customerID, update)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProfile")
	}

	return ret.Get(0).(models.CustomerSnapshot), ret.Error(1)
}

// Close provides a mock function with given fields: ctx, customerID
func (_m *MockCustomerManager) Close(ctx context.Context, customerID int64) (bool, error) {
	ret := _m.Called(ctx, customerID)

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	return ret.Bool(0), ret.Error(1)
}

// NewMockCustomerManager creates a new instance of MockCustomerManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCustomerManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerManager {
	mock := &MockCustomerManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
