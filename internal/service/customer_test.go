package service

import (
	"context"
	"testing"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/benx421/bank-ledger/internal/repository"
	"github.com/benx421/bank-ledger/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validOpenRequest() OpenAccountRequest {
	return OpenAccountRequest{
		CustomerID:     7,
		Name:           "  Kavya Iyer ",
		AccountNumber:  200007,
		IFSC:           "icic0001122",
		Type:           models.AccountTypeSavings,
		InitialBalance: dec("2500"),
		InterestRate:   dec("5.5"),
		City:           "Kochi",
		State:          "KL",
		PinCode:        682001,
	}
}

func TestCustomerService_Open(t *testing.T) {
	t.Run("opens savings account", func(t *testing.T) {
		store := repository.NewStore(repository.NewDirectory(nil))
		svc := NewCustomerService(store, models.DefaultRules())

		snapshot, err := svc.Open(context.Background(), validOpenRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(7), snapshot.ID)
		assert.Equal(t, "Kavya Iyer", snapshot.Name)
		assert.Equal(t, "ICIC0001122", snapshot.Account.IFSC)
		assert.True(t, dec("2500").Equal(snapshot.Account.Balance))
		assert.Equal(t, models.NewAddress("Kochi", "KL", 682001), snapshot.Address)

		got, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, snapshot.Account.Number, got.Account.Number)
	})

	t.Run("opens current account with lowercase type", func(t *testing.T) {
		store := repository.NewStore(repository.NewDirectory(nil))
		svc := NewCustomerService(store, models.DefaultRules())

		req := validOpenRequest()
		req.Type = "current"
		req.CompanyName = "Iyer Traders"

		snapshot, err := svc.Open(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, models.AccountTypeCurrent, snapshot.Account.Type)
		assert.Equal(t, "Iyer Traders", snapshot.Account.CompanyName)
		assert.True(t, snapshot.Account.InterestRate.IsZero())
	})

	tests := []struct {
		mutate func(*OpenAccountRequest)
		name   string
		code   string
	}{
		{func(r *OpenAccountRequest) { r.CustomerID = 0 }, "non-positive id", ErrCodeInvalidArgument},
		{func(r *OpenAccountRequest) { r.AccountNumber = 42 }, "short account number", ErrCodeInvalidArgument},
		{func(r *OpenAccountRequest) { r.IFSC = "BAD" }, "malformed ifsc", ErrCodeInvalidIFSC},
		{func(r *OpenAccountRequest) { r.Name = "K" }, "short name", ErrCodeInvalidArgument},
		{func(r *OpenAccountRequest) { r.InitialBalance = dec("-1") }, "negative balance", ErrCodeInvalidAmount},
		{func(r *OpenAccountRequest) { r.InitialBalance = dec("999.99") }, "below floor", ErrCodeMinimumBalance},
		{func(r *OpenAccountRequest) { r.InterestRate = dec("25") }, "rate above range", ErrCodeInvalidArgument},
		{func(r *OpenAccountRequest) { r.Type = "FIXED" }, "unknown type", ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repository.NewStore(repository.NewDirectory(nil))
			svc := NewCustomerService(store, models.DefaultRules())

			req := validOpenRequest()
			tt.mutate(&req)

			_, err := svc.Open(context.Background(), req)
			assertCode(t, err, tt.code)

			all, err := svc.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestCustomerService_OpenDuplicate(t *testing.T) {
	store := repository.NewStore(repository.NewDirectory(nil))
	svc := NewCustomerService(store, models.DefaultRules())
	ctx := context.Background()

	_, err := svc.Open(ctx, validOpenRequest())
	require.NoError(t, err)

	sameID := validOpenRequest()
	sameID.AccountNumber = 200008
	_, err = svc.Open(ctx, sameID)
	assertCode(t, err, ErrCodeDuplicateAccount)

	sameNumber := validOpenRequest()
	sameNumber.CustomerID = 8
	_, err = svc.Open(ctx, sameNumber)
	assertCode(t, err, ErrCodeDuplicateAccount)
}

func TestCustomerService_PerformOpen(t *testing.T) {
	t.Run("repository rejects customer", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepository(t)
		svc := NewCustomerService(nil, models.DefaultRules())

		repo.On("Sequence").Return(models.NewSequence(1))
		repo.On("Add", mock.AnythingOfType("*models.Customer")).Return(models.ErrDuplicateAccount)

		customer, err := svc.performOpen(repo, validOpenRequest())

		assert.Nil(t, customer)
		assertCode(t, err, ErrCodeDuplicateAccount)
	})

	t.Run("draws transaction ids from the directory sequence", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepository(t)
		svc := NewCustomerService(nil, models.DefaultRules())
		seq := models.NewSequence(40)

		repo.On("Sequence").Return(seq)
		repo.On("Add", mock.AnythingOfType("*models.Customer")).Return(nil)

		customer, err := svc.performOpen(repo, validOpenRequest())
		require.NoError(t, err)

		txn, err := customer.Account().Deposit(dec("10"))
		require.NoError(t, err)
		assert.Equal(t, int64(40), txn.ID)
	})
}

func TestCustomerService_Lookups(t *testing.T) {
	dir := repository.NewDirectory(nil)
	addCustomer(t, dir, 1, "Asha Rao", "2000", zeroFloorRules())
	addCustomer(t, dir, 2, "Ravi Kumar", "1500", zeroFloorRules())
	addCustomer(t, dir, 3, "Meera RAO", "0", zeroFloorRules())
	svc := NewCustomerService(repository.NewStore(dir), models.DefaultRules())
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := svc.FindByAccountNumber(ctx, 100002)
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", found.Name)

	_, err = svc.FindByAccountNumber(ctx, 100009)
	assertCode(t, err, ErrCodeAccountNotFound)

	_, err = svc.FindByAccountNumber(ctx, 12)
	assertCode(t, err, ErrCodeInvalidArgument)

	matches, err := svc.Search(ctx, "rao")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(1), matches[0].ID)
	assert.Equal(t, int64(3), matches[1].ID)

	none, err := svc.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.Get(ctx, 99)
	assertCode(t, err, ErrCodeAccountNotFound)
}

func TestCustomerService_UpdateProfile(t *testing.T) {
	newService := func(t *testing.T) *CustomerService {
		dir := repository.NewDirectory(nil)
		addCustomer(t, dir, 1, "Asha Rao", "2000", zeroFloorRules())
		addCustomer(t, dir, 2, "Ravi Kumar", "1500", zeroFloorRules())
		return NewCustomerService(repository.NewStore(dir), models.DefaultRules())
	}
	ctx := context.Background()

	t.Run("replaces name and address", func(t *testing.T) {
		svc := newService(t)
		name := "Asha R. Menon"
		address := models.NewAddress("Mumbai", "MH", 400001)

		snapshot, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{Name: &name, Address: &address})

		require.NoError(t, err)
		assert.Equal(t, name, snapshot.Name)
		assert.Equal(t, address, snapshot.Address)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), all[len(all)-1].ID, "updated entry moves to the end")
	})

	t.Run("invalid name leaves customer untouched", func(t *testing.T) {
		svc := newService(t)
		name := "x"
		address := models.NewAddress("Mumbai", "MH", 400001)

		_, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{Name: &name, Address: &address})
		assertCode(t, err, ErrCodeInvalidArgument)

		got, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", got.Name)
		assert.Equal(t, "Chennai", got.Address.City)
	})

	t.Run("empty update", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{})
		assertCode(t, err, ErrCodeInvalidArgument)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc := newService(t)
		name := "Someone Else"

		_, err := svc.UpdateProfile(ctx, 9, ProfileUpdate{Name: &name})
		assertCode(t, err, ErrCodeAccountNotFound)
	})
}

func TestCustomerService_Close(t *testing.T) {
	dir := repository.NewDirectory(nil)
	addCustomer(t, dir, 1, "Asha Rao", "150", zeroFloorRules())
	addCustomer(t, dir, 2, "Ravi Kumar", "0", zeroFloorRules())
	svc := NewCustomerService(repository.NewStore(dir), models.DefaultRules())
	ctx := context.Background()

	deleted, err := svc.Close(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted, "account with funds is kept")

	_, err = svc.Get(ctx, 1)
	assert.NoError(t, err)

	deleted, err = svc.Close(ctx, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, 2)
	assertCode(t, err, ErrCodeAccountNotFound)

	_, err = svc.Close(ctx, 2)
	assertCode(t, err, ErrCodeAccountNotFound)
}
