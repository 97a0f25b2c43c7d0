package repository

import (
	"testing"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func zeroFloorRules() models.Rules {
	rules := models.DefaultRules()
	rules.MinimumBalance = decimal.Zero
	return rules
}

func newTestCustomer(t *testing.T, dir *Directory, id, accountNumber int64, name, balance string) *models.Customer {
	t.Helper()

	account, err := models.NewAccount(models.AccountParams{
		Number:         accountNumber,
		IFSC:           "SBIN0001234",
		Type:           models.AccountTypeSavings,
		InitialBalance: decimal.RequireFromString(balance),
		InterestRate:   decimal.NewFromInt(4),
	}, zeroFloorRules(), dir.Sequence())
	require.NoError(t, err)

	customer, err := models.NewCustomer(id, name, account, models.NewAddress("Pune", "MH", 411001))
	require.NoError(t, err)
	return customer
}

func seedDirectory(t *testing.T) *Directory {
	t.Helper()

	dir := NewDirectory(nil)
	require.NoError(t, dir.Add(newTestCustomer(t, dir, 1, 100001, "Asha Rao", "2000")))
	require.NoError(t, dir.Add(newTestCustomer(t, dir, 2, 100002, "Ravi Kumar", "1500")))
	require.NoError(t, dir.Add(newTestCustomer(t, dir, 3, 100003, "Meera Rao", "0")))
	return dir
}
