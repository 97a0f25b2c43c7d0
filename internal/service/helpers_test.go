package service

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/benx421/bank-ledger/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func zeroFloorRules() models.Rules {
	rules := models.DefaultRules()
	rules.MinimumBalance = decimal.Zero
	return rules
}

func addCustomer(t *testing.T, dir *repository.Directory, id int64, name, balance string, rules models.Rules) *models.Customer {
	t.Helper()

	account, err := models.NewAccount(models.AccountParams{
		Number:         100000 + id,
		IFSC:           "HDFC0001234",
		Type:           models.AccountTypeSavings,
		InitialBalance: dec(balance),
		InterestRate:   dec("6"),
	}, rules, dir.Sequence())
	require.NoError(t, err)

	customer, err := models.NewCustomer(id, name, account, models.NewAddress("Chennai", "TN", 600001))
	require.NoError(t, err)
	require.NoError(t, dir.Add(customer))
	return customer
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, code, svcErr.Code)
}
