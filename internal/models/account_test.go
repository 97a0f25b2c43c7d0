package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func testRules(clock *fakeClock) Rules {
	rules := DefaultRules()
	rules.Clock = clock.Now
	return rules
}

func newSavings(t *testing.T, balance, rate string) *Account {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	account, err := NewAccount(AccountParams{
		Number:         100001,
		IFSC:           "SBIN0001234",
		Type:           AccountTypeSavings,
		InitialBalance: dec(balance),
		InterestRate:   dec(rate),
	}, testRules(clock), NewSequence(1))
	require.NoError(t, err)
	return account
}

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name    string
		params  AccountParams
		wantErr error
	}{
		{
			name:   "valid savings",
			params: AccountParams{Number: 100001, IFSC: "HDFC0ABC123", Type: AccountTypeSavings, InitialBalance: dec("1000"), InterestRate: dec("6")},
		},
		{
			name:   "lowercase ifsc is normalized",
			params: AccountParams{Number: 100001, IFSC: "hdfc0abc123", Type: AccountTypeCurrent, InitialBalance: dec("5000")},
		},
		{
			name:    "ifsc without literal zero",
			params:  AccountParams{Number: 100001, IFSC: "HDFC1ABC123", Type: AccountTypeSavings, InitialBalance: dec("5000")},
			wantErr: ErrInvalidIFSC,
		},
		{
			name:    "ifsc too short",
			params:  AccountParams{Number: 100001, IFSC: "HDFC0AB", Type: AccountTypeSavings, InitialBalance: dec("5000")},
			wantErr: ErrInvalidIFSC,
		},
		{
			name:    "initial balance below floor",
			params:  AccountParams{Number: 100001, IFSC: "HDFC0ABC123", Type: AccountTypeSavings, InitialBalance: dec("999.99")},
			wantErr: ErrMinimumBalance,
		},
		{
			name:    "savings rate above 20",
			params:  AccountParams{Number: 100001, IFSC: "HDFC0ABC123", Type: AccountTypeSavings, InitialBalance: dec("5000"), InterestRate: dec("20.5")},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "negative savings rate",
			params:  AccountParams{Number: 100001, IFSC: "HDFC0ABC123", Type: AccountTypeSavings, InitialBalance: dec("5000"), InterestRate: dec("-1")},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "unknown type",
			params:  AccountParams{Number: 100001, IFSC: "HDFC0ABC123", Type: "LOAN", InitialBalance: dec("5000")},
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := NewAccount(tt.params, DefaultRules(), NewSequence(1))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "HDFC0ABC123", account.IFSC())
			assert.Empty(t, account.Transactions())
		})
	}
}

func TestNewAccount_CurrentDefaults(t *testing.T) {
	account, err := NewAccount(AccountParams{
		Number:         200002,
		IFSC:           "ICIC0000001",
		Type:           AccountTypeCurrent,
		InitialBalance: dec("2500"),
		CompanyName:    "   ",
	}, DefaultRules(), NewSequence(1))
	require.NoError(t, err)

	assert.Equal(t, "Unknown Company", account.CompanyName())
	assert.True(t, account.InterestRate().IsZero())
}

func TestAccount_Deposit(t *testing.T) {
	account := newSavings(t, "2000", "6")

	txn, err := account.Deposit(dec("250.50"))
	require.NoError(t, err)

	assert.True(t, account.Balance().Equal(dec("2250.50")))
	assert.Equal(t, TransactionTypeDeposit, txn.Type)
	assert.True(t, txn.BalanceAfter.Equal(account.Balance()))
	assert.Equal(t, int64(1), txn.ID)
	assert.Len(t, account.Transactions(), 1)

	for _, amount := range []string{"0", "-10"} {
		_, err := account.Deposit(dec(amount))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.True(t, account.Balance().Equal(dec("2250.50")))
	assert.Len(t, account.Transactions(), 1)
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		wantErr error
	}{
		{name: "valid withdrawal", balance: "5000", amount: "1500"},
		{name: "down to the floor exactly", balance: "5000", amount: "4000"},
		{name: "zero amount", balance: "5000", amount: "0", wantErr: ErrInvalidAmount},
		{name: "negative amount", balance: "5000", amount: "-1", wantErr: ErrInvalidAmount},
		{name: "more than balance", balance: "5000", amount: "5000.01", wantErr: ErrInsufficientFunds},
		{name: "below floor", balance: "1200", amount: "500", wantErr: ErrMinimumBalance},
		{name: "over daily limit", balance: "90000", amount: "50000.01", wantErr: ErrDailyLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := newSavings(t, tt.balance, "0")
			before := account.Balance()

			txn, err := account.Withdraw(dec(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, account.Balance().Equal(before), "balance must be unchanged")
				assert.Empty(t, account.Transactions(), "history must be unchanged")
				assert.True(t, account.DebitedToday().IsZero(), "accumulator must be unchanged")
				return
			}

			require.NoError(t, err)
			assert.True(t, account.Balance().Equal(before.Sub(dec(tt.amount))))
			assert.True(t, account.DebitedToday().Equal(dec(tt.amount)))
			assert.Equal(t, TransactionTypeWithdrawal, txn.Type)
			assert.True(t, txn.BalanceAfter.Equal(account.Balance()))
		})
	}
}

func TestAccount_WithdrawInsufficientFundsDetails(t *testing.T) {
	account := newSavings(t, "3000", "0")

	_, err := account.Withdraw(dec("4000"))

	var fundsErr *InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.True(t, fundsErr.Attempted.Equal(dec("4000")))
	assert.True(t, fundsErr.Available.Equal(dec("3000")))
	assert.Contains(t, err.Error(), "attempted 4000.00, available 3000.00")
}

func TestAccount_MinimumBalanceScenario(t *testing.T) {
	account := newSavings(t, "1200", "0")

	_, err := account.Withdraw(dec("500"))

	assert.ErrorIs(t, err, ErrMinimumBalance)
	assert.True(t, account.Balance().Equal(dec("1200")))
}

func TestAccount_DailyLimit(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	account, err := NewAccount(AccountParams{
		Number:         100001,
		IFSC:           "SBIN0001234",
		Type:           AccountTypeCurrent,
		InitialBalance: dec("200000"),
	}, testRules(clock), NewSequence(1))
	require.NoError(t, err)

	for _, amount := range []string{"20000", "20000", "9800"} {
		_, err := account.Withdraw(dec(amount))
		require.NoError(t, err)
	}
	assert.True(t, account.DebitedToday().Equal(dec("49800")))

	_, err = account.Withdraw(dec("500"))
	assert.ErrorIs(t, err, ErrDailyLimitExceeded)
	assert.True(t, account.Balance().Equal(dec("150200")))
	assert.Len(t, account.Transactions(), 3)

	// the remaining headroom is still usable
	_, err = account.Withdraw(dec("200"))
	require.NoError(t, err)

	clock.now = clock.now.Add(24 * time.Hour)
	assert.True(t, account.DebitedToday().IsZero(), "accumulator resets on a new day")

	_, err = account.Withdraw(dec("500"))
	require.NoError(t, err)
	assert.True(t, account.DebitedToday().Equal(dec("500")))
}

func TestAccount_DailyLimitResetsAtMidnight(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)}
	account, err := NewAccount(AccountParams{
		Number:         100001,
		IFSC:           "SBIN0001234",
		Type:           AccountTypeCurrent,
		InitialBalance: dec("200000"),
	}, testRules(clock), NewSequence(1))
	require.NoError(t, err)

	_, err = account.Withdraw(dec("50000"))
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = account.Withdraw(dec("50000"))
	assert.NoError(t, err)
}

func TestAccount_CalculateInterest(t *testing.T) {
	savings := newSavings(t, "2000", "6")
	assert.True(t, savings.CalculateInterest().Equal(dec("10")))
	assert.Empty(t, savings.Transactions(), "calculating interest has no side effect")

	current, err := NewAccount(AccountParams{
		Number:         300003,
		IFSC:           "SBIN0001234",
		Type:           AccountTypeCurrent,
		InitialBalance: dec("90000"),
	}, DefaultRules(), NewSequence(1))
	require.NoError(t, err)
	assert.True(t, current.CalculateInterest().IsZero())
}

func TestAccount_AddInterestToBalance(t *testing.T) {
	account := newSavings(t, "2000", "6")

	interest, err := account.AddInterestToBalance()
	require.NoError(t, err)

	assert.True(t, interest.Equal(dec("10")))
	assert.True(t, account.Balance().Equal(dec("2010")))
	history := account.Transactions()
	require.Len(t, history, 1)
	assert.Equal(t, TransactionTypeDeposit, history[0].Type)
	assert.Contains(t, history[0].Description, "Interest credited")

	zeroRate := newSavings(t, "2000", "0")
	interest, err = zeroRate.AddInterestToBalance()
	require.NoError(t, err)
	assert.True(t, interest.IsZero())
	assert.Empty(t, zeroRate.Transactions())
}

func TestAccount_CreditBlock(t *testing.T) {
	account := newSavings(t, "2000", "6")
	account.BlockCredits()

	_, err := account.Deposit(dec("100"))
	assert.ErrorIs(t, err, ErrCreditsBlocked)

	_, err = account.AddInterestToBalance()
	assert.ErrorIs(t, err, ErrCreditsBlocked)

	_, err = account.Reverse(dec("100"), uuid.New())
	assert.ErrorIs(t, err, ErrCreditsBlocked)

	_, err = account.Withdraw(dec("100"))
	assert.NoError(t, err, "debits are still allowed")

	account.UnblockCredits()
	_, err = account.Deposit(dec("100"))
	assert.NoError(t, err)
	assert.True(t, account.Balance().Equal(dec("2000")))
}

func TestAccount_TransferLegs(t *testing.T) {
	seq := NewSequence(1)
	from, err := NewAccount(AccountParams{Number: 100001, IFSC: "SBIN0001234", Type: AccountTypeCurrent, InitialBalance: dec("1500")}, DefaultRules(), seq)
	require.NoError(t, err)
	to, err := NewAccount(AccountParams{Number: 100002, IFSC: "SBIN0001234", Type: AccountTypeCurrent, InitialBalance: dec("1500")}, DefaultRules(), seq)
	require.NoError(t, err)
	ref := uuid.New()

	out, err := from.TransferOut(dec("300"), ref, to.Number())
	require.NoError(t, err)
	in, err := to.TransferIn(dec("300"), ref, from.Number())
	require.NoError(t, err)

	assert.Equal(t, TransactionTypeTransferOut, out.Type)
	assert.Equal(t, TransactionTypeTransferIn, in.Type)
	assert.Equal(t, ref, *out.ReferenceID)
	assert.Equal(t, ref, *in.ReferenceID)
	assert.Equal(t, out.ID+1, in.ID, "ids come from the shared sequence")
	assert.True(t, from.DebitedToday().Equal(dec("300")), "transfers count toward the daily limit")

	reversal, err := from.Reverse(dec("300"), ref)
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeDeposit, reversal.Type)
	assert.Equal(t, ref, *reversal.ReferenceID)
	assert.True(t, from.Balance().Equal(dec("1500")))
	assert.True(t, from.DebitedToday().IsZero(), "a same-day reversal releases the allowance")
}

func TestAccount_Statement(t *testing.T) {
	account := newSavings(t, "5000", "0")
	for _, amount := range []string{"1", "2", "3", "4"} {
		_, err := account.Deposit(dec(amount))
		require.NoError(t, err)
	}

	last := account.Statement(2)
	require.Len(t, last, 2)
	assert.True(t, last[0].Amount.Equal(dec("3")))
	assert.True(t, last[1].Amount.Equal(dec("4")))

	assert.Len(t, account.Statement(100), 4)
	assert.Empty(t, account.Statement(0))

	last[0].Description = "tampered"
	assert.NotEqual(t, "tampered", account.Statement(2)[0].Description)
}

func TestSequence(t *testing.T) {
	seq := NewSequence(0)
	assert.Equal(t, int64(1), seq.Next())
	assert.Equal(t, int64(2), seq.Next())
	assert.Equal(t, int64(3), seq.Peek())

	seeded := NewSequence(40)
	assert.Equal(t, int64(40), seeded.Next())
}

func TestValidIFSC(t *testing.T) {
	assert.True(t, ValidIFSC("SBIN0001234"))
	assert.True(t, ValidIFSC(" sbin0abcdef "))
	assert.False(t, ValidIFSC("SBI00001234"))
	assert.False(t, ValidIFSC("SBIN0-01234"))
	assert.False(t, ValidIFSC(""))
}
