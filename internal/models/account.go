package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the account variant
type AccountType string

const (
	AccountTypeSavings AccountType = "SAVINGS"
	AccountTypeCurrent AccountType = "CURRENT"
)

// DisplayName returns the human readable name of the account type.
func (t AccountType) DisplayName() string {
	switch t {
	case AccountTypeSavings:
		return "Savings Account"
	case AccountTypeCurrent:
		return "Current Account"
	default:
		return string(t)
	}
}

// EarnsInterest reports whether accounts of this type accrue interest.
func (t AccountType) EarnsInterest() bool {
	return t == AccountTypeSavings
}

const defaultCompanyName = "Unknown Company"

var (
	ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

	maxInterestRate = decimal.NewFromInt(20)
	hundred         = decimal.NewFromInt(100)
	monthsPerYear   = decimal.NewFromInt(12)
)

// NormalizeIFSC upper-cases and trims a routing code.
func NormalizeIFSC(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidIFSC reports whether code is four letters, a literal zero and six
// alphanumerics once normalized.
func ValidIFSC(code string) bool {
	return ifscPattern.MatchString(NormalizeIFSC(code))
}

// Rules holds the limits every account enforces.
type Rules struct {
	// Clock returns the current time; the local calendar day of its result
	// drives the daily withdrawal window. Defaults to time.Now.
	Clock                func() time.Time
	MinimumBalance       decimal.Decimal
	DailyWithdrawalLimit decimal.Decimal
}

// DefaultRules returns the stock floor of 1000 and daily cap of 50000.
func DefaultRules() Rules {
	return Rules{
		MinimumBalance:       decimal.NewFromInt(1000),
		DailyWithdrawalLimit: decimal.NewFromInt(50000),
	}
}

func (r Rules) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock()
}

// AccountParams describes an account to open.
type AccountParams struct {
	IFSC           string
	CompanyName    string
	Type           AccountType
	InitialBalance decimal.Decimal
	InterestRate   decimal.Decimal
	Number         int64
}

// Account is a customer account: a balance, its limits and an append-only
// transaction history. Savings accounts earn monthly simple interest, current
// accounts earn none.
type Account struct {
	debitDay       time.Time
	seq            *Sequence
	rules          Rules
	ifsc           string
	companyName    string
	accountType    AccountType
	history        []Transaction
	balance        decimal.Decimal
	interestRate   decimal.Decimal
	debitedToday   decimal.Decimal
	number         int64
	creditsBlocked bool
}

// NewAccount validates params against rules and opens the account. Transaction
// ids are drawn from seq.
func NewAccount(params AccountParams, rules Rules, seq *Sequence) (*Account, error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: transaction sequence required", ErrInvalidArgument)
	}

	code := NormalizeIFSC(params.IFSC)
	if !ifscPattern.MatchString(code) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIFSC, params.IFSC)
	}

	if params.InitialBalance.LessThan(rules.MinimumBalance) {
		return nil, fmt.Errorf("%w: initial balance %s is below minimum %s",
			ErrMinimumBalance, params.InitialBalance.StringFixed(2), rules.MinimumBalance.StringFixed(2))
	}

	account := &Account{
		number:      params.Number,
		ifsc:        code,
		accountType: params.Type,
		balance:     decimal.Max(decimal.Zero, params.InitialBalance),
		rules:       rules,
		seq:         seq,
	}

	switch params.Type {
	case AccountTypeSavings:
		if params.InterestRate.IsNegative() || params.InterestRate.GreaterThan(maxInterestRate) {
			return nil, fmt.Errorf("%w: interest rate must be 0-20%%, got %s", ErrInvalidArgument, params.InterestRate)
		}
		account.interestRate = params.InterestRate
	case AccountTypeCurrent:
		account.companyName = strings.TrimSpace(params.CompanyName)
		if account.companyName == "" {
			account.companyName = defaultCompanyName
		}
	default:
		return nil, fmt.Errorf("%w: unknown account type %q", ErrInvalidArgument, params.Type)
	}

	return account, nil
}

func (a *Account) Number() int64 { return a.number }

func (a *Account) IFSC() string { return a.ifsc }

func (a *Account) Type() AccountType { return a.accountType }

func (a *Account) Balance() decimal.Decimal { return a.balance }

// InterestRate is the annual savings rate in percent; zero for current accounts.
func (a *Account) InterestRate() decimal.Decimal { return a.interestRate }

// CompanyName is only set for current accounts.
func (a *Account) CompanyName() string { return a.companyName }

// CreditsBlocked reports whether deposits and inbound transfers are refused.
func (a *Account) CreditsBlocked() bool { return a.creditsBlocked }

// BlockCredits makes the account refuse every credit, reversals included.
func (a *Account) BlockCredits() { a.creditsBlocked = true }

// UnblockCredits lifts a credit block.
func (a *Account) UnblockCredits() { a.creditsBlocked = false }

// DebitedToday returns the sum of debits made on the current local day.
func (a *Account) DebitedToday() decimal.Decimal {
	return a.spentOn(startOfDay(a.rules.now()))
}

// Deposit credits amount to the account.
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	return a.credit(amount, TransactionTypeDeposit, fmt.Sprintf("Deposit to A/c %d", a.number), nil)
}

// Withdraw debits amount from the account. Every limit is checked before the
// balance changes, so a failed withdrawal leaves the account untouched.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	return a.debit(amount, TransactionTypeWithdrawal, fmt.Sprintf("Withdrawal from A/c %d", a.number), nil)
}

// TransferOut debits amount as the sending leg of transfer ref.
func (a *Account) TransferOut(amount decimal.Decimal, ref uuid.UUID, to int64) (Transaction, error) {
	return a.debit(amount, TransactionTypeTransferOut, fmt.Sprintf("Transfer to A/c %d", to), &ref)
}

// TransferIn credits amount as the receiving leg of transfer ref.
func (a *Account) TransferIn(amount decimal.Decimal, ref uuid.UUID, from int64) (Transaction, error) {
	return a.credit(amount, TransactionTypeTransferIn, fmt.Sprintf("Transfer from A/c %d", from), &ref)
}

// Reverse credits back amount debited by transfer ref. A reversal on the day
// of the debit also gives the amount back to the daily withdrawal allowance.
func (a *Account) Reverse(amount decimal.Decimal, ref uuid.UUID) (Transaction, error) {
	txn, err := a.credit(amount, TransactionTypeDeposit, fmt.Sprintf("Reversal of transfer %s", ref), &ref)
	if err != nil {
		return Transaction{}, err
	}

	if today := startOfDay(txn.Timestamp); a.debitDay.Equal(today) {
		a.debitedToday = decimal.Max(decimal.Zero, a.debitedToday.Sub(amount))
	}
	return txn, nil
}

// CalculateInterest returns one month of simple interest on the current
// balance, rounded to two places. Current accounts always yield zero.
func (a *Account) CalculateInterest() decimal.Decimal {
	switch a.accountType {
	case AccountTypeSavings:
		return a.balance.Mul(a.interestRate).Div(hundred).Div(monthsPerYear).Round(2)
	default:
		return decimal.Zero
	}
}

// AddInterestToBalance credits the month's interest and returns it. A zero
// interest is a no-op.
func (a *Account) AddInterestToBalance() (decimal.Decimal, error) {
	interest := a.CalculateInterest()
	if !interest.IsPositive() {
		return decimal.Zero, nil
	}

	if _, err := a.credit(interest, TransactionTypeDeposit, fmt.Sprintf("Interest credited to A/c %d", a.number), nil); err != nil {
		return decimal.Zero, err
	}
	return interest, nil
}

// Statement returns the last n transactions in chronological order.
func (a *Account) Statement(n int) []Transaction {
	if n <= 0 {
		return []Transaction{}
	}
	start := max(0, len(a.history)-n)
	return cloneTransactions(a.history[start:])
}

// Transactions returns a copy of the full history.
func (a *Account) Transactions() []Transaction {
	return cloneTransactions(a.history)
}

func (a *Account) String() string {
	return fmt.Sprintf("AccNo=%d, IFSC=%s, Bal=%s, Type=%s",
		a.number, a.ifsc, a.balance.StringFixed(2), a.accountType.DisplayName())
}

func (a *Account) credit(amount decimal.Decimal, txType TransactionType, description string, ref *uuid.UUID) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if a.creditsBlocked {
		return Transaction{}, fmt.Errorf("%w: A/c %d", ErrCreditsBlocked, a.number)
	}

	a.balance = a.balance.Add(amount)
	return a.record(txType, amount, description, ref, a.rules.now()), nil
}

func (a *Account) debit(amount decimal.Decimal, txType TransactionType, description string, ref *uuid.UUID) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	if amount.GreaterThan(a.balance) {
		return Transaction{}, &InsufficientFundsError{Attempted: amount, Available: a.balance}
	}

	newBalance := a.balance.Sub(amount)
	if newBalance.LessThan(a.rules.MinimumBalance) {
		return Transaction{}, fmt.Errorf("%w: balance would fall to %s, minimum is %s",
			ErrMinimumBalance, newBalance.StringFixed(2), a.rules.MinimumBalance.StringFixed(2))
	}

	now := a.rules.now()
	today := startOfDay(now)
	spent := a.spentOn(today).Add(amount)
	if spent.GreaterThan(a.rules.DailyWithdrawalLimit) {
		return Transaction{}, fmt.Errorf("%w: limit is %s per day",
			ErrDailyLimitExceeded, a.rules.DailyWithdrawalLimit.StringFixed(2))
	}

	a.balance = newBalance
	a.debitDay = today
	a.debitedToday = spent
	return a.record(txType, amount, description, ref, now), nil
}

// spentOn returns the debit total for day; the accumulator belongs to the day
// of the last debit and reads as zero on any other day.
func (a *Account) spentOn(day time.Time) decimal.Decimal {
	if !a.debitDay.Equal(day) {
		return decimal.Zero
	}
	return a.debitedToday
}

func (a *Account) record(txType TransactionType, amount decimal.Decimal, description string, ref *uuid.UUID, at time.Time) Transaction {
	txn := Transaction{
		ID:           a.seq.Next(),
		Type:         txType,
		Amount:       amount,
		BalanceAfter: a.balance,
		Timestamp:    at,
		Description:  description,
	}
	if ref != nil {
		id := *ref
		txn.ReferenceID = &id
	}
	a.history = append(a.history, txn)
	return cloneTransaction(txn)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func cloneTransaction(txn Transaction) Transaction {
	if txn.ReferenceID != nil {
		id := *txn.ReferenceID
		txn.ReferenceID = &id
	}
	return txn
}

func cloneTransactions(in []Transaction) []Transaction {
	out := make([]Transaction, len(in))
	for i, txn := range in {
		out[i] = cloneTransaction(txn)
	}
	return out
}
