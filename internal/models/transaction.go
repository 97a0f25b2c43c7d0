package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal  TransactionType = "WITHDRAWAL"
	TransactionTypeTransferIn  TransactionType = "TRANSFER_IN"
	TransactionTypeTransferOut TransactionType = "TRANSFER_OUT"
)

// DisplayName returns the human readable name of the transaction type.
func (t TransactionType) DisplayName() string {
	switch t {
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	case TransactionTypeTransferIn:
		return "Transfer In"
	case TransactionTypeTransferOut:
		return "Transfer Out"
	default:
		return string(t)
	}
}

// IsCredit reports whether the transaction type increases the balance.
func (t TransactionType) IsCredit() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeTransferIn
}

// Transaction is an immutable ledger entry appended to one account's history
type Transaction struct {
	Timestamp    time.Time       `json:"timestamp"`
	ReferenceID  *uuid.UUID      `json:"reference_id,omitempty"`
	Type         TransactionType `json:"type"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	ID           int64           `json:"id"`
}

// Transfer is the outcome of a completed transfer between two customers.
type Transfer struct {
	CreatedAt      time.Time       `json:"created_at"`
	Debit          Transaction     `json:"debit"`
	Credit         Transaction     `json:"credit"`
	Amount         decimal.Decimal `json:"amount"`
	FromCustomerID int64           `json:"from_customer_id"`
	ToCustomerID   int64           `json:"to_customer_id"`
	ID             uuid.UUID       `json:"id"`
}

// Statement is a customer's recent history as of GeneratedAt.
type Statement struct {
	GeneratedAt  time.Time        `json:"generated_at"`
	Customer     CustomerSnapshot `json:"customer"`
	Transactions []Transaction    `json:"transactions"`
}
