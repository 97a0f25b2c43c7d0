package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benx421/bank-ledger/internal/models"
	"github.com/benx421/bank-ledger/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferService moves funds between two customers. The sending leg is
// reversed when the receiving leg fails.
type TransferService struct {
	store  *repository.Store
	logger *slog.Logger
	newID  func() uuid.UUID
	now    func() time.Time
}

// NewTransferService creates a new TransferService
func NewTransferService(store *repository.Store, logger *slog.Logger) *TransferService {
	return &TransferService{
		store:  store,
		logger: logger,
		newID:  uuid.New,
		now:    time.Now,
	}
}

// Transfer debits fromID and credits toID with amount
func (s *TransferService) Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (*models.Transfer, error) {
	var transfer *models.Transfer
	err := s.store.Update(func(repo repository.CustomerRepository) error {
		var err error
		transfer, err = s.performTransfer(ctx, repo, fromID, toID, amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// performTransfer contains the core transfer logic. It must run under the
// store's exclusive lock.
func (s *TransferService) performTransfer(
	ctx context.Context,
	repo repository.CustomerRepository,
	fromID, toID int64,
	amount decimal.Decimal,
) (*models.Transfer, error) {
	if fromID == toID {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidArgument,
			Message: "cannot transfer to the same customer",
			Err:     models.ErrInvalidArgument,
		}
	}

	sender, err := repo.FindByID(fromID)
	if err != nil {
		return nil, wrapError("sender not found", err)
	}
	receiver, err := repo.FindByID(toID)
	if err != nil {
		return nil, wrapError("receiver not found", err)
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, wrapError("invalid amount", err)
	}

	ref := s.newID()
	from := sender.Account()
	to := receiver.Account()

	debit, err := from.TransferOut(amount, ref, to.Number())
	if err != nil {
		return nil, wrapError("transfer failed", err)
	}

	credit, err := to.TransferIn(amount, ref, from.Number())
	if err != nil {
		return nil, s.compensate(ctx, from, amount, ref, err)
	}

	return &models.Transfer{
		ID:             ref,
		FromCustomerID: fromID,
		ToCustomerID:   toID,
		Amount:         amount,
		Debit:          debit,
		Credit:         credit,
		CreatedAt:      s.now(),
	}, nil
}

// compensate reverses the sending leg after creditErr. When the reversal
// itself fails the ledger is inconsistent and both causes are reported.
func (s *TransferService) compensate(ctx context.Context, from *models.Account, amount decimal.Decimal, ref uuid.UUID, creditErr error) error {
	if _, rollbackErr := from.Reverse(amount, ref); rollbackErr != nil {
		s.logger.ErrorContext(ctx, "transfer rollback failed, ledger inconsistent",
			"reference_id", ref,
			"account_number", from.Number(),
			"amount", amount.StringFixed(2),
			"credit_error", creditErr,
			"rollback_error", rollbackErr,
		)
		return &ServiceError{
			Code:    ErrCodeCriticalInconsistency,
			Message: "transfer rollback failed",
			Err:     errors.Join(creditErr, rollbackErr),
		}
	}

	return wrapError("transfer failed, sender refunded", creditErr)
}
