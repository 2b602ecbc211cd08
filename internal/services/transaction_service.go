package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/storage"
)

// transactionService owns the append-only transaction log.
type transactionService struct {
	store  storage.Gateway
	ledger LedgerServicer
	log    []models.Transaction
}

// NewTransactionService creates a TransactionServicer, restoring any saved log.
func NewTransactionService(store storage.Gateway, ledger LedgerServicer) (TransactionServicer, error) {
	s := &transactionService{store: store, ledger: ledger}
	if _, err := store.Load(storage.KeyTransactions, &s.log); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return s, nil
}

// Append validates and records a transaction. Expenses are forwarded to the
// ledger. The full log is persisted before returning.
func (s *transactionService) Append(
	transactionType models.TransactionType,
	amount decimal.Decimal,
	category, description string,
	timestamp time.Time,
) (*AppendOutcome, error) {
	if !transactionType.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "transaction type must be income or expense")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	tx := models.Transaction{
		ID:          newID(),
		Type:        transactionType,
		Amount:      amount,
		Category:    strings.TrimSpace(category),
		Description: description,
		Date:        timestamp.UTC(),
	}
	s.log = append(s.log, tx)

	outcome := &AppendOutcome{Transaction: tx}

	// The ledger and the log are both persisted even if one of them fails,
	// so the first storage error is reported after both attempts.
	var storageErr error
	if tx.IsExpense() {
		spend, err := s.ledger.RecordSpend(amount)
		if err != nil {
			storageErr = err
		} else {
			outcome.Warning = spend.Warning
		}
	}
	outcome.Period = s.ledger.CurrentPeriod()

	if err := s.store.Save(storage.KeyTransactions, s.log); err != nil && storageErr == nil {
		logger.Named("transactions").Warnw("failed to persist transaction log", "error", err)
		storageErr = apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if storageErr != nil {
		return nil, storageErr
	}

	logger.Named("transactions").Infow("transaction appended",
		"id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount.String(),
		"category", tx.Category,
	)
	return outcome, nil
}

// ListAll returns a copy of the log in append order.
func (s *transactionService) ListAll() []models.Transaction {
	out := make([]models.Transaction, len(s.log))
	copy(out, s.log)
	return out
}
