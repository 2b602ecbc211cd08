package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/storage"
)

// billService tracks pending bills.
type billService struct {
	store        storage.Gateway
	transactions TransactionServicer
	pending      []models.Bill
}

// NewBillService creates a BillServicer, restoring any saved pending bills.
// Settled bills become expenses through transactions.
func NewBillService(store storage.Gateway, transactions TransactionServicer) (BillServicer, error) {
	s := &billService{store: store, transactions: transactions}
	if _, err := store.Load(storage.KeyPendingBills, &s.pending); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return s, nil
}

// AddBill appends a pending bill.
func (s *billService) AddBill(name string, amount decimal.Decimal, dueDate models.Date) (*models.Bill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "bill name is required")
	}
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "bill amount must be greater than zero")
	}
	if dueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "due date is required")
	}

	bill := models.Bill{
		ID:      newID(),
		Name:    name,
		Amount:  amount,
		DueDate: dueDate,
	}
	s.pending = append(s.pending, bill)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &bill, nil
}

// ListPending returns a copy of the pending bills in insertion order.
func (s *billService) ListPending() []models.Bill {
	out := make([]models.Bill, len(s.pending))
	copy(out, s.pending)
	return out
}

// Settle converts the bill at index into an expense and removes it from
// the pending set. A settled bill no longer exists, so it cannot be
// settled twice.
func (s *billService) Settle(index int, now time.Time) (*SettleOutcome, error) {
	if index < 0 || index >= len(s.pending) {
		return nil, apperrors.WithMessage(apperrors.ErrIndexOutOfRange,
			fmt.Sprintf("no pending bill at index %d", index))
	}
	bill := s.pending[index]

	appended, appendErr := s.transactions.Append(
		models.TransactionTypeExpense,
		bill.Amount,
		models.BillsCategory,
		"Paid bill: "+bill.Name,
		now,
	)
	if appendErr != nil && !errors.Is(appendErr, apperrors.ErrStorage) {
		return nil, appendErr
	}

	// The expense is in the log at this point, so the bill must leave the
	// pending set even when persisting the log failed.
	s.pending = append(s.pending[:index:index], s.pending[index+1:]...)
	if err := s.persist(); err != nil {
		return nil, err
	}
	if appendErr != nil {
		return nil, appendErr
	}

	bill.Paid = true
	logger.Named("bills").Infow("bill settled",
		"id", bill.ID,
		"name", bill.Name,
		"amount", bill.Amount.String(),
	)
	return &SettleOutcome{
		Bill:        bill,
		Transaction: appended.Transaction,
		Period:      appended.Period,
		Warning:     appended.Warning,
	}, nil
}

// DueSoon lists every pending bill with its days until due. It does not
// mutate state, so repeated calls return the same result.
func (s *billService) DueSoon(today time.Time) []models.BillDue {
	out := make([]models.BillDue, 0, len(s.pending))
	for i, bill := range s.pending {
		out = append(out, models.BillDue{
			Index:        i,
			Bill:         bill,
			DaysUntilDue: bill.DueDate.DaysUntil(today),
		})
	}
	return out
}

func (s *billService) persist() error {
	if err := s.store.Save(storage.KeyPendingBills, s.pending); err != nil {
		logger.Named("bills").Warnw("failed to persist pending bills", "error", err)
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
