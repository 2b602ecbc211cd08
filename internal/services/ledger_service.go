package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/alerts"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/storage"
)

// ledgerService handles budget period bookkeeping.
type ledgerService struct {
	store  storage.Gateway
	period models.BudgetPeriod
}

// NewLedgerService creates a LedgerServicer, restoring any saved period.
func NewLedgerService(store storage.Gateway) (LedgerServicer, error) {
	s := &ledgerService{
		store:  store,
		period: models.BudgetPeriod{Period: models.PeriodMonthly},
	}
	if _, err := store.Load(storage.KeyBudget, &s.period); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return s, nil
}

// SetPeriod validates the inputs and replaces the active period wholesale.
// Spent and savings start from zero.
func (s *ledgerService) SetPeriod(
	amount decimal.Decimal,
	period models.PeriodType,
	startDate, endDate models.Date,
) (*models.BudgetPeriod, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "budget amount must be greater than zero")
	}
	if period == "" {
		period = models.PeriodMonthly
	}
	if !period.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, fmt.Sprintf("unsupported budget period %q", period))
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "start and end dates are required")
	}
	if !endDate.After(startDate.Time) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "end date must be after start date")
	}

	s.period = models.BudgetPeriod{
		Amount:    amount,
		Period:    period,
		Spent:     decimal.Zero,
		StartDate: startDate,
		EndDate:   endDate,
		Savings:   decimal.Zero,
	}
	if err := s.persist(); err != nil {
		return nil, err
	}

	logger.Named("ledger").Infow("budget period set",
		"amount", amount.String(),
		"period", period,
		"start_date", startDate.String(),
		"end_date", endDate.String(),
	)
	result := s.period
	return &result, nil
}

// CurrentPeriod returns a copy of the active period.
func (s *ledgerService) CurrentPeriod() models.BudgetPeriod {
	return s.period
}

// RecordSpend adds amount to spent. It never refuses the expense; crossing
// the budget only produces a warning.
func (s *ledgerService) RecordSpend(amount decimal.Decimal) (*SpendOutcome, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
	}

	s.period.Spent = s.period.Spent.Add(amount)
	if err := s.persist(); err != nil {
		return nil, err
	}

	outcome := &SpendOutcome{Period: s.period}
	if s.period.IsSet() && s.period.Spent.GreaterThan(s.period.Amount) {
		warning := alerts.BudgetExceeded(s.period)
		outcome.Warning = &warning
	}
	return outcome, nil
}

// ClosePeriodIfElapsed closes the period once today reaches its end date.
// Leftover budget is added to savings. A period is closed at most once, and
// no new period is started.
func (s *ledgerService) ClosePeriodIfElapsed(today time.Time) (*ClosedPeriodOutcome, error) {
	if !s.period.IsSet() || s.period.Closed || today.Before(s.period.EndDate.Time) {
		return nil, nil
	}

	delta := s.period.Amount.Sub(s.period.Spent)
	saved := delta.IsPositive()
	if saved {
		s.period.Savings = s.period.Savings.Add(delta)
	}
	s.period.Closed = true
	if err := s.persist(); err != nil {
		return nil, err
	}

	logger.Named("ledger").Infow("budget period closed",
		"end_date", s.period.EndDate.String(),
		"savings_delta", delta.String(),
		"savings", s.period.Savings.String(),
	)
	return &ClosedPeriodOutcome{
		Period:       s.period,
		SavingsDelta: delta,
		Saved:        saved,
	}, nil
}

// CheckDepletion reports the days left when the budget is used up before the period ends.
func (s *ledgerService) CheckDepletion(today time.Time) *DepletionWarning {
	if !s.period.IsSet() {
		return nil
	}
	if s.period.Spent.LessThan(s.period.Amount) || !today.Before(s.period.EndDate.Time) {
		return nil
	}
	return &DepletionWarning{DaysRemaining: s.period.EndDate.DaysUntil(today)}
}

// Donate gives away part of the accumulated savings.
func (s *ledgerService) Donate(amount decimal.Decimal) (*models.BudgetPeriod, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "donation must be greater than zero")
	}
	if amount.GreaterThan(s.period.Savings) {
		return nil, apperrors.ErrInsufficientSavings
	}

	s.period.Savings = s.period.Savings.Sub(amount)
	if err := s.persist(); err != nil {
		return nil, err
	}
	result := s.period
	return &result, nil
}

// persist saves the period. On failure the in-memory period stays authoritative.
func (s *ledgerService) persist() error {
	if err := s.store.Save(storage.KeyBudget, s.period); err != nil {
		logger.Named("ledger").Warnw("failed to persist budget", "error", err)
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
