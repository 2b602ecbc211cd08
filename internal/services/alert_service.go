package services

import (
	"time"

	"budgetly/internal/alerts"
	"budgetly/internal/models"
)

// alertService feeds current ledger and bill state into the alerting policy.
type alertService struct {
	ledger LedgerServicer
	bills  BillServicer
}

// NewAlertService creates a new AlertServicer.
func NewAlertService(ledger LedgerServicer, bills BillServicer) AlertServicer {
	return &alertService{ledger: ledger, bills: bills}
}

// Evaluate returns the notifications for today, highest priority first.
func (s *alertService) Evaluate(today time.Time, trigger AlertTrigger) []models.Notification {
	in := alerts.Input{
		Period:   s.ledger.CurrentPeriod(),
		Today:    today,
		Exceeded: trigger.Exceeded,
		DueBills: s.bills.DueSoon(today),
	}
	if trigger.Closed != nil && trigger.Closed.Saved {
		delta := trigger.Closed.SavingsDelta
		in.SavingsDelta = &delta
	}
	if depletion := s.ledger.CheckDepletion(today); depletion != nil {
		days := depletion.DaysRemaining
		in.DepletedDaysRemaining = &days
	}
	return alerts.Evaluate(in)
}
