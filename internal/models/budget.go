package models

import "github.com/shopspring/decimal"

// PeriodType represents the cadence of a budget period
type PeriodType string

const (
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

// IsValid reports whether p is one of the supported cadences.
func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// BudgetPeriod is the single active budget. Spent only grows through
// recorded expenses; Savings only moves on period close or donation.
type BudgetPeriod struct {
	Amount    decimal.Decimal `json:"amount"`
	Period    PeriodType      `json:"period"`
	Spent     decimal.Decimal `json:"spent"`
	StartDate Date            `json:"start_date"`
	EndDate   Date            `json:"end_date"`
	Savings   decimal.Decimal `json:"savings"`
	// Closed is set once the elapsed period has been closed out.
	Closed bool `json:"closed"`
}

// IsSet reports whether a period has been configured.
func (b BudgetPeriod) IsSet() bool {
	return !b.StartDate.IsZero() && !b.EndDate.IsZero()
}

// Remaining returns amount - spent; negative when overspent.
func (b BudgetPeriod) Remaining() decimal.Decimal {
	return b.Amount.Sub(b.Spent)
}

var hundred = decimal.NewFromInt(100)

// Utilization returns spent as a percentage of amount, or zero when no
// positive amount is set.
func (b BudgetPeriod) Utilization() decimal.Decimal {
	if !b.Amount.IsPositive() {
		return decimal.Zero
	}
	return b.Spent.Mul(hundred).Div(b.Amount)
}
