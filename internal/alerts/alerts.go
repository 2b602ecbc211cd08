// Package alerts decides which advisory notifications to surface for the
// current ledger and bill state. Evaluate is a pure function; notifications
// never block the action that triggered them.
package alerts

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

var (
	midThreshold  = decimal.NewFromInt(50)
	highThreshold = decimal.NewFromInt(80)
)

// Input is the state the policy evaluates.
type Input struct {
	Period models.BudgetPeriod
	Today  time.Time
	// Exceeded is the warning produced by the expense that triggered this
	// evaluation, if any.
	Exceeded *models.Notification
	// DueBills are the pending bills with their days until due.
	DueBills []models.BillDue
	// SavingsDelta is set when the evaluation follows a period close.
	SavingsDelta *decimal.Decimal
	// DepletedDaysRemaining is set when the budget was used up before the
	// period ended.
	DepletedDaysRemaining *int
}

// Evaluate returns the notifications for in, highest priority first:
// depletion, high utilization, mid utilization, exceeded on this
// transaction, bills due tomorrow, savings from a closed period.
func Evaluate(in Input) []models.Notification {
	var out []models.Notification

	if n := utilization(in.Period, in.DepletedDaysRemaining); n != nil {
		out = append(out, *n)
	}
	if in.Exceeded != nil {
		out = append(out, *in.Exceeded)
	}
	for _, due := range in.DueBills {
		if due.DueTomorrow() {
			out = append(out, BillDueTomorrow(due.Bill))
		}
	}
	if in.SavingsDelta != nil && in.SavingsDelta.IsPositive() {
		out = append(out, PeriodSavings(*in.SavingsDelta))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Kind.Priority() < out[j].Kind.Priority()
	})
	return out
}

// utilization returns at most one of the depletion / high / mid notifications.
// A fully spent budget whose period has ended falls back to high utilization.
func utilization(period models.BudgetPeriod, depletedDays *int) *models.Notification {
	if !period.Amount.IsPositive() {
		return nil
	}
	pct := period.Utilization()
	switch {
	case depletedDays != nil:
		n := Depleted(*depletedDays)
		return &n
	case pct.GreaterThanOrEqual(highThreshold):
		n := usage(models.NotifyHighUtilization, models.SeverityWarning, pct)
		return &n
	case pct.GreaterThanOrEqual(midThreshold):
		n := usage(models.NotifyMidUtilization, models.SeverityInfo, pct)
		return &n
	}
	return nil
}

func usage(kind models.NotificationKind, severity models.Severity, pct decimal.Decimal) models.Notification {
	p := pct.Round(1)
	return models.Notification{Kind: kind, Severity: severity, Percent: &p}
}

// Depleted is the warning for a fully spent budget with days left in the period.
func Depleted(daysRemaining int) models.Notification {
	return models.Notification{
		Kind:          models.NotifyBudgetDepleted,
		Severity:      models.SeverityWarning,
		DaysRemaining: daysRemaining,
	}
}

// BudgetExceeded is the warning raised when an expense pushes spent past the budget.
func BudgetExceeded(period models.BudgetPeriod) models.Notification {
	over := period.Spent.Sub(period.Amount)
	return models.Notification{
		Kind:     models.NotifyBudgetExceeded,
		Severity: models.SeverityWarning,
		Amount:   &over,
	}
}

// BillDueTomorrow reminds about a bill due in one day.
func BillDueTomorrow(bill models.Bill) models.Notification {
	amount := bill.Amount
	return models.Notification{
		Kind:     models.NotifyBillDueTomorrow,
		Severity: models.SeverityWarning,
		Amount:   &amount,
		BillName: bill.Name,
	}
}

// PeriodSavings congratulates on money left over when a period closes.
func PeriodSavings(saved decimal.Decimal) models.Notification {
	return models.Notification{
		Kind:     models.NotifyPeriodSavings,
		Severity: models.SeveritySuccess,
		Amount:   &saved,
	}
}
