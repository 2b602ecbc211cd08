package models

import "github.com/shopspring/decimal"

// NotificationKind identifies an advisory notification. The declaration
// order below is the priority order used when several fire together.
type NotificationKind string

const (
	NotifyBudgetDepleted  NotificationKind = "budget_depleted"
	NotifyHighUtilization NotificationKind = "high_utilization"
	NotifyMidUtilization  NotificationKind = "mid_utilization"
	NotifyBudgetExceeded  NotificationKind = "budget_exceeded"
	NotifyBillDueTomorrow NotificationKind = "bill_due_tomorrow"
	NotifyPeriodSavings   NotificationKind = "period_savings"
)

// Priority returns the rank of the kind; lower ranks are shown first.
func (k NotificationKind) Priority() int {
	switch k {
	case NotifyBudgetDepleted:
		return 0
	case NotifyHighUtilization:
		return 1
	case NotifyMidUtilization:
		return 2
	case NotifyBudgetExceeded:
		return 3
	case NotifyBillDueTomorrow:
		return 4
	case NotifyPeriodSavings:
		return 5
	}
	return 99
}

// Severity is the presentation hint for a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

// Notification is an advisory signal. It never blocks the action that produced it.
type Notification struct {
	Kind          NotificationKind `json:"kind"`
	Severity      Severity         `json:"severity"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Percent       *decimal.Decimal `json:"percent,omitempty"`
	DaysRemaining int              `json:"days_remaining,omitempty"`
	BillName      string           `json:"bill_name,omitempty"`
	Message       string           `json:"message,omitempty"`
}
