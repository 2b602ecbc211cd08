package services

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/analytics"
	"budgetly/internal/models"
)

// SpendOutcome is the ledger state after an expense was recorded. Warning
// is set when spent now exceeds the budget amount.
type SpendOutcome struct {
	Period  models.BudgetPeriod  `json:"period"`
	Warning *models.Notification `json:"warning,omitempty"`
}

// ClosedPeriodOutcome reports the close of an elapsed period. Saved is true
// when money was left over and added to savings.
type ClosedPeriodOutcome struct {
	Period       models.BudgetPeriod `json:"period"`
	SavingsDelta decimal.Decimal     `json:"savings_delta"`
	Saved        bool                `json:"saved"`
}

// DepletionWarning reports a fully spent budget before the period ended.
type DepletionWarning struct {
	DaysRemaining int `json:"days_remaining"`
}

// LedgerServicer owns the single active budget period.
type LedgerServicer interface {
	SetPeriod(amount decimal.Decimal, period models.PeriodType, startDate, endDate models.Date) (*models.BudgetPeriod, error)
	CurrentPeriod() models.BudgetPeriod
	RecordSpend(amount decimal.Decimal) (*SpendOutcome, error)
	ClosePeriodIfElapsed(today time.Time) (*ClosedPeriodOutcome, error)
	CheckDepletion(today time.Time) *DepletionWarning
	Donate(amount decimal.Decimal) (*models.BudgetPeriod, error)
}

// AppendOutcome is the result of appending a transaction.
type AppendOutcome struct {
	Transaction models.Transaction   `json:"transaction"`
	Period      models.BudgetPeriod  `json:"period"`
	Warning     *models.Notification `json:"warning,omitempty"`
}

// TransactionServicer owns the append-only transaction log.
type TransactionServicer interface {
	Append(transactionType models.TransactionType, amount decimal.Decimal, category, description string, timestamp time.Time) (*AppendOutcome, error)
	ListAll() []models.Transaction
}

// SettleOutcome is the result of settling a pending bill.
type SettleOutcome struct {
	Bill        models.Bill          `json:"bill"`
	Transaction models.Transaction   `json:"transaction"`
	Period      models.BudgetPeriod  `json:"period"`
	Warning     *models.Notification `json:"warning,omitempty"`
}

// BillServicer tracks pending bills and converts them into expenses.
type BillServicer interface {
	AddBill(name string, amount decimal.Decimal, dueDate models.Date) (*models.Bill, error)
	ListPending() []models.Bill
	Settle(index int, now time.Time) (*SettleOutcome, error)
	DueSoon(today time.Time) []models.BillDue
}

// AnalyticsServicer recomputes derived figures from the log and ledger on every call.
type AnalyticsServicer interface {
	CategoryTotals() map[string]decimal.Decimal
	CategoryPercentages() map[string]decimal.Decimal
	Breakdown() []analytics.CategoryShare
	DailyTimeSeries() []analytics.DailyTotal
	Progress() analytics.Progress
}

// AlertTrigger carries the outcome of the mutation that prompted an
// alert evaluation. The zero value evaluates standing state only.
type AlertTrigger struct {
	Exceeded *models.Notification
	Closed   *ClosedPeriodOutcome
}

// AlertServicer evaluates the alerting policy over the current state.
type AlertServicer interface {
	Evaluate(today time.Time, trigger AlertTrigger) []models.Notification
}

// FeedbackServicer keeps the independent feedback log.
type FeedbackServicer interface {
	Submit(name, email string, rating int, text string, timestamp time.Time) (*models.Feedback, error)
	List() []models.Feedback
	Clear() error
}

// FeedbackNotifier forwards submitted feedback to an external delivery channel.
type FeedbackNotifier interface {
	NotifyFeedback(feedback models.Feedback) error
}

// ActivityServicer records an audit trail of mutations.
type ActivityServicer interface {
	Log(action, resourceType, resourceID string, changes map[string]interface{})
}
