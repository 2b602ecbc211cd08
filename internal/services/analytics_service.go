package services

import (
	"github.com/shopspring/decimal"

	"budgetly/internal/analytics"
)

// analyticsService recomputes every figure from the current log and ledger.
type analyticsService struct {
	transactions TransactionServicer
	ledger       LedgerServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(transactions TransactionServicer, ledger LedgerServicer) AnalyticsServicer {
	return &analyticsService{transactions: transactions, ledger: ledger}
}

func (s *analyticsService) CategoryTotals() map[string]decimal.Decimal {
	return analytics.CategoryTotals(s.transactions.ListAll())
}

func (s *analyticsService) CategoryPercentages() map[string]decimal.Decimal {
	return analytics.CategoryPercentages(s.transactions.ListAll(), s.ledger.CurrentPeriod().Spent)
}

func (s *analyticsService) Breakdown() []analytics.CategoryShare {
	return analytics.Breakdown(s.transactions.ListAll(), s.ledger.CurrentPeriod().Spent)
}

func (s *analyticsService) DailyTimeSeries() []analytics.DailyTotal {
	return analytics.DailyTimeSeries(s.transactions.ListAll())
}

func (s *analyticsService) Progress() analytics.Progress {
	return analytics.ProgressOf(s.ledger.CurrentPeriod())
}
