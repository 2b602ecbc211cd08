// Package analytics derives category and timeline figures from the
// transaction log. Everything here is a pure function: results are
// recomputed from the full log on every call and nothing is cached.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// CategoryShare is one row of the expense breakdown.
type CategoryShare struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Percent  decimal.Decimal `json:"percent"`
}

// DailyTotal is the expense total for one calendar day.
type DailyTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// CategoryTotals sums expense amounts per category. Income is ignored.
func CategoryTotals(txns []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}

// CategoryPercentages expresses each category total as a percentage of spent.
// The divisor is floored at 1 so an empty ledger never divides by zero.
func CategoryPercentages(txns []models.Transaction, spent decimal.Decimal) map[string]decimal.Decimal {
	divisor := decimal.Max(spent, one)
	pcts := make(map[string]decimal.Decimal)
	for category, total := range CategoryTotals(txns) {
		pcts[category] = total.Mul(hundred).Div(divisor)
	}
	return pcts
}

// Breakdown returns category totals and percentages ordered by total
// descending, then by name.
func Breakdown(txns []models.Transaction, spent decimal.Decimal) []CategoryShare {
	totals := CategoryTotals(txns)
	pcts := CategoryPercentages(txns, spent)

	shares := make([]CategoryShare, 0, len(totals))
	for category, total := range totals {
		shares = append(shares, CategoryShare{
			Category: category,
			Total:    total,
			Percent:  pcts[category].Round(1),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if c := shares[i].Total.Cmp(shares[j].Total); c != 0 {
			return c > 0
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}

// DailyTimeSeries totals expenses per UTC calendar day, ascending by date.
// Days without expenses are omitted.
func DailyTimeSeries(txns []models.Transaction) []DailyTotal {
	byDay := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		day := models.DateOf(t.Date).String()
		byDay[day] = byDay[day].Add(t.Amount)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]DailyTotal, 0, len(days))
	for _, day := range days {
		series = append(series, DailyTotal{Date: day, Total: byDay[day]})
	}
	return series
}
