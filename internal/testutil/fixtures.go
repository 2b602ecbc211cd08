package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/models"
	"budgetly/internal/storage"
	"budgetly/internal/storage/memory"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewMemoryStore returns an empty in-memory gateway.
func NewMemoryStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.New()
}

// Amount parses a decimal literal, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// MustDate parses a YYYY-MM-DD date, failing the test on bad input.
func MustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid date %q: %v", s, err)
	}
	return d
}

// MustTime parses an RFC 3339 timestamp, failing the test on bad input.
func MustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("invalid timestamp %q: %v", s, err)
	}
	return ts
}

// SeedBudget stores a monthly budget period with the given amount and spend.
func SeedBudget(t *testing.T, store storage.Gateway, amount, spent, start, end string) models.BudgetPeriod {
	t.Helper()

	period := models.BudgetPeriod{
		Amount:    Amount(t, amount),
		Period:    models.PeriodMonthly,
		Spent:     Amount(t, spent),
		StartDate: MustDate(t, start),
		EndDate:   MustDate(t, end),
		Savings:   decimal.Zero,
	}
	if err := store.Save(storage.KeyBudget, period); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	return period
}

// SeedBills stores pending bills due on the given dates, named Bill 1..N.
func SeedBills(t *testing.T, store storage.Gateway, amount string, dueDates ...string) []models.Bill {
	t.Helper()

	bills := make([]models.Bill, 0, len(dueDates))
	for i, due := range dueDates {
		bills = append(bills, models.Bill{
			ID:      fmt.Sprintf("bill-%d", nextID()),
			Name:    fmt.Sprintf("Bill %d", i+1),
			Amount:  Amount(t, amount),
			DueDate: MustDate(t, due),
		})
	}
	if err := store.Save(storage.KeyPendingBills, bills); err != nil {
		t.Fatalf("failed to seed bills: %v", err)
	}
	return bills
}
