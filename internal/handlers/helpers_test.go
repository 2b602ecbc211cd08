package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetly/internal/analytics"
	"budgetly/internal/i18n"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/services"
	"budgetly/internal/validator"
)

// --- mock ledger service ---

type mockLedgerService struct {
	setPeriodFn   func(amount decimal.Decimal, period models.PeriodType, start, end models.Date) (*models.BudgetPeriod, error)
	currentFn     func() models.BudgetPeriod
	recordSpendFn func(amount decimal.Decimal) (*services.SpendOutcome, error)
	closeFn       func(today time.Time) (*services.ClosedPeriodOutcome, error)
	depletionFn   func(today time.Time) *services.DepletionWarning
	donateFn      func(amount decimal.Decimal) (*models.BudgetPeriod, error)
}

func (m *mockLedgerService) SetPeriod(amount decimal.Decimal, period models.PeriodType, start, end models.Date) (*models.BudgetPeriod, error) {
	if m.setPeriodFn != nil {
		return m.setPeriodFn(amount, period, start, end)
	}
	return &models.BudgetPeriod{}, nil
}

func (m *mockLedgerService) CurrentPeriod() models.BudgetPeriod {
	if m.currentFn != nil {
		return m.currentFn()
	}
	return models.BudgetPeriod{Period: models.PeriodMonthly}
}

func (m *mockLedgerService) RecordSpend(amount decimal.Decimal) (*services.SpendOutcome, error) {
	if m.recordSpendFn != nil {
		return m.recordSpendFn(amount)
	}
	return &services.SpendOutcome{}, nil
}

func (m *mockLedgerService) ClosePeriodIfElapsed(today time.Time) (*services.ClosedPeriodOutcome, error) {
	if m.closeFn != nil {
		return m.closeFn(today)
	}
	return nil, nil
}

func (m *mockLedgerService) CheckDepletion(today time.Time) *services.DepletionWarning {
	if m.depletionFn != nil {
		return m.depletionFn(today)
	}
	return nil
}

func (m *mockLedgerService) Donate(amount decimal.Decimal) (*models.BudgetPeriod, error) {
	if m.donateFn != nil {
		return m.donateFn(amount)
	}
	return &models.BudgetPeriod{}, nil
}

// --- mock transaction service ---

type mockTransactionService struct {
	appendFn  func(txType models.TransactionType, amount decimal.Decimal, category, description string, ts time.Time) (*services.AppendOutcome, error)
	listAllFn func() []models.Transaction
}

func (m *mockTransactionService) Append(txType models.TransactionType, amount decimal.Decimal, category, description string, ts time.Time) (*services.AppendOutcome, error) {
	if m.appendFn != nil {
		return m.appendFn(txType, amount, category, description, ts)
	}
	return &services.AppendOutcome{}, nil
}

func (m *mockTransactionService) ListAll() []models.Transaction {
	if m.listAllFn != nil {
		return m.listAllFn()
	}
	return nil
}

// --- mock bill service ---

type mockBillService struct {
	addBillFn     func(name string, amount decimal.Decimal, due models.Date) (*models.Bill, error)
	listPendingFn func() []models.Bill
	settleFn      func(index int, now time.Time) (*services.SettleOutcome, error)
	dueSoonFn     func(today time.Time) []models.BillDue
}

func (m *mockBillService) AddBill(name string, amount decimal.Decimal, due models.Date) (*models.Bill, error) {
	if m.addBillFn != nil {
		return m.addBillFn(name, amount, due)
	}
	return &models.Bill{}, nil
}

func (m *mockBillService) ListPending() []models.Bill {
	if m.listPendingFn != nil {
		return m.listPendingFn()
	}
	return []models.Bill{}
}

func (m *mockBillService) Settle(index int, now time.Time) (*services.SettleOutcome, error) {
	if m.settleFn != nil {
		return m.settleFn(index, now)
	}
	return &services.SettleOutcome{}, nil
}

func (m *mockBillService) DueSoon(today time.Time) []models.BillDue {
	if m.dueSoonFn != nil {
		return m.dueSoonFn(today)
	}
	return []models.BillDue{}
}

// --- mock analytics service ---

type mockAnalyticsService struct {
	totals      map[string]decimal.Decimal
	percentages map[string]decimal.Decimal
	breakdown   []analytics.CategoryShare
	timeline    []analytics.DailyTotal
	progress    analytics.Progress
}

func (m *mockAnalyticsService) CategoryTotals() map[string]decimal.Decimal      { return m.totals }
func (m *mockAnalyticsService) CategoryPercentages() map[string]decimal.Decimal { return m.percentages }
func (m *mockAnalyticsService) Breakdown() []analytics.CategoryShare            { return m.breakdown }
func (m *mockAnalyticsService) DailyTimeSeries() []analytics.DailyTotal         { return m.timeline }
func (m *mockAnalyticsService) Progress() analytics.Progress                    { return m.progress }

// --- mock alert service ---

type mockAlertService struct {
	evaluateFn func(today time.Time, trigger services.AlertTrigger) []models.Notification
	lastToday  time.Time
	calls      int
}

func (m *mockAlertService) Evaluate(today time.Time, trigger services.AlertTrigger) []models.Notification {
	m.lastToday = today
	m.calls++
	if m.evaluateFn != nil {
		return m.evaluateFn(today, trigger)
	}
	return nil
}

// --- mock feedback service ---

type mockFeedbackService struct {
	submitFn func(name, email string, rating int, text string, ts time.Time) (*models.Feedback, error)
	listFn   func() []models.Feedback
	clearFn  func() error
}

func (m *mockFeedbackService) Submit(name, email string, rating int, text string, ts time.Time) (*models.Feedback, error) {
	if m.submitFn != nil {
		return m.submitFn(name, email, rating, text, ts)
	}
	return &models.Feedback{Name: name, Email: email, Rating: rating, Text: text, Timestamp: ts}, nil
}

func (m *mockFeedbackService) List() []models.Feedback {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil
}

func (m *mockFeedbackService) Clear() error {
	if m.clearFn != nil {
		return m.clearFn()
	}
	return nil
}

// --- mock activity service ---

type mockActivityService struct {
	actions []string
}

func (m *mockActivityService) Log(action, _, _ string, _ map[string]interface{}) {
	m.actions = append(m.actions, action)
}

// verify interface compliance
var (
	_ services.LedgerServicer      = (*mockLedgerService)(nil)
	_ services.TransactionServicer = (*mockTransactionService)(nil)
	_ services.BillServicer        = (*mockBillService)(nil)
	_ services.AnalyticsServicer   = (*mockAnalyticsService)(nil)
	_ services.AlertServicer       = (*mockAlertService)(nil)
	_ services.FeedbackServicer    = (*mockFeedbackService)(nil)
	_ services.ActivityServicer    = (*mockActivityService)(nil)
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func newTestNotifier(t *testing.T, alerts services.AlertServicer) *Notifier {
	t.Helper()
	catalog, err := i18n.Load(i18n.DefaultLanguage)
	if err != nil {
		t.Fatalf("failed to load message catalog: %v", err)
	}
	return NewNotifier(alerts, catalog)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
