package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetly/internal/alerts"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetTransactions)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 with budget exceeded warning", func(t *testing.T) {
		txSvc := &mockTransactionService{
			appendFn: func(txType models.TransactionType, amount decimal.Decimal, category, description string, ts time.Time) (*services.AppendOutcome, error) {
				period := models.BudgetPeriod{Amount: dec("100"), Spent: dec("150")}
				warning := alerts.BudgetExceeded(period)
				return &services.AppendOutcome{
					Transaction: models.Transaction{ID: "tx-1", Type: txType, Amount: amount, Category: category, Description: description, Date: ts},
					Period:      period,
					Warning:     &warning,
				}, nil
			},
		}
		alertSvc := &mockAlertService{
			evaluateFn: func(_ time.Time, trigger services.AlertTrigger) []models.Notification {
				if trigger.Exceeded == nil {
					return nil
				}
				return []models.Notification{*trigger.Exceeded}
			},
		}
		activity := &mockActivityService{}
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, alertSvc), activity)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions?today=2024-01-10",
			`{"type":"expense","amount":"150","category":"Food","description":"feast"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["id"] != "tx-1" || tx["category"] != "Food" {
			t.Errorf("unexpected transaction %v", tx)
		}
		notes := result["notifications"].([]interface{})
		if len(notes) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notes))
		}
		msg := notes[0].(map[string]interface{})["message"]
		if msg != "Budget exceeded by ₹50.00! Please review your spending." {
			t.Errorf("unexpected message %v", msg)
		}
		if len(activity.actions) != 1 || activity.actions[0] != "CREATE_TRANSACTION" {
			t.Errorf("expected CREATE_TRANSACTION activity, got %v", activity.actions)
		}
	})

	t.Run("uses today when date is omitted", func(t *testing.T) {
		var gotTS time.Time
		txSvc := &mockTransactionService{
			appendFn: func(_ models.TransactionType, _ decimal.Decimal, _, _ string, ts time.Time) (*services.AppendOutcome, error) {
				gotTS = ts
				return &services.AppendOutcome{}, nil
			},
		}
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions?today=2024-03-05",
			`{"type":"income","amount":"2000","description":"salary"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotTS.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected 2024-03-05, got %v", gotTS)
		}
	})

	t.Run("uses explicit date", func(t *testing.T) {
		var gotTS time.Time
		txSvc := &mockTransactionService{
			appendFn: func(_ models.TransactionType, _ decimal.Decimal, _, _ string, ts time.Time) (*services.AppendOutcome, error) {
				gotTS = ts
				return &services.AppendOutcome{}, nil
			},
		}
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":"20","description":"tea","date":"2024-01-02T10:00:00Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotTS.Equal(time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)) {
			t.Errorf("expected 2024-01-02T10:00:00Z, got %v", gotTS)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"type":"transfer","amount":"10","description":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on validation error from service", func(t *testing.T) {
		txSvc := &mockTransactionService{
			appendFn: func(models.TransactionType, decimal.Decimal, string, string, time.Time) (*services.AppendOutcome, error) {
				return nil, apperrors.WithMessage(apperrors.ErrValidation, "amount must be greater than zero")
			},
		}
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"type":"expense","amount":"-5","description":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 500 on storage error", func(t *testing.T) {
		txSvc := &mockTransactionService{
			appendFn: func(models.TransactionType, decimal.Decimal, string, string, time.Time) (*services.AppendOutcome, error) {
				return nil, apperrors.Wrap(apperrors.ErrStorage, fmt.Errorf("disk full"))
			},
		}
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"type":"expense","amount":"5","description":"x"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "STORAGE_ERROR")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	log := []models.Transaction{
		{ID: "1", Type: models.TransactionTypeIncome, Amount: dec("2000")},
		{ID: "2", Type: models.TransactionTypeExpense, Amount: dec("200")},
		{ID: "3", Type: models.TransactionTypeExpense, Amount: dec("300")},
	}
	txSvc := &mockTransactionService{listAllFn: func() []models.Transaction { return log }}

	t.Run("returns all in append order", func(t *testing.T) {
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 3 {
			t.Fatalf("expected 3 items, got %d", len(data))
		}
		if data[0].(map[string]interface{})["id"] != "1" {
			t.Errorf("expected first id 1, got %v", data[0])
		}
		if result["total_items"] != float64(3) {
			t.Errorf("expected total_items 3, got %v", result["total_items"])
		}
	})

	t.Run("filters by type and paginates", func(t *testing.T) {
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=expense&page=2&page_size=1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 1 || data[0].(map[string]interface{})["id"] != "3" {
			t.Errorf("expected only id 3, got %v", data)
		}
		if result["total_pages"] != float64(2) {
			t.Errorf("expected 2 pages, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on unknown type filter", func(t *testing.T) {
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?type=refund", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on page size over limit", func(t *testing.T) {
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns empty page for huge page number", func(t *testing.T) {
		handler := NewTransactionHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?page=461168601842738792", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if data := result["data"].([]interface{}); len(data) != 0 {
			t.Errorf("expected no items, got %v", data)
		}
		if result["total_items"] != float64(3) {
			t.Errorf("expected total_items 3, got %v", result["total_items"])
		}
	})
}
