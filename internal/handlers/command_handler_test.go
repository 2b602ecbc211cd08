package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetly/internal/models"
	"budgetly/internal/services"
)

func setupCommandRouter(handler *CommandHandler) *gin.Engine {
	r := gin.New()
	r.POST("/commands", handler.Execute)
	return r
}

func TestCommandHandler_Execute(t *testing.T) {
	t.Run("appends the parsed transaction", func(t *testing.T) {
		var (
			gotType        models.TransactionType
			gotAmount      decimal.Decimal
			gotCategory    string
			gotDescription string
		)
		txSvc := &mockTransactionService{
			appendFn: func(txType models.TransactionType, amount decimal.Decimal, category, description string, ts time.Time) (*services.AppendOutcome, error) {
				gotType, gotAmount, gotCategory, gotDescription = txType, amount, category, description
				return &services.AppendOutcome{
					Transaction: models.Transaction{ID: "tx-v", Type: txType, Amount: amount, Category: category, Description: description, Date: ts},
				}, nil
			},
		}
		activity := &mockActivityService{}
		handler := NewCommandHandler(txSvc, newTestNotifier(t, &mockAlertService{}), activity)
		r := setupCommandRouter(handler)

		rec := doRequest(r, "POST", "/commands?today=2024-01-05", `{"text":"Add Expense 500 for Food"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotType != models.TransactionTypeExpense || !gotAmount.Equal(dec("500")) || gotCategory != "food" {
			t.Errorf("unexpected append %s %s %s", gotType, gotAmount, gotCategory)
		}
		if gotDescription != "Added via voice: Add Expense 500 for Food" {
			t.Errorf("unexpected description %q", gotDescription)
		}
		result := parseJSON(t, rec)
		if result["command"].(map[string]interface{})["category"] != "food" {
			t.Errorf("unexpected command %v", result["command"])
		}
		if result["transaction"].(map[string]interface{})["id"] != "tx-v" {
			t.Errorf("unexpected transaction %v", result["transaction"])
		}
		if len(activity.actions) != 1 || activity.actions[0] != "VOICE_COMMAND" {
			t.Errorf("expected VOICE_COMMAND activity, got %v", activity.actions)
		}
	})

	t.Run("returns 422 and appends nothing on unrecognized text", func(t *testing.T) {
		called := false
		txSvc := &mockTransactionService{
			appendFn: func(models.TransactionType, decimal.Decimal, string, string, time.Time) (*services.AppendOutcome, error) {
				called = true
				return &services.AppendOutcome{}, nil
			},
		}
		handler := NewCommandHandler(txSvc, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupCommandRouter(handler)

		rec := doRequest(r, "POST", "/commands", `{"text":"spend 500 on food"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNRECOGNIZED_COMMAND")
		if called {
			t.Error("expected no transaction to be appended")
		}
	})

	t.Run("returns 400 on missing text", func(t *testing.T) {
		handler := NewCommandHandler(&mockTransactionService{}, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupCommandRouter(handler)

		rec := doRequest(r, "POST", "/commands", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
