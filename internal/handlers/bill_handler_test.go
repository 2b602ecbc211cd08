package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

func setupBillRouter(handler *BillHandler) *gin.Engine {
	r := gin.New()
	r.POST("/bills", handler.CreateBill)
	r.GET("/bills", handler.GetBills)
	r.GET("/bills/due-soon", handler.GetDueSoon)
	r.POST("/bills/:index/settle", handler.SettleBill)
	return r
}

func TestBillHandler_CreateBill(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotDue models.Date
		bills := &mockBillService{
			addBillFn: func(name string, amount decimal.Decimal, due models.Date) (*models.Bill, error) {
				gotDue = due
				return &models.Bill{ID: "b-1", Name: name, Amount: amount, DueDate: due}, nil
			},
		}
		activity := &mockActivityService{}
		handler := NewBillHandler(bills, newTestNotifier(t, &mockAlertService{}), activity)
		r := setupBillRouter(handler)

		rec := doRequest(r, "POST", "/bills", `{"name":"Rent","amount":"1200","due_date":"2024-02-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotDue.Equal(mustDate(t, "2024-02-01").Time) {
			t.Errorf("expected due 2024-02-01, got %v", gotDue)
		}
		bill := parseJSON(t, rec)["bill"].(map[string]interface{})
		if bill["name"] != "Rent" || bill["paid"] != false {
			t.Errorf("unexpected bill %v", bill)
		}
		if len(activity.actions) != 1 || activity.actions[0] != "CREATE_BILL" {
			t.Errorf("expected CREATE_BILL activity, got %v", activity.actions)
		}
	})

	t.Run("returns 400 on validation error from service", func(t *testing.T) {
		bills := &mockBillService{
			addBillFn: func(string, decimal.Decimal, models.Date) (*models.Bill, error) {
				return nil, apperrors.WithMessage(apperrors.ErrValidation, "bill name is required")
			},
		}
		handler := NewBillHandler(bills, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupBillRouter(handler)

		rec := doRequest(r, "POST", "/bills", `{"name":"","amount":"10","due_date":"2024-02-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})
}

func TestBillHandler_GetBills(t *testing.T) {
	t.Run("returns pending bills", func(t *testing.T) {
		bills := &mockBillService{
			listPendingFn: func() []models.Bill {
				return []models.Bill{{ID: "a", Name: "Rent"}, {ID: "b", Name: "Power"}}
			},
		}
		handler := NewBillHandler(bills, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupBillRouter(handler)

		rec := doRequest(r, "GET", "/bills", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		list := parseJSON(t, rec)["bills"].([]interface{})
		if len(list) != 2 {
			t.Errorf("expected 2 bills, got %d", len(list))
		}
	})
}

func TestBillHandler_SettleBill(t *testing.T) {
	t.Run("returns settled bill and expense", func(t *testing.T) {
		var gotIndex int
		bills := &mockBillService{
			settleFn: func(index int, now time.Time) (*services.SettleOutcome, error) {
				gotIndex = index
				bill := models.Bill{ID: "b-1", Name: "Rent", Amount: dec("300"), Paid: true}
				return &services.SettleOutcome{
					Bill: bill,
					Transaction: models.Transaction{
						ID: "tx-9", Type: models.TransactionTypeExpense, Amount: bill.Amount,
						Category: models.BillsCategory, Description: "Paid bill: Rent", Date: now,
					},
					Period: models.BudgetPeriod{Amount: dec("1000"), Spent: dec("300")},
				}, nil
			},
		}
		activity := &mockActivityService{}
		handler := NewBillHandler(bills, newTestNotifier(t, &mockAlertService{}), activity)
		r := setupBillRouter(handler)

		rec := doRequest(r, "POST", "/bills/1/settle?today=2024-01-20", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotIndex != 1 {
			t.Errorf("expected index 1, got %d", gotIndex)
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["category"] != "bills" || tx["description"] != "Paid bill: Rent" {
			t.Errorf("unexpected transaction %v", tx)
		}
		if result["bill"].(map[string]interface{})["paid"] != true {
			t.Error("expected paid bill")
		}
		if len(activity.actions) != 1 || activity.actions[0] != "SETTLE_BILL" {
			t.Errorf("expected SETTLE_BILL activity, got %v", activity.actions)
		}
	})

	t.Run("returns 404 on out of range index", func(t *testing.T) {
		bills := &mockBillService{
			settleFn: func(int, time.Time) (*services.SettleOutcome, error) {
				return nil, apperrors.ErrIndexOutOfRange
			},
		}
		handler := NewBillHandler(bills, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupBillRouter(handler)

		rec := doRequest(r, "POST", "/bills/7/settle", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INDEX_OUT_OF_RANGE")
	})

	t.Run("returns 400 on non-numeric index", func(t *testing.T) {
		handler := NewBillHandler(&mockBillService{}, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupBillRouter(handler)

		rec := doRequest(r, "POST", "/bills/first/settle", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestBillHandler_GetDueSoon(t *testing.T) {
	t.Run("reminds only about bills due tomorrow", func(t *testing.T) {
		bills := &mockBillService{
			dueSoonFn: func(today time.Time) []models.BillDue {
				return []models.BillDue{
					{Index: 0, Bill: models.Bill{Name: "Rent", Amount: dec("300")}, DaysUntilDue: 1},
					{Index: 1, Bill: models.Bill{Name: "Power", Amount: dec("80")}, DaysUntilDue: 5},
				}
			},
		}
		handler := NewBillHandler(bills, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupBillRouter(handler)

		rec := doRequest(r, "GET", "/bills/due-soon?today=2024-01-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if len(result["bills"].([]interface{})) != 2 {
			t.Errorf("expected 2 bills, got %v", result["bills"])
		}
		notes := result["notifications"].([]interface{})
		if len(notes) != 1 {
			t.Fatalf("expected 1 reminder, got %d", len(notes))
		}
		msg := notes[0].(map[string]interface{})["message"]
		if msg != `Bill "Rent" is due tomorrow! Amount: ₹300.00` {
			t.Errorf("unexpected message %v", msg)
		}
	})

	t.Run("returns empty notifications when nothing is due", func(t *testing.T) {
		handler := NewBillHandler(&mockBillService{}, newTestNotifier(t, &mockAlertService{}), &mockActivityService{})
		r := setupBillRouter(handler)

		rec := doRequest(r, "GET", "/bills/due-soon", "")

		notes, ok := parseJSON(t, rec)["notifications"].([]interface{})
		if !ok || len(notes) != 0 {
			t.Errorf("expected empty notifications array, got %v", notes)
		}
	})
}
