package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetly/internal/alerts"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

// BillHandler handles pending bill requests.
type BillHandler struct {
	bills    services.BillServicer
	notifier *Notifier
	activity services.ActivityServicer
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(bills services.BillServicer, notifier *Notifier, activity services.ActivityServicer) *BillHandler {
	return &BillHandler{bills: bills, notifier: notifier, activity: activity}
}

// CreateBillRequest represents the request payload for adding a bill.
type CreateBillRequest struct {
	Name    string          `json:"name" binding:"max=100" example:"Rent"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"string" example:"1200"`
	DueDate models.Date     `json:"due_date" swaggertype:"string" example:"2024-02-01"`
}

// SettleResponse is a settled bill with the expense it produced.
type SettleResponse struct {
	Bill          models.Bill           `json:"bill"`
	Transaction   models.Transaction    `json:"transaction"`
	Budget        models.BudgetPeriod   `json:"budget"`
	Notifications []models.Notification `json:"notifications"`
}

// DueSoonResponse lists pending bills with days until due and the
// due-tomorrow reminders.
type DueSoonResponse struct {
	Bills         []models.BillDue      `json:"bills"`
	Notifications []models.Notification `json:"notifications"`
}

// CreateBill adds a pending bill.
// @Summary     Add a bill
// @Description Add a pending bill with a due date
// @Tags        bills
// @Accept      json
// @Produce     json
// @Param       request body CreateBillRequest true "Bill details"
// @Success     201 {object} map[string]models.Bill "Bill added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	bill, err := h.bills.AddBill(req.Name, req.Amount, req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Log("CREATE_BILL", "bill", bill.ID, map[string]interface{}{
		"name":     bill.Name,
		"amount":   bill.Amount.String(),
		"due_date": bill.DueDate.String(),
	})

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBills lists pending bills.
// @Summary     List pending bills
// @Description Get pending bills in the order they were added. The position is the index used to settle.
// @Tags        bills
// @Produce     json
// @Success     200 {object} map[string][]models.Bill "Pending bills"
// @Router      /bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bills": h.bills.ListPending()})
}

// SettleBill pays the bill at the given position.
// @Summary     Settle a bill
// @Description Convert the pending bill at index into an expense in the "bills" category
// @Tags        bills
// @Produce     json
// @Param       index path  int    true  "Position in the pending list"
// @Param       today query string false "Settlement time, defaults to now"
// @Param       lang  query string false "Notification language"
// @Success     200 {object} SettleResponse "Bill settled"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "No bill at that position"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /bills/{index}/settle [post]
func (h *BillHandler) SettleBill(c *gin.Context) {
	index, err := parseIndex(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}
	today, err := parseToday(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	outcome, err := h.bills.Settle(index, today)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Log("SETTLE_BILL", "bill", outcome.Bill.ID, map[string]interface{}{
		"name":           outcome.Bill.Name,
		"amount":         outcome.Bill.Amount.String(),
		"transaction_id": outcome.Transaction.ID,
	})

	c.JSON(http.StatusOK, SettleResponse{
		Bill:          outcome.Bill,
		Transaction:   outcome.Transaction,
		Budget:        outcome.Period,
		Notifications: h.notifier.Evaluate(c, today, services.AlertTrigger{Exceeded: outcome.Warning}),
	})
}

// GetDueSoon lists pending bills with the days left until each is due.
// @Summary     Bills due soon
// @Description Days until due for every pending bill, plus reminders for bills due tomorrow. Reminders repeat on every call.
// @Tags        bills
// @Produce     json
// @Param       today query string false "Evaluation date (YYYY-MM-DD), defaults to now"
// @Param       lang  query string false "Notification language"
// @Success     200 {object} DueSoonResponse "Bills with days until due"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /bills/due-soon [get]
func (h *BillHandler) GetDueSoon(c *gin.Context) {
	today, err := parseToday(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	due := h.bills.DueSoon(today)
	reminders := make([]models.Notification, 0)
	for _, d := range due {
		if d.DueTomorrow() {
			reminders = append(reminders, alerts.BillDueTomorrow(d.Bill))
		}
	}

	c.JSON(http.StatusOK, DueSoonResponse{Bills: due, Notifications: h.notifier.Localize(c, reminders)})
}
