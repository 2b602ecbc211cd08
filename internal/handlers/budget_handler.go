package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetly/internal/analytics"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

// BudgetHandler handles budget period requests.
type BudgetHandler struct {
	ledger   services.LedgerServicer
	notifier *Notifier
	activity services.ActivityServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(ledger services.LedgerServicer, notifier *Notifier, activity services.ActivityServicer) *BudgetHandler {
	return &BudgetHandler{ledger: ledger, notifier: notifier, activity: activity}
}

// SetBudgetRequest represents the request payload for setting the budget period.
type SetBudgetRequest struct {
	Amount    decimal.Decimal   `json:"amount" swaggertype:"string" example:"1000"`
	Period    models.PeriodType `json:"period" binding:"budget_period" example:"monthly"`
	StartDate models.Date       `json:"start_date" swaggertype:"string" example:"2024-01-01"`
	EndDate   models.Date       `json:"end_date" swaggertype:"string" example:"2024-01-31"`
}

// DonateRequest represents the request payload for donating savings.
type DonateRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"250"`
}

// BudgetResponse is the budget period with its progress summary.
type BudgetResponse struct {
	Budget   models.BudgetPeriod `json:"budget"`
	Progress analytics.Progress  `json:"progress"`
}

// CloseResponse reports the result of a close attempt.
type CloseResponse struct {
	Closed        bool                  `json:"closed"`
	SavingsDelta  *decimal.Decimal      `json:"savings_delta,omitempty" swaggertype:"string"`
	Budget        models.BudgetPeriod   `json:"budget"`
	Notifications []models.Notification `json:"notifications"`
}

// SetBudget replaces the active budget period.
// @Summary     Set the budget period
// @Description Replace the active budget period. Spent and savings start from zero.
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body SetBudgetRequest true "Budget period"
// @Success     200 {object} BudgetResponse "Budget set"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /budget [put]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	period, err := h.ledger.SetPeriod(req.Amount, req.Period, req.StartDate, req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Log("SET_BUDGET", "budget", "", map[string]interface{}{
		"amount":     period.Amount.String(),
		"period":     period.Period,
		"start_date": period.StartDate.String(),
		"end_date":   period.EndDate.String(),
	})

	c.JSON(http.StatusOK, BudgetResponse{Budget: *period, Progress: analytics.ProgressOf(*period)})
}

// GetBudget returns the active budget period.
// @Summary     Get the budget period
// @Description Get the active budget period and its progress
// @Tags        budget
// @Produce     json
// @Success     200 {object} BudgetResponse "Active budget"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	period := h.ledger.CurrentPeriod()
	c.JSON(http.StatusOK, BudgetResponse{Budget: period, Progress: analytics.ProgressOf(period)})
}

// ClosePeriod closes the budget period when its end date has been reached.
// @Summary     Close an elapsed period
// @Description Close the period if today is on or after its end date. Leftover budget moves to savings.
// @Tags        budget
// @Produce     json
// @Param       today query string false "Evaluation date (YYYY-MM-DD), defaults to now"
// @Param       lang  query string false "Notification language (en, hi, ta, ja)"
// @Success     200 {object} CloseResponse "Close result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /budget/close [post]
func (h *BudgetHandler) ClosePeriod(c *gin.Context) {
	today, err := parseToday(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	outcome, err := h.ledger.ClosePeriodIfElapsed(today)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := CloseResponse{Budget: h.ledger.CurrentPeriod()}
	if outcome != nil {
		delta := outcome.SavingsDelta
		resp.Closed = true
		resp.SavingsDelta = &delta
		h.activity.Log("CLOSE_PERIOD", "budget", "", map[string]interface{}{
			"savings_delta": delta.String(),
		})
	}
	resp.Notifications = h.notifier.Evaluate(c, today, services.AlertTrigger{Closed: outcome})

	c.JSON(http.StatusOK, resp)
}

// Donate gives away part of the accumulated savings.
// @Summary     Donate savings
// @Description Move part of the accumulated savings out of the budget
// @Tags        budget
// @Accept      json
// @Produce     json
// @Param       request body DonateRequest true "Donation"
// @Success     200 {object} BudgetResponse "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient savings"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /budget/donations [post]
func (h *BudgetHandler) Donate(c *gin.Context) {
	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	period, err := h.ledger.Donate(req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Log("DONATE_SAVINGS", "budget", "", map[string]interface{}{"amount": req.Amount.String()})

	c.JSON(http.StatusOK, BudgetResponse{Budget: *period, Progress: analytics.ProgressOf(*period)})
}
