package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/services"
)

// TransactionHandler handles transaction log requests.
type TransactionHandler struct {
	transactions services.TransactionServicer
	notifier     *Notifier
	activity     services.ActivityServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(
	transactions services.TransactionServicer,
	notifier *Notifier,
	activity services.ActivityServicer,
) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, notifier: notifier, activity: activity}
}

// CreateTransactionRequest represents the request payload for appending a transaction.
type CreateTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type" example:"expense"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"string" example:"200"`
	Category    string                 `json:"category" binding:"max=100" example:"Food"`
	Description string                 `json:"description" binding:"max=500" example:"groceries"`
	Date        *time.Time             `json:"date" example:"2024-01-02T10:00:00Z"`
}

// TransactionResponse is an appended transaction with the resulting budget
// state and notifications.
type TransactionResponse struct {
	Transaction   models.Transaction    `json:"transaction"`
	Budget        models.BudgetPeriod   `json:"budget"`
	Notifications []models.Notification `json:"notifications"`
}

// CreateTransaction appends a transaction to the log.
// @Summary     Add a transaction
// @Description Append an income or expense. Expenses count against the budget; crossing it only warns.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body  CreateTransactionRequest true  "Transaction details"
// @Param       today   query string                   false "Evaluation date for notifications"
// @Param       lang    query string                   false "Notification language"
// @Success     201 {object} TransactionResponse "Transaction appended"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	today, err := parseToday(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	timestamp := today
	if req.Date != nil {
		timestamp = *req.Date
	}

	outcome, err := h.transactions.Append(req.Type, req.Amount, req.Category, req.Description, timestamp)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Log("CREATE_TRANSACTION", "transaction", outcome.Transaction.ID, map[string]interface{}{
		"type":     outcome.Transaction.Type,
		"amount":   outcome.Transaction.Amount.String(),
		"category": outcome.Transaction.Category,
	})

	c.JSON(http.StatusCreated, TransactionResponse{
		Transaction:   outcome.Transaction,
		Budget:        outcome.Period,
		Notifications: h.notifier.Evaluate(c, today, services.AlertTrigger{Exceeded: outcome.Warning}),
	})
}

// GetTransactions lists the transaction log.
// @Summary     List transactions
// @Description Get a page of the transaction log in append order
// @Tags        transactions
// @Produce     json
// @Param       type      query string false "Filter by type (income/expense)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	all := h.transactions.ListAll()
	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		if !txType.IsValid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be 'income' or 'expense'"))
			return
		}
		filtered := make([]models.Transaction, 0, len(all))
		for _, tx := range all {
			if tx.Type == txType {
				filtered = append(filtered, tx)
			}
		}
		all = filtered
	}

	c.JSON(http.StatusOK, pagination.Slice(all, page))
}
