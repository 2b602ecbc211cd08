package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetly/internal/command"
	"budgetly/internal/services"
)

// CommandHandler accepts natural-language transaction commands.
type CommandHandler struct {
	transactions services.TransactionServicer
	notifier     *Notifier
	activity     services.ActivityServicer
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(
	transactions services.TransactionServicer,
	notifier *Notifier,
	activity services.ActivityServicer,
) *CommandHandler {
	return &CommandHandler{transactions: transactions, notifier: notifier, activity: activity}
}

// CommandRequest represents a spoken or typed command.
type CommandRequest struct {
	Text string `json:"text" binding:"required,max=500" example:"add expense 500 for food"`
}

// CommandResponse is the parsed command and the transaction it produced.
type CommandResponse struct {
	Command command.Request `json:"command"`
	TransactionResponse
}

// Execute parses the command and appends the transaction it describes.
// @Summary     Run a voice or text command
// @Description Parse "add (expense|income) <amount> for <category>" and append the transaction. Unrecognized input changes nothing.
// @Tags        commands
// @Accept      json
// @Produce     json
// @Param       request body  CommandRequest true  "Command text"
// @Param       today   query string         false "Transaction time, defaults to now"
// @Param       lang    query string         false "Notification language"
// @Success     201 {object} CommandResponse "Transaction appended"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Unrecognized command"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /commands [post]
func (h *CommandHandler) Execute(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	today, err := parseToday(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	parsed, err := command.Parse(req.Text)
	if err != nil {
		respondWithError(c, err)
		return
	}

	outcome, err := h.transactions.Append(parsed.Type, parsed.Amount, parsed.Category, parsed.Description, today)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.activity.Log("VOICE_COMMAND", "transaction", outcome.Transaction.ID, map[string]interface{}{
		"type":     parsed.Type,
		"amount":   parsed.Amount.String(),
		"category": parsed.Category,
	})

	c.JSON(http.StatusCreated, CommandResponse{
		Command: *parsed,
		TransactionResponse: TransactionResponse{
			Transaction:   outcome.Transaction,
			Budget:        outcome.Period,
			Notifications: h.notifier.Evaluate(c, today, services.AlertTrigger{Exceeded: outcome.Warning}),
		},
	})
}
