package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetly/internal/services"
)

// AlertHandler serves the standing notifications for the current state.
type AlertHandler struct {
	notifier *Notifier
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(notifier *Notifier) *AlertHandler {
	return &AlertHandler{notifier: notifier}
}

// GetAlerts evaluates the alerting policy.
// @Summary     Current notifications
// @Description Utilization, depletion and bill reminders for today, highest priority first
// @Tags        alerts
// @Produce     json
// @Param       today query string false "Evaluation date (YYYY-MM-DD), defaults to now"
// @Param       lang  query string false "Notification language (en, hi, ta, ja)"
// @Success     200 {object} map[string][]models.Notification "Notifications"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /alerts [get]
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	today, err := parseToday(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": h.notifier.Evaluate(c, today, services.AlertTrigger{})})
}
