package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"budgetly/internal/i18n"
	"budgetly/internal/models"
	"budgetly/internal/services"
)

// Notifier evaluates the alerting policy and localizes the result for the
// language the client asked for.
type Notifier struct {
	alerts  services.AlertServicer
	catalog *i18n.Catalog
}

// NewNotifier creates a new Notifier.
func NewNotifier(alerts services.AlertServicer, catalog *i18n.Catalog) *Notifier {
	return &Notifier{alerts: alerts, catalog: catalog}
}

// Evaluate returns the localized notifications for today.
func (n *Notifier) Evaluate(c *gin.Context, today time.Time, trigger services.AlertTrigger) []models.Notification {
	return n.Localize(c, n.alerts.Evaluate(today, trigger))
}

// Localize fills in Message using ?lang= or the Accept-Language header.
func (n *Notifier) Localize(c *gin.Context, notifications []models.Notification) []models.Notification {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	return n.catalog.Localize(lang, notifications)
}
