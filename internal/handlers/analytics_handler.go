package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetly/internal/analytics"
	"budgetly/internal/services"
)

// AnalyticsHandler serves figures derived from the transaction log.
type AnalyticsHandler struct {
	analytics services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analytics services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// CategoriesResponse is the expense breakdown by category.
type CategoriesResponse struct {
	Totals      map[string]decimal.Decimal `json:"totals" swaggertype:"object,string"`
	Percentages map[string]decimal.Decimal `json:"percentages" swaggertype:"object,string"`
	Breakdown   []analytics.CategoryShare  `json:"breakdown"`
}

// GetCategories returns expense totals and percentages per category.
// @Summary     Expenses by category
// @Description Expense totals per category and their share of spent
// @Tags        analytics
// @Produce     json
// @Success     200 {object} CategoriesResponse "Category breakdown"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Totals:      h.analytics.CategoryTotals(),
		Percentages: h.analytics.CategoryPercentages(),
		Breakdown:   h.analytics.Breakdown(),
	})
}

// GetTimeline returns expense totals per day.
// @Summary     Daily expenses
// @Description Expense total per calendar day, oldest first
// @Tags        analytics
// @Produce     json
// @Success     200 {object} map[string][]analytics.DailyTotal "Daily totals"
// @Router      /analytics/timeline [get]
func (h *AnalyticsHandler) GetTimeline(c *gin.Context) {
	series := h.analytics.DailyTimeSeries()
	if series == nil {
		series = []analytics.DailyTotal{}
	}
	c.JSON(http.StatusOK, gin.H{"timeline": series})
}

// GetSummary returns the budget progress summary.
// @Summary     Budget progress
// @Description Remaining budget, utilization and status band
// @Tags        analytics
// @Produce     json
// @Success     200 {object} map[string]analytics.Progress "Progress summary"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"progress": h.analytics.Progress()})
}
