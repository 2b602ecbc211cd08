package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"budgetly/internal/analytics"
	"budgetly/internal/models"
)

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/analytics/categories", handler.GetCategories)
	r.GET("/analytics/timeline", handler.GetTimeline)
	r.GET("/analytics/summary", handler.GetSummary)
	return r
}

func TestAnalyticsHandler_GetCategories(t *testing.T) {
	svc := &mockAnalyticsService{
		totals:      map[string]decimal.Decimal{"food": dec("300"), "bills": dec("100")},
		percentages: map[string]decimal.Decimal{"food": dec("75"), "bills": dec("25")},
		breakdown: []analytics.CategoryShare{
			{Category: "food", Total: dec("300"), Percent: dec("75")},
			{Category: "bills", Total: dec("100"), Percent: dec("25")},
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	rec := doRequest(r, "GET", "/analytics/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["totals"].(map[string]interface{})["food"] != "300" {
		t.Errorf("unexpected totals %v", result["totals"])
	}
	if result["percentages"].(map[string]interface{})["bills"] != "25" {
		t.Errorf("unexpected percentages %v", result["percentages"])
	}
	if len(result["breakdown"].([]interface{})) != 2 {
		t.Errorf("unexpected breakdown %v", result["breakdown"])
	}
}

func TestAnalyticsHandler_GetTimeline(t *testing.T) {
	t.Run("returns daily totals", func(t *testing.T) {
		svc := &mockAnalyticsService{
			timeline: []analytics.DailyTotal{
				{Date: "2024-01-01", Total: dec("100")},
				{Date: "2024-01-02", Total: dec("50")},
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/timeline", "")

		series := parseJSON(t, rec)["timeline"].([]interface{})
		if len(series) != 2 {
			t.Fatalf("expected 2 days, got %d", len(series))
		}
		if series[0].(map[string]interface{})["date"] != "2024-01-01" {
			t.Errorf("expected 2024-01-01 first, got %v", series[0])
		}
	})

	t.Run("returns empty array with no expenses", func(t *testing.T) {
		r := setupAnalyticsRouter(NewAnalyticsHandler(&mockAnalyticsService{}))

		rec := doRequest(r, "GET", "/analytics/timeline", "")

		series, ok := parseJSON(t, rec)["timeline"].([]interface{})
		if !ok || len(series) != 0 {
			t.Errorf("expected empty timeline, got %v", series)
		}
	})
}

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	svc := &mockAnalyticsService{
		progress: analytics.ProgressOf(models.BudgetPeriod{Amount: dec("1000"), Spent: dec("600")}),
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	rec := doRequest(r, "GET", "/analytics/summary", "")

	progress := parseJSON(t, rec)["progress"].(map[string]interface{})
	if progress["band"] != "caution" {
		t.Errorf("expected caution band, got %v", progress["band"])
	}
	if progress["percent"] != "60" {
		t.Errorf("expected 60 percent, got %v", progress["percent"])
	}
}
