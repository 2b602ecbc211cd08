// Package router assembles the HTTP surface over the bookkeeping core.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"budgetly/internal/handlers"
	"budgetly/internal/i18n"
	"budgetly/internal/middleware"
	"budgetly/internal/services"
)

// Options configures the router.
type Options struct {
	// AdminAPIKey guards feedback administration; empty disables those routes.
	AdminAPIKey string
	// Swagger mounts the generated API docs at /swagger.
	Swagger bool
}

// New builds the gin engine with every route wired to core.
func New(core *services.Core, catalog *i18n.Catalog, opts Options) *gin.Engine {
	notifier := handlers.NewNotifier(core.Alerts, catalog)

	budgetHandler := handlers.NewBudgetHandler(core.Ledger, notifier, core.Activity)
	transactionHandler := handlers.NewTransactionHandler(core.Transactions, notifier, core.Activity)
	billHandler := handlers.NewBillHandler(core.Bills, notifier, core.Activity)
	analyticsHandler := handlers.NewAnalyticsHandler(core.Analytics)
	alertHandler := handlers.NewAlertHandler(notifier)
	commandHandler := handlers.NewCommandHandler(core.Transactions, notifier, core.Activity)
	feedbackHandler := handlers.NewFeedbackHandler(core.Feedback, core.Activity)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Serialize())

	budget := v1.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.PUT("", budgetHandler.SetBudget)
	budget.POST("/close", budgetHandler.ClosePeriod)
	budget.POST("/donations", budgetHandler.Donate)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)

	bills := v1.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetBills)
	bills.GET("/due-soon", billHandler.GetDueSoon)
	bills.POST("/:index/settle", billHandler.SettleBill)

	analytics := v1.Group("/analytics")
	analytics.GET("/categories", analyticsHandler.GetCategories)
	analytics.GET("/timeline", analyticsHandler.GetTimeline)
	analytics.GET("/summary", analyticsHandler.GetSummary)

	v1.GET("/alerts", alertHandler.GetAlerts)
	v1.POST("/commands", commandHandler.Execute)

	feedback := v1.Group("/feedback")
	feedback.POST("", feedbackHandler.SubmitFeedback)
	admin := feedback.Group("", middleware.AdminAPIKey(opts.AdminAPIKey))
	admin.GET("", feedbackHandler.GetFeedback)
	admin.DELETE("", feedbackHandler.ClearFeedback)

	return router
}
