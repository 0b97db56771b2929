// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/cashflow-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	cashflowController    *controller.CashflowController
	analysisController    *controller.AnalysisController
	reportController      *controller.ReportController
	streamController      *controller.StreamController
	mutationRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	cashflowController *controller.CashflowController,
	analysisController *controller.AnalysisController,
	reportController *controller.ReportController,
	streamController *controller.StreamController,
	mutationRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		cashflowController:    cashflowController,
		analysisController:    analysisController,
		reportController:      reportController,
		streamController:      streamController,
		mutationRateLimiter:   mutationRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	rateLimit := r.mutationRateLimiter.Middleware()

	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.GET("/:id", r.accountController.Get)
			accounts.POST("", rateLimit, r.accountController.Create)
			accounts.PATCH("/:id", rateLimit, r.accountController.Update)
			accounts.DELETE("/:id", rateLimit, r.accountController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", rateLimit, r.categoryController.Create)
			categories.PATCH("/:id", rateLimit, r.categoryController.Update)
			categories.DELETE("/:id", rateLimit, r.categoryController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.POST("", rateLimit, r.transactionController.Create)
			transactions.PATCH("/:id", rateLimit, r.transactionController.Update)
			transactions.DELETE("/:id", rateLimit, r.transactionController.Delete)
		}

		v1.GET("/cashflow/summary", r.cashflowController.Summary)
		v1.GET("/analysis", r.analysisController.Generate)
		v1.GET("/reports/daily-closure", r.reportController.DailyClosure)
		v1.GET("/stream/:collection", r.streamController.Stream)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
