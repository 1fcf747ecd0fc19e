// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/village-finance/backend/internal/integration/entrypoint/controller"
	"github.com/village-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	incomeController    *controller.RecordController
	expenseController   *controller.RecordController
	writeRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	incomeController *controller.RecordController,
	expenseController *controller.RecordController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		dashboardController: dashboardController,
		incomeController:    incomeController,
		expenseController:   expenseController,
		writeRateLimiter:    writeRateLimiter,
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Dashboard routes
		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/trend", r.dashboardController.GetTrend)
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/category-breakdown", r.dashboardController.GetCategoryBreakdown)
			}
		}

		// Ledger routes
		if r.incomeController != nil {
			r.setupRecordRoutes(v1.Group("/incomes"), r.incomeController)
		}
		if r.expenseController != nil {
			r.setupRecordRoutes(v1.Group("/expenses"), r.expenseController)
		}
	}
}

// setupRecordRoutes configures one ledger. Writes pass through the rate limiter.
func (r *Router) setupRecordRoutes(group *gin.RouterGroup, c *controller.RecordController) {
	group.GET("", c.List)
	group.POST("", r.limited(c.Create)...)
	group.PATCH("/:id", r.limited(c.Update)...)
	group.DELETE("/:id", r.limited(c.Delete)...)
}

func (r *Router) limited(handler gin.HandlerFunc) []gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{r.writeRateLimiter.Middleware(), handler}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
