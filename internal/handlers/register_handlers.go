package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/traviq/expense_assistant/internal/core/ports/services"
	"github.com/traviq/expense_assistant/internal/middleware"
	"github.com/traviq/expense_assistant/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	expenseService portssvc.ExpenseSvcFacade,
	limiterInstance *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r)

	// Setup API v1 routes with inbound rate limiting
	setupAPIV1Routes(r, expenseService, limiterInstance)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	expenseService portssvc.ExpenseSvcFacade,
	limiterInstance *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))

	RegisterExpenseRoutes(v1, expenseService)
}
