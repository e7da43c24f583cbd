package leave

import (
	"github.com/Harendra62/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	leave := r.Group("/leave")
	leave.Use(middleware.ContextLogger(logger))
	{
		leave.POST("/requests",
			middleware.RateLimitByIP(2, 5),
			handler.Create,
		)
		leave.GET("/requests/:id",
			middleware.RateLimitByIP(5, 20),
			handler.GetByID,
		)
		leave.GET("/requests/employee/:id",
			middleware.RateLimitByIP(5, 20),
			handler.GetForEmployee,
		)
		leave.GET("/requests/employee/by-number/:number",
			middleware.RateLimitByIP(5, 20),
			handler.GetForEmployeeByNumber,
		)
		leave.GET("/requests/pending/:managerId",
			middleware.RateLimitByIP(5, 20),
			handler.GetPendingForManager,
		)
		leave.PUT("/requests/:id/decision",
			middleware.RateLimitByIP(2, 5),
			middleware.Idempotency(rdb),
			handler.Decide,
		)
		leave.PUT("/requests/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)
		leave.DELETE("/requests/:id",
			middleware.RateLimitByIP(2, 5),
			middleware.Idempotency(rdb),
			handler.Cancel,
		)
		leave.POST("/validate",
			middleware.RateLimitByIP(5, 10),
			handler.Validate,
		)
		leave.POST("/validate/comprehensive",
			middleware.RateLimitByIP(2, 5),
			handler.ValidateComprehensive,
		)
		leave.GET("/summary/employee/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetEmployeeSummary,
		)
		leave.POST("/reports",
			middleware.RateLimitByIP(1, 3),
			handler.Report,
		)
	}
}
