package balance

import (
	"github.com/Harendra62/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	balances := r.Group("/balances")
	balances.Use(middleware.ContextLogger(logger))
	{
		balances.GET("/employees/:id",
			middleware.RateLimitByIP(5, 20),
			handler.GetForEmployee,
		)
		balances.POST("/initialize",
			middleware.RateLimitByIP(0.5, 2),
			handler.Initialize,
		)
		balances.POST("/carry-forward",
			middleware.RateLimitByIP(0.1, 1),
			handler.CarryForward,
		)
	}
}
