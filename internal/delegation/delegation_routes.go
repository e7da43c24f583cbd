package delegation

import (
	"github.com/Harendra62/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	delegations := r.Group("/delegations")
	delegations.Use(middleware.ContextLogger(logger))
	{
		delegations.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)
		delegations.GET("/:id",
			middleware.RateLimitByIP(3, 10),
			handler.GetById,
		)
		delegations.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)
		delegations.PUT("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)
	}
}
