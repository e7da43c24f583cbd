package leavetype

import (
	"github.com/Harendra62/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	types := r.Group("/leave-types")
	types.Use(middleware.ContextLogger(logger))
	{
		types.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetAll,
		)
		types.GET("/:id",
			middleware.RateLimitByIP(5, 20),
			handler.GetById,
		)
		types.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)
		types.PUT("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)
		types.DELETE("/:id",
			middleware.RateLimitByIP(0.1, 1),
			handler.Deactivate,
		)
	}
}
