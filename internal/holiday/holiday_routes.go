package holiday

import (
	"github.com/Harendra62/leave-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.ContextLogger(logger))
	{
		holidays.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.GetAll,
		)
		holidays.GET("/:id",
			middleware.RateLimitByIP(5, 20),
			handler.GetById,
		)
		holidays.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Create,
		)
		holidays.PUT("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Update,
		)
		holidays.DELETE("/:id",
			middleware.RateLimitByIP(0.1, 1),
			handler.Deactivate,
		)
	}
}
