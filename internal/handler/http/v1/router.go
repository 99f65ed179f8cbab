package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для работы с партиями наблюдений, доступ по API-ключу
	batches := api.Group("/batches")
	if len(h.cfg.APIKeys) > 0 {
		batches.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		batches.POST("", h.ingestBatch)
		batches.GET("", h.listBatches)
		batches.GET("/stats", h.getStats)
		batches.GET("/:id/timeline", h.getTimeline)
		batches.GET("/:id/analytics", h.getAnalytics)
		batches.GET("/:id/route", h.getRoute)
		batches.DELETE("/:id", h.deleteBatch)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
