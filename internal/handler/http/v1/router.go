package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		protected.GET("/streets", h.listStreets)

		selection := protected.Group("/selection")
		selection.POST("/single", h.selectSingle)
		selection.POST("/multi", h.selectMulti)

		protected.POST("/dashboard", h.getDashboard)
		protected.GET("/charts/heatmap", h.getHeatmap)
		protected.GET("/summary", h.getSummary)
	}
}
