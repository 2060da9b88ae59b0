package web

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed dashboard.html
var dashboardHTML []byte

// RegisterRoutes отдаёт страницу дашборда на "/". Графики рисуются в браузере
// по JSON из /api/v1.
func RegisterRoutes(router gin.IRoutes) {
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", dashboardHTML)
	})
}
