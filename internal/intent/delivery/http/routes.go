package http

import (
	"github.com/gin-gonic/gin"

	"adhd-task-assistant/internal/middleware"
)

// RegisterRoutes maps the recognition and cache endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	intents := rg.Group("/intents")
	{
		intents.POST("/recognize", mw.Scope(), h.Recognize)
		intents.GET("/cache", h.CacheStats)
		intents.DELETE("/cache", h.ClearCache)
	}
}
