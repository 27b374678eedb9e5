package http

import (
	"github.com/gin-gonic/gin"

	"adhd-task-assistant/internal/middleware"
)

// RegisterRoutes maps the utterance and task endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/utterances", mw.Scope(), h.HandleUtterance)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Scope(), h.List)
		tasks.GET("/:id", mw.Scope(), h.Detail)
		tasks.PATCH("/:id/status", mw.Scope(), h.UpdateStatus)
	}
}
