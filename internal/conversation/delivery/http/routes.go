package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	conversations := rg.Group("/conversations")
	{
		conversations.POST("", h.Create)
		conversations.GET("/:id", h.Detail)
		conversations.GET("/:id/context", h.Context)
		conversations.POST("/:id/end", h.End)
	}
}
