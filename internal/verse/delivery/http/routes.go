package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	verses := rg.Group("/verses")
	{
		verses.POST("/search", h.Search)
		verses.GET("/:id", h.Detail)
	}
}
