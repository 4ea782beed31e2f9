package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// extra middlewares (rate limiting) apply to the chat route only.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, middlewares ...gin.HandlerFunc) {
	handlers := append(middlewares, h.Chat)
	rg.POST("/chat", handlers...)
}
