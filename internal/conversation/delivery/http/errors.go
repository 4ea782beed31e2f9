package http

import (
	"github.com/gin-gonic/gin"

	"gitagpt/internal/conversation"
	"gitagpt/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case conversation.ErrInvalidMode, conversation.ErrSessionEnded:
		response.Error(c, err, nil)
	case conversation.ErrSessionNotFound:
		response.NotFound(c, "session not found")
	default:
		response.InternalError(c, err)
	}
}
