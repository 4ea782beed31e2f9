package http

import (
	"github.com/gin-gonic/gin"

	"gitagpt/internal/chat"
	"gitagpt/pkg/response"
)

// mapError translates domain errors into HTTP responses. Anything other
// than a validation error reaching here means the fallback chain was
// breached, which is a server fault.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case chat.ErrEmptyInput, chat.ErrInputTooLong, chat.ErrInvalidMode:
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
