package http

import (
	"github.com/gin-gonic/gin"

	"gitagpt/internal/verse"
	"gitagpt/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case verse.ErrEmptyQuery:
		response.Error(c, err, nil)
	case verse.ErrNotFound:
		response.NotFound(c, "verse not found")
	default:
		response.InternalError(c, err)
	}
}
