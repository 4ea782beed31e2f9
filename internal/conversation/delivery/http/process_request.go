package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processCreateSessionReq binds the optional session creation body. An
// empty body means defaults.
func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
