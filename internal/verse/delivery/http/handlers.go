package http

import (
	"github.com/gin-gonic/gin"

	"gitagpt/internal/verse"
	"gitagpt/pkg/response"
)

// Search godoc
// @Summary     Search verses
// @Description Performs semantic search over the Bhagavad Gita verses, optionally biased by a detected emotion.
// @Tags        Verses
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Search parameters"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/verses/search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// Detail godoc
// @Summary     Get verse by ID
// @Description Returns a single Bhagavad Gita verse by its ID (e.g. BG2.47).
// @Tags        Verses
// @Accept      json
// @Produce     json
// @Param       id path string true "Verse ID"
// @Success     200 {object} verseResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/verses/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Get(ctx, id)
	if err != nil {
		if err != verse.ErrNotFound {
			h.l.Errorf(ctx, "uc.Get: %v", err)
		}
		h.mapError(c, err)
		return
	}

	response.OK(c, newVerseResp(output))
}
