package http

import (
	"github.com/gin-gonic/gin"

	"gitagpt/pkg/response"
)

// Create godoc
// @Summary     Create conversation session
// @Description Starts a new conversation session in the given interaction mode (defaults to wisdom).
// @Tags        Conversations
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq false "Session parameters"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	session, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSessionResp(session))
}

// Detail godoc
// @Summary     Get conversation session
// @Description Returns a conversation session by ID.
// @Tags        Conversations
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.uc.GetSession(ctx, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newSessionResp(session))
}

// Context godoc
// @Summary     Get conversation context
// @Description Returns the most recent messages of a session in chronological order.
// @Tags        Conversations
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} contextResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id}/context [GET]
func (h *handler) Context(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.uc.GetSession(ctx, id); err != nil {
		h.mapError(c, err)
		return
	}

	messages, err := h.uc.GetContext(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetContext: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newContextResp(id, messages))
}

// End godoc
// @Summary     End conversation session
// @Description Marks a conversation session as ended. Ending an already-ended session is a no-op.
// @Tags        Conversations
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id}/end [POST]
func (h *handler) End(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.uc.EndSession(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.EndSession: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newSessionResp(session))
}
