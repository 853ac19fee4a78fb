package http

import (
	"github.com/gin-gonic/gin"

	"voice-ordering/pkg/response"
)

// Start godoc
// @Summary     Start a voice order session
// @Description Creates a conversation seeded with the menu and returns the assistant greeting.
// @Tags        VoiceOrder
// @Accept      json
// @Produce     json
// @Param       body body startReq false "Customer"
// @Success     200 {object} startResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Catalog unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice-order/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Start(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStartResp(output))
}

// Chat godoc
// @Summary     Send a user message
// @Description Runs one conversation turn. When the reply completes the order, order_data is returned.
// @Tags        VoiceOrder
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Turn"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     502 {object} response.Resp "Completion provider failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice-order/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Turn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Turn: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// GetOrder godoc
// @Summary     Get the order draft
// @Description Returns the last completed order draft of a session.
// @Tags        VoiceOrder
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} orderResp
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice-order/order/{session_id} [GET]
func (h *handler) GetOrder(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	draft, err := h.uc.GetDraft(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetDraft %s: %v", id, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newOrderResp(draft))
}

// EndSession godoc
// @Summary     End a session
// @Description Drops the conversation and its draft. Ending an unknown session succeeds.
// @Tags        VoiceOrder
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/voice-order/session/{session_id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.End(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.End: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
