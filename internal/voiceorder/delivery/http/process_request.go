package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "voice-ordering/pkg/errors"
)

// processStartReq binds the optional start body. An empty body is allowed.
func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

// processChatReq binds and validates the chat body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSessionIDReq(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("session_id"))
	if id == "" {
		return "", pkgErrors.NewHTTPError(400, "session_id is required")
	}
	return id, nil
}
