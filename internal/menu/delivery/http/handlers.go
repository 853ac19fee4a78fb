package http

import (
	"github.com/gin-gonic/gin"

	"voice-ordering/pkg/response"
)

// Get godoc
// @Summary     Get the menu
// @Description Returns available dinners with their default composition, and serving styles.
// @Tags        Menu
// @Produce     json
// @Success     200 {object} menuResp
// @Failure     503 {object} response.Resp "Catalog unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/menu [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	snap, err := h.uc.Snapshot(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Snapshot: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMenuResp(snap))
}
