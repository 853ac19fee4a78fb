package http

import (
	"github.com/gin-gonic/gin"

	"voice-ordering/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.RateLimit(), h.Get)
}
