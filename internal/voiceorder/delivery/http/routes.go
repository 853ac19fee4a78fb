package http

import (
	"github.com/gin-gonic/gin"

	"voice-ordering/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route is rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())
	{
		rg.POST("/start", h.Start)
		rg.POST("/chat", h.Chat)
		rg.GET("/order/:session_id", h.GetOrder)
		rg.DELETE("/session/:session_id", h.EndSession)
	}
}
