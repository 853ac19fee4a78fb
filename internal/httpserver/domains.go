package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	menuHTTP "voice-ordering/internal/menu/delivery/http"
	voiceHTTP "voice-ordering/internal/voiceorder/delivery/http"
)

// setupMenuDomain registers /api/v1/menu.
func (srv HTTPServer) setupMenuDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := menuHTTP.New(srv.l, srv.menuUC)
	menuHTTP.RegisterRoutes(api.Group("/menu"), h, srv.mw)

	srv.l.Infof(ctx, "Menu domain registered")
	return nil
}

// setupVoiceOrderDomain registers /api/v1/voice-order/*.
func (srv HTTPServer) setupVoiceOrderDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := voiceHTTP.New(srv.l, srv.voiceOrderUC)
	voiceHTTP.RegisterRoutes(api.Group("/voice-order"), h, srv.mw)

	srv.l.Infof(ctx, "Voice order domain registered")
	return nil
}
