package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"voice-ordering/internal/menu"
	"voice-ordering/internal/middleware"
	"voice-ordering/internal/voiceorder"
	"voice-ordering/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Domains
	menuUC       menu.UseCase
	voiceOrderUC voiceorder.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are
	// believed. Empty trusts none, so the peer address identifies the client.
	TrustedProxies []string
	Middleware     middleware.Middleware

	MenuUseCase       menu.UseCase
	VoiceOrderUseCase voiceorder.UseCase
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: timeout,
		mw:              cfg.Middleware,
		menuUC:          cfg.MenuUseCase,
		voiceOrderUC:    cfg.VoiceOrderUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.menuUC == nil {
		return errors.New("menu use case is required")
	}
	if srv.voiceOrderUC == nil {
		return errors.New("voice order use case is required")
	}
	return nil
}
