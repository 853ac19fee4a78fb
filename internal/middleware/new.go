package middleware

import (
	"voice-ordering/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RequestsPerMin int
	AllowedOrigins []string
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	origins []string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
		origins: cfg.AllowedOrigins,
	}
}
