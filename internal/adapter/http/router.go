package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/domain"
)

type RouterConfig struct {
	BasePath       string
	TrustedProxies []string
	Logger         *zap.Logger
	// Metrics is optional; when set, /metrics is exposed outside the base path.
	Metrics *middleware.Metrics
}

// NewRouter builds the engine with the middleware chain in its required order:
// request id and language first, recovery inside metrics and logging so
// panics are still counted, error rendering innermost.
func NewRouter(cfg RouterConfig, h Handlers) (*gin.Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	r.Use(
		middleware.RequestID(),
		middleware.LanguageMiddleware(),
		middleware.GinZapMiddleware(logger),
	)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	r.Use(
		middleware.Recovery(),
		middleware.ErrorHandler(),
	)

	// Registered after Use so unmatched requests pass through the same chain
	// and get the JSON envelope.
	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(domain.RouteNotFound(c.Request.URL.Path))
	})
	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(domain.MethodNotAllowed(c.Request.Method + " " + c.Request.URL.Path))
	})

	RegisterRoutes(r, cfg.BasePath, h)
	return r, nil
}
