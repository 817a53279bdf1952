package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-card/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-card/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-card/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-card/internal/platform/telemetry"
)

// RouterConfig contains what SetupRouter mounts.
type RouterConfig struct {
	// ServiceName names the server spans.
	ServiceName string

	// HealthHandler serves /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// CardHandler serves the card endpoints. Optional.
	CardHandler *handlers.CardHandler
}

// SetupRouter installs the middleware chain and every route on engine.
//
// Middleware order, first to last: recovery, request ID, correlation ID,
// tracing, HTTP metrics, request logging.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	if cfg.CardHandler != nil {
		cfg.CardHandler.RegisterRoutes(&engine.RouterGroup)
	}

	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeNotFound, "route not found")
	})
}
