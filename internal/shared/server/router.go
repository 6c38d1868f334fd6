package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"finbooks-backend/internal/shared/config"
	"finbooks-backend/internal/shared/metrics"
	"finbooks-backend/internal/shared/server/middleware"
	"finbooks-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	DocumentsHandler RouteRegistrar
	AnalysisHandler  RouteRegistrar
	LedgerHandler    RouteRegistrar
	AuditsHandler    RouteRegistrar
	InsightsHandler  RouteRegistrar
}

// triggerGroup buckets the expensive pipeline endpoints for rate limiting.
func triggerGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	path := c.FullPath()
	if strings.HasSuffix(path, "/analyze") || strings.HasSuffix(path, "/run") ||
		strings.HasSuffix(path, "/insights/generate") {
		return "TRIGGER"
	}
	return ""
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"TRIGGER": {Rate: 0.5, Burst: 5},
		},
		GroupFor: triggerGroup,
	}))

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	for _, h := range []RouteRegistrar{
		deps.DocumentsHandler,
		deps.AnalysisHandler,
		deps.LedgerHandler,
		deps.AuditsHandler,
		deps.InsightsHandler,
	} {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
