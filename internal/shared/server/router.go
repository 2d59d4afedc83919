package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/analytics"
	"jobtrack-backend/internal/export"
	"jobtrack-backend/internal/extraction"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/match"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	JobsHandler       *jobs.Handler
	ExtractionHandler *extraction.Handler
	MatchHandler      *match.Handler
	AnalyticsHandler  *analytics.Handler
	ExportHandler     *export.Handler
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
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.JobsHandler.RegisterRoutes(api)
	deps.ExtractionHandler.RegisterRoutes(api)
	deps.MatchHandler.RegisterRoutes(api)
	deps.AnalyticsHandler.RegisterRoutes(api)
	deps.ExportHandler.RegisterRoutes(api)

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
