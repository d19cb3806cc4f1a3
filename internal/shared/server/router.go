package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"offr-backend/internal/account"
	"offr-backend/internal/assessments"
	"offr-backend/internal/catalogue"
	"offr-backend/internal/faq"
	"offr-backend/internal/profiles"
	"offr-backend/internal/shared/config"
	"offr-backend/internal/shared/metrics"
	"offr-backend/internal/shared/server/middleware"
	"offr-backend/internal/shared/server/respond"
	"offr-backend/internal/statements"
	"offr-backend/internal/tracker"
	"offr-backend/internal/usage"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	AssessmentsHandler *assessments.Handler
	CatalogueHandler   *catalogue.Handler
	ProfilesHandler    *profiles.Handler
	StatementsHandler  *statements.Handler
	TrackerHandler     *tracker.Handler
	UsageHandler       *usage.Handler
	FAQHandler         *faq.Handler
	AccountHandler     *account.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" || deps.Config.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		metrics.HTTPMetrics(),
		middleware.RateLimit(rateLimitConfig()),
		middleware.Auth(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.AssessmentsHandler.Register(api)
	deps.CatalogueHandler.Register(api)
	deps.ProfilesHandler.Register(api)
	deps.StatementsHandler.Register(api)
	deps.TrackerHandler.Register(api)
	deps.UsageHandler.Register(api)
	deps.FAQHandler.Register(api)
	deps.AccountHandler.Register(api)

	return r
}

// aiPaths are the endpoints that reach the narrative provider and get the
// tighter rate limit.
var aiPaths = []string{
	"/api/v1/assess",
	"/api/v1/statements/analyse",
	"/api/v1/faq/ask",
	"/api/v1/profile/suggestions",
}

func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":                   {Rate: 20, Burst: 40},
			middleware.RateLimitGroupAI: {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			path := c.Request.URL.Path
			for _, p := range aiPaths {
				if strings.HasPrefix(path, p) {
					return middleware.RateLimitGroupAI
				}
			}
			return "DEFAULT"
		},
	}
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
