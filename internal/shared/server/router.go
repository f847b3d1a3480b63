package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanwat12/Ats-Slrd/internal/applications"
	googleauth "github.com/hanwat12/Ats-Slrd/internal/auth"
	"github.com/hanwat12/Ats-Slrd/internal/feedback"
	"github.com/hanwat12/Ats-Slrd/internal/interviews"
	"github.com/hanwat12/Ats-Slrd/internal/notifications"
	"github.com/hanwat12/Ats-Slrd/internal/queries"
	"github.com/hanwat12/Ats-Slrd/internal/resumes"
	"github.com/hanwat12/Ats-Slrd/internal/shared/config"
	"github.com/hanwat12/Ats-Slrd/internal/shared/metrics"
	"github.com/hanwat12/Ats-Slrd/internal/shared/server/middleware"
	"github.com/hanwat12/Ats-Slrd/internal/shared/server/respond"
	"github.com/hanwat12/Ats-Slrd/internal/users"
)

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config               config.Config
	UsersHandler         *users.Handler
	ApplicationsHandler  *applications.Handler
	InterviewsHandler    *interviews.Handler
	FeedbackHandler      *feedback.Handler
	NotificationsHandler *notifications.Handler
	QueriesHandler       *queries.Handler
	ResumesHandler       *resumes.Handler
	GoogleAuth           *googleauth.GoogleService
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
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/feedback" {
					return "SUBMIT"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 20, Burst: 40},
				"SUBMIT":  {Rate: 1, Burst: 5},
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	registerMeRoutes(api)

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.ApplicationsHandler != nil {
		deps.ApplicationsHandler.RegisterRoutes(api)
	}
	if deps.InterviewsHandler != nil {
		deps.InterviewsHandler.RegisterRoutes(api)
	}
	if deps.FeedbackHandler != nil {
		deps.FeedbackHandler.RegisterRoutes(api)
	}
	if deps.NotificationsHandler != nil {
		deps.NotificationsHandler.RegisterRoutes(api)
	}
	if deps.QueriesHandler != nil {
		deps.QueriesHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
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
