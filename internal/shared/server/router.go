// Package server assembles the HTTP router from the configured handlers.
package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/analyses"
	googleauth "github.com/Aryaagasti/FinalYearMcaBackend/internal/auth"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/chatbot"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/courses"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/coverletter"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/feedback"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/resumes"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/auth"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/config"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/metrics"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/server/middleware"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/server/respond"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/users"
)

// RouterDeps carries everything NewRouter needs.
type RouterDeps struct {
	Config             config.Config
	Issuer             *auth.Issuer
	DB                 *sql.DB
	OracleEnabled      bool
	AnalysisHandler    *analyses.Handler
	ResumesHandler     *resumes.Handler
	UsersHandler       *users.Handler
	CoverLetterHandler *coverletter.Handler
	FeedbackHandler    *feedback.Handler
	CoursesHandler     *courses.Handler
	ChatbotHandler     *chatbot.Handler
	GoogleAuth         *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Issuer),
	)

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler(deps))
	api.GET("/metrics", metrics.Handler())

	authGroup := api.Group("/auth")
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterAuthRoutes(authGroup)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(authGroup)
	}

	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api.Group("/users"))
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.CoverLetterHandler != nil {
		deps.CoverLetterHandler.RegisterRoutes(api)
	}
	if deps.FeedbackHandler != nil {
		deps.FeedbackHandler.RegisterRoutes(api)
	}
	if deps.CoursesHandler != nil {
		deps.CoursesHandler.RegisterRoutes(api)
	}
	if deps.ChatbotHandler != nil {
		deps.ChatbotHandler.RegisterRoutes(api)
	}

	return r
}

// healthHandler reports process liveness plus the state of optional backends.
// The endpoint stays 200 even when a backend is down so that load balancers
// keep routing; operators read the payload.
func healthHandler(deps RouterDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := gin.H{"ok": true, "env": deps.Config.Env}

		switch {
		case deps.DB == nil:
			payload["db"] = "off"
		default:
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.DB.PingContext(ctx); err != nil {
				payload["db"] = "error"
			} else {
				payload["db"] = "ok"
			}
		}

		if deps.OracleEnabled {
			payload["oracle"] = "enabled"
		} else {
			payload["oracle"] = "disabled"
		}

		respond.JSON(c, http.StatusOK, payload)
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
