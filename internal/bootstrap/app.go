// Package bootstrap wires configuration into concrete dependencies and the
// HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/analyses"
	googleauth "github.com/Aryaagasti/FinalYearMcaBackend/internal/auth"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/chatbot"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/courses"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/coverletter"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/feedback"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/jobs"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/llm/gemini"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/resumes"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/auth"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/config"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/server"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/storage/db"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Redis  *redis.Client

	ResumesRepo resumes.Repo
	UsersRepo   users.Repo

	Issuer          *auth.Issuer
	LLM             llm.Client
	Searcher        jobs.Searcher
	AnalysesService *analyses.Service
	UsersService    *users.Service
}

// Build prepares all dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Redis:  buildRedis(cfg),
		Issuer: auth.NewIssuer(cfg.JWTSecret, cfg.JWTExpiry),
	}

	app.ResumesRepo = buildResumesRepo(sqlDB)
	app.UsersRepo = buildUserRepo(sqlDB)
	app.LLM = buildLLM(ctx, cfg)
	app.Searcher = buildSearcher(cfg, app.Redis)

	app.UsersService = users.NewService(app.UsersRepo, cfg.BCryptCost)
	app.AnalysesService = analyses.NewService(app.ResumesRepo,
		analyses.NewAnalyzer(app.LLM), cfg.MaxListingWorkers)

	googleAuth := googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		app.UsersService,
		app.Issuer,
	)

	_, llmDisabled := app.LLM.(llm.Disabled)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		Issuer:             app.Issuer,
		DB:                 sqlDB,
		OracleEnabled:      !llmDisabled,
		AnalysisHandler:    analyses.NewHandler(app.AnalysesService, app.Searcher),
		ResumesHandler:     resumes.NewHandler(app.ResumesRepo),
		UsersHandler:       users.NewHandler(app.UsersService, app.Issuer),
		CoverLetterHandler: coverletter.NewHandler(coverletter.NewService(app.LLM)),
		FeedbackHandler:    feedback.NewHandler(feedback.NewService(app.LLM)),
		CoursesHandler:     courses.NewHandler(courses.NewService(app.LLM)),
		ChatbotHandler:     chatbot.NewHandler(chatbot.NewService(app.LLM)),
		GoogleAuth:         googleAuth,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{
				"reason": "DATABASE_URL empty",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{
				"reason": "database connect failed",
				"cause":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildRedis(cfg config.Config) *redis.Client {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		telemetry.Warn("bootstrap.redis_disabled", map[string]any{"cause": err.Error()})
		return nil
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		telemetry.Warn("bootstrap.redis_unreachable", map[string]any{"cause": err.Error()})
	}
	return client
}

func buildResumesRepo(sqlDB *sql.DB) resumes.Repo {
	if sqlDB != nil {
		return &resumes.PGRepo{DB: sqlDB}
	}
	return resumes.NewMemoryRepo()
}

func buildUserRepo(sqlDB *sql.DB) users.Repo {
	if sqlDB != nil {
		return &users.PGRepo{DB: sqlDB}
	}
	return users.NewMemoryRepo()
}

func buildLLM(ctx context.Context, cfg config.Config) llm.Client {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		telemetry.Warn("bootstrap.llm_disabled", map[string]any{
			"reason": "GEMINI_API_KEY empty",
		})
		return llm.Disabled{}
	}
	client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.OracleTimeout)
	if err != nil {
		telemetry.Warn("bootstrap.llm_disabled", map[string]any{"cause": err.Error()})
		return llm.Disabled{}
	}
	return client
}

func buildSearcher(cfg config.Config, redisClient *redis.Client) jobs.Searcher {
	upstream := jobs.NewSerpAPIClient(cfg.SerpAPIKey, cfg.SerpAPIBaseURL, cfg.JobSearchTimeout)
	return jobs.NewCachedSearcher(upstream, redisClient, cfg.JobSearchCacheTTL)
}

func isDevLike(env string) bool {
	switch env {
	case "dev", "local":
		return true
	default:
		return false
	}
}
