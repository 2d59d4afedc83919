package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/analytics"
	"jobtrack-backend/internal/export"
	"jobtrack-backend/internal/extraction"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/llm"
	"jobtrack-backend/internal/llm/openai"
	"jobtrack-backend/internal/match"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/server"
	"jobtrack-backend/internal/shared/storage/db"
)

var errDatabaseRequired = errors.New("DATABASE_URL is required")

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	LLM    llm.Client

	JobsRepo          jobs.Repo
	JobsService       *jobs.Service
	ExtractionService *extraction.Service
	MatchService      *match.Service

	JobsHandler       *jobs.Handler
	ExtractionHandler *extraction.Handler
	MatchHandler      *match.Handler
	AnalyticsHandler  *analytics.Handler
	ExportHandler     *export.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		LLM:    llmClient,
	}

	if app.DB != nil {
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
	} else {
		app.JobsRepo = jobs.NewMemoryRepo()
	}

	app.JobsService = &jobs.Service{Repo: app.JobsRepo}
	app.ExtractionService = &extraction.Service{LLM: app.LLM}
	app.MatchService = &match.Service{LLM: app.LLM}

	app.JobsHandler = jobs.NewHandler(app.JobsService)
	app.ExtractionHandler = extraction.NewHandler(app.ExtractionService)
	app.MatchHandler = match.NewHandler(app.MatchService)
	app.AnalyticsHandler = analytics.NewHandler(app.JobsService)
	app.ExportHandler = export.NewHandler(app.JobsService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		JobsHandler:       app.JobsHandler,
		ExtractionHandler: app.ExtractionHandler,
		MatchHandler:      app.MatchHandler,
		AnalyticsHandler:  app.AnalyticsHandler,
		ExportHandler:     app.ExportHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" {
		return llm.PlaceholderClient{}, nil
	}

	client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: llm client unavailable; extraction and scoring disabled: %v", err)
			return llm.PlaceholderClient{}, nil
		}
		return nil, err
	}
	return client, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
