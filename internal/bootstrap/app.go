package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"offr-backend/internal/account"
	"offr-backend/internal/assessments"
	"offr-backend/internal/catalogue"
	"offr-backend/internal/faq"
	"offr-backend/internal/narrative"
	"offr-backend/internal/narrative/gemini"
	"offr-backend/internal/profiles"
	"offr-backend/internal/shared/config"
	"offr-backend/internal/shared/server"
	"offr-backend/internal/shared/storage/db"
	"offr-backend/internal/shared/telemetry"
	"offr-backend/internal/statements"
	"offr-backend/internal/tracker"
	"offr-backend/internal/usage"
)

const aiMaxRetries = 1

// App holds shared dependencies built from config.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	CatalogueService   *catalogue.Service
	ProfilesService    *profiles.Service
	TrackerService     *tracker.Service
	UsageService       *usage.Service
	StatementsService  *statements.Service
	AssessmentsService *assessments.Service
	FAQService         *faq.Service
	AccountService     *account.Service
}

// Build prepares all services and the router. Deployments without a
// database, Redis, or an AI key degrade to in-memory repositories, no cache,
// and the placeholder provider.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	telemetry.Init(cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var catalogueRepo catalogue.Repo
	var profilesRepo profiles.Repo
	var trackerRepo tracker.Repo
	var usageSvc *usage.Service
	if sqlDB != nil {
		catalogueRepo = &catalogue.PGRepo{DB: sqlDB}
		profilesRepo = &profiles.PGRepo{DB: sqlDB}
		trackerRepo = &tracker.PGRepo{DB: sqlDB}
		usageSvc = usage.NewService(usage.NewPGStore(sqlDB))
	} else {
		catalogueRepo = catalogue.NewMemoryRepo()
		profilesRepo = profiles.NewMemoryRepo()
		trackerRepo = tracker.NewMemoryRepo()
		usageSvc = usage.NewService(usage.NewMemoryStore())
	}

	provider, modelName := buildProvider(ctx, cfg)

	catalogueSvc := catalogue.NewService(catalogueRepo, buildCache(cfg))
	profilesSvc := profiles.NewService(profilesRepo, provider)
	trackerSvc := tracker.NewService(trackerRepo)
	statementsSvc := statements.NewService(provider, modelName)
	assessmentsSvc := assessments.NewService(catalogueSvc, usageSvc, statementsSvc, provider)
	faqSvc := faq.NewService(provider)
	accountSvc := account.NewService(profilesRepo, trackerRepo)

	app := &App{
		Config:             cfg,
		DB:                 sqlDB,
		CatalogueService:   catalogueSvc,
		ProfilesService:    profilesSvc,
		TrackerService:     trackerSvc,
		UsageService:       usageSvc,
		StatementsService:  statementsSvc,
		AssessmentsService: assessmentsSvc,
		FAQService:         faqSvc,
		AccountService:     accountSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		AssessmentsHandler: assessments.NewHandler(assessmentsSvc),
		CatalogueHandler:   catalogue.NewHandler(catalogueSvc),
		ProfilesHandler:    profiles.NewHandler(profilesSvc),
		StatementsHandler:  statements.NewHandler(statementsSvc),
		TrackerHandler:     tracker.NewHandler(trackerSvc),
		UsageHandler:       usage.NewHandler(usageSvc),
		FAQHandler:         faq.NewHandler(faqSvc),
		AccountHandler:     account.NewHandler(accountSvc),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildCache(cfg config.Config) catalogue.Cache {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return catalogue.NoopCache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return catalogue.NewRedisCache(client, cfg.CourseCacheTTL)
}

func buildProvider(ctx context.Context, cfg config.Config) (narrative.Provider, string) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if cfg.AIProvider != "gemini" || apiKey == "" {
		telemetry.Info("bootstrap.ai_placeholder", map[string]any{"provider": cfg.AIProvider})
		return narrative.Placeholder{}, ""
	}

	client, err := gemini.NewClient(ctx, apiKey, cfg.AIModel, cfg.AITimeout)
	if err != nil {
		telemetry.Warn("bootstrap.ai_placeholder", map[string]any{"reason": err.Error()})
		return narrative.Placeholder{}, ""
	}
	return narrative.WithRetry(client, aiMaxRetries, 0), client.Model()
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
