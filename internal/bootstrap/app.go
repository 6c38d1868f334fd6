package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"finbooks-backend/internal/analysis"
	"finbooks-backend/internal/audits"
	"finbooks-backend/internal/documents"
	"finbooks-backend/internal/insights"
	"finbooks-backend/internal/ledger"
	"finbooks-backend/internal/llm"
	openai "finbooks-backend/internal/llm/openai"
	"finbooks-backend/internal/shared/config"
	"finbooks-backend/internal/shared/server"
	"finbooks-backend/internal/shared/storage/db"
	"finbooks-backend/internal/shared/storage/object"
	localstore "finbooks-backend/internal/shared/storage/object/local"
	s3store "finbooks-backend/internal/shared/storage/object/s3"
	"finbooks-backend/internal/taxcodes"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	DocumentsRepo    documents.DocumentsRepo
	TaxCodesRepo     taxcodes.Repo
	WriteOffsRepo    ledger.WriteOffRepo
	RevenueRepo      ledger.RevenueRepo
	BalanceSheetRepo ledger.BalanceSheetRepo
	AuditsRepo       audits.Repo

	DocumentsService *documents.Service
	AnalysisService  *analysis.Service
	LedgerService    *ledger.Service
	AuditsService    *audits.Service
	InsightsService  *insights.Service
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store, err := buildStore(ctx, cfg)
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
		Store:  store,
		LLM:    llmClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		DocumentsHandler: documents.NewHandler(app.DocumentsService),
		AnalysisHandler:  analysis.NewHandler(app.AnalysisService),
		LedgerHandler:    ledger.NewHandler(app.LedgerService),
		AuditsHandler:    audits.NewHandler(app.AuditsService),
		InsightsHandler:  insights.NewHandler(app.InsightsService),
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
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
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider != "openai" {
		return llm.PlaceholderClient{}, nil
	}
	client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel, cfg.LLMTimeout)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: openai client unavailable; insight generation disabled: %v", err)
			return llm.PlaceholderClient{}, nil
		}
		return nil, err
	}
	return client, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.DocumentsRepo = &documents.PGRepo{DB: app.DB}
		app.TaxCodesRepo = &taxcodes.PGRepo{DB: app.DB}
		app.WriteOffsRepo = &ledger.PGWriteOffRepo{DB: app.DB}
		app.RevenueRepo = &ledger.PGRevenueRepo{DB: app.DB}
		app.BalanceSheetRepo = &ledger.PGBalanceSheetRepo{DB: app.DB}
		app.AuditsRepo = &audits.PGRepo{DB: app.DB}
	} else {
		app.DocumentsRepo = documents.NewMemoryRepo()
		tcRepo := taxcodes.NewMemoryRepo()
		for _, tc := range taxcodes.Defaults() {
			tcRepo.Put(tc)
		}
		app.TaxCodesRepo = tcRepo
		app.WriteOffsRepo = ledger.NewMemoryWriteOffRepo()
		app.RevenueRepo = ledger.NewMemoryRevenueRepo()
		app.BalanceSheetRepo = ledger.NewMemoryBalanceSheetRepo()
		app.AuditsRepo = audits.NewMemoryRepo()
	}

	app.DocumentsService = &documents.Service{
		Store:          app.Store,
		Repo:           app.DocumentsRepo,
		StorageTimeout: app.Config.StorageTimeout,
	}
	app.AnalysisService = &analysis.Service{
		Docs:         app.DocumentsService,
		WriteOffs:    app.WriteOffsRepo,
		Revenue:      app.RevenueRepo,
		BalanceSheet: app.BalanceSheetRepo,
		TaxCodes:     app.TaxCodesRepo,
	}
	app.LedgerService = &ledger.Service{
		WriteOffs:    app.WriteOffsRepo,
		Revenue:      app.RevenueRepo,
		BalanceSheet: app.BalanceSheetRepo,
		TaxCodes:     app.TaxCodesRepo,
	}
	app.AuditsService = &audits.Service{Repo: app.AuditsRepo}
	app.InsightsService = &insights.Service{
		Ledger:     app.LedgerService,
		LLM:        app.LLM,
		LLMTimeout: app.Config.LLMTimeout,
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
