package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"playlist-backend/internal/analyses"
	"playlist-backend/internal/llm"
	"playlist-backend/internal/llm/gemini"
	"playlist-backend/internal/playlist"
	"playlist-backend/internal/quota"
	"playlist-backend/internal/shared/config"
	"playlist-backend/internal/shared/server"
	"playlist-backend/internal/shared/storage/db"
	"playlist-backend/internal/users"
)

var errDatabaseRequired = errors.New("DATABASE_URL is required")

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	AnalysesRepo    analyses.Repo
	UsersRepo       users.Repo
	Playlist        playlist.Source
	LLM             llm.Client
	Limiter         *quota.Limiter
	AnalysesService *analyses.Service
	UsersService    *users.Service
	AnalysisHandler *analyses.Handler
	UsersHandler    *users.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		UsersHandler:    app.UsersHandler,
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
	return sqlDB, nil
}

func buildServices(ctx context.Context, app *App) error {
	var analysesRepo analyses.Repo
	var usersRepo users.Repo
	if app.DB != nil {
		analysesRepo = &analyses.PGRepo{DB: app.DB}
		usersRepo = &users.PGRepo{DB: app.DB}
	} else {
		analysesRepo = analyses.NewMemoryRepo()
		usersRepo = users.NewMemoryRepo()
	}

	var source playlist.Source
	if strings.TrimSpace(app.Config.YouTubeAPIKey) != "" {
		ytSource, err := playlist.NewYouTubeSource(ctx, app.Config.YouTubeAPIKey)
		if err != nil {
			return err
		}
		source = ytSource
	} else {
		log.Printf("bootstrap: YOUTUBE_API_KEY empty; playlist source not configured")
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if strings.TrimSpace(app.Config.GeminiAPIKey) != "" {
		geminiClient, err := gemini.NewClient(ctx, app.Config.GeminiAPIKey, app.Config.GeminiModel)
		if err != nil {
			return err
		}
		llmClient = geminiClient
	} else {
		log.Printf("bootstrap: GEMINI_API_KEY empty; using placeholder model client")
	}

	limiter := quota.NewLimiter(app.Config.RateLimit, app.Config.RateWindow, nil)

	analysesSvc := &analyses.Service{
		Repo:     analysesRepo,
		Playlist: source,
		LLM:      llmClient,
		Limiter:  limiter,
		Timeouts: analyses.Timeouts{
			Playlist: app.Config.PlaylistTimeout,
			Model:    app.Config.ModelTimeout,
			Persist:  app.Config.PersistTimeout,
		},
	}
	usersSvc := users.NewService(usersRepo)

	app.AnalysesRepo = analysesRepo
	app.UsersRepo = usersRepo
	app.Playlist = source
	app.LLM = llmClient
	app.Limiter = limiter
	app.AnalysesService = analysesSvc
	app.UsersService = usersSvc
	app.AnalysisHandler = analyses.NewHandler(analysesSvc)
	app.UsersHandler = users.NewHandler(usersSvc)

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
