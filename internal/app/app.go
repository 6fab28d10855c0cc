package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blogHTTP "blogpress/internal/controller/http"
	"blogpress/internal/repo/persistent"
	"blogpress/internal/usecase"
	"blogpress/pkg/cache"
	"blogpress/pkg/config"
	"blogpress/pkg/database"
	"blogpress/pkg/logger"
	"blogpress/pkg/session"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	codec       session.Codec
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBAutoMigrate {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(sqlDB); err != nil {
			log.Error("Failed to migrate database: %v", err)
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Redis only backs login throttling
		log.Warn("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	if cfg.SessionSecret == "" && !cfg.IsDevelopment() {
		log.Warn("SESSION_SECRET is not set; session cookies carry the bare admin id")
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		codec:       session.NewCodec(cfg.SessionSecret),
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	adminRepo := persistent.NewAdminRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(adminRepo, a.codec, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, a.log)

	router := blogHTTP.NewRouter(blogHTTP.RouterOptions{
		AuthUseCase:     authUseCase,
		PostUseCase:     postUseCase,
		Logger:          a.log,
		Redis:           a.redisClient,
		LoginRateLimit:  a.cfg.LoginRateLimit,
		LoginRateWindow: a.cfg.LoginRateWindow,
		SecureCookie:    !a.cfg.IsDevelopment(),
		AllowedOrigins:  a.cfg.CORSAllowedOrigins,
		WebDir:          a.cfg.WebDir,
	})

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Blog server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down blog server...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Blog server exited")
	return shutdownErr
}
