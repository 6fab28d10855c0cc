package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blogpress/internal/usecase"
	"blogpress/pkg/logger"
	"blogpress/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "blogpress/docs" // Swagger docs
)

type RouterOptions struct {
	AuthUseCase usecase.AuthUseCase
	PostUseCase usecase.PostUseCase
	Logger      *logger.Logger

	// Redis backs signup/login throttling; nil disables it.
	Redis           *redis.Client
	LoginRateLimit  int
	LoginRateWindow time.Duration

	SecureCookie   bool
	AllowedOrigins []string

	// WebDir, when set, is served for every path no API route matches.
	WebDir string
}

func NewRouter(opts RouterOptions) *gin.Engine {
	r := gin.Default()

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.AuthGate())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	adminHandler := NewAdminHandler(opts.AuthUseCase, opts.Logger, opts.SecureCookie)
	postHandler := NewPostHandler(opts.PostUseCase, opts.Logger)
	throttle := middleware.RateLimitMiddleware(opts.Redis, opts.LoginRateLimit, opts.LoginRateWindow)

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		admin.POST("/signup", throttle, adminHandler.Signup)
		admin.POST("/login", throttle, adminHandler.Login)
		admin.POST("/logout", adminHandler.Logout)
		admin.GET("/check-auth", adminHandler.CheckAuth)

		posts := api.Group("/posts")
		posts.GET("", postHandler.ListPosts)
		posts.POST("", RequireAdmin(opts.AuthUseCase, opts.Logger), postHandler.CreatePost)
		posts.GET("/related/:id", postHandler.RelatedPosts)
		posts.GET("/:id", postHandler.GetPost)
	}

	r.NoRoute(notFoundHandler(opts.WebDir))

	return r
}

// notFoundHandler serves files from webDir for non-API paths and answers
// everything else with a JSON 404.
func notFoundHandler(webDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if webDir != "" && !strings.HasPrefix(path, "/api/") && c.Request.Method == http.MethodGet {
			if file, ok := resolveStatic(webDir, path); ok {
				c.File(file)
				return
			}
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	}
}

// resolveStatic maps a request path to a file under webDir, trying the path
// itself, path.html and path/index.html.
func resolveStatic(webDir, path string) (string, bool) {
	clean := filepath.Join(webDir, filepath.FromSlash(filepath.Clean("/"+path)))
	for _, candidate := range []string{clean, clean + ".html", filepath.Join(clean, "index.html")} {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
