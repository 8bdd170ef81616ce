package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"content-dashboard/internal/config"
	"content-dashboard/internal/dashboard"
	"content-dashboard/internal/domain"
	"content-dashboard/internal/handler"
	"content-dashboard/internal/infrastructure/database"
	"content-dashboard/internal/logger"
	"content-dashboard/internal/middleware"
	"content-dashboard/internal/service"
	"content-dashboard/internal/session"
	"content-dashboard/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Open session persistence
	db, err := database.NewSQLite(context.Background(), cfg.SessionDBPath)
	if err != nil {
		logger.Fatal("Failed to open session database",
			slog.String("error", err.Error()))
	}
	defer db.Close()

	// Restore the persisted session, if any
	sessions, err := session.New(context.Background(), db, domain.SeedUsers())
	if err != nil {
		logger.Fatal("Failed to initialize session store",
			slog.String("error", err.Error()))
	}
	if user := sessions.Current(); user != nil {
		logger.Info("Restored session",
			slog.String("user", user.Email))
	}

	// Initialize the view-state store over the seed data
	store := dashboard.NewStore(domain.SeedArticles(), cfg.PageSize, cfg.SearchDebounce)
	defer store.Close()
	if user := sessions.Current(); user != nil {
		store.Dispatch(dashboard.SetUser{User: user})
	}

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(store, v, cfg.UpdateDelay)
	analyticsService := service.NewAnalyticsService(
		domain.SeedPerformanceData(rand.New(rand.NewSource(time.Now().UnixNano()))))

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(store, articleService)
	authHandler := handler.NewAuthHandler(sessions, store, v)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	healthHandler := handler.NewHealthHandler(db)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.Session)
		}

		// Everything behind the login surface requires the session token
		dash := v1.Group("", middleware.Auth(sessions))
		{
			articles := dash.Group("/articles")
			{
				articles.GET("", articleHandler.GetView)
				articles.PATCH("/filters", articleHandler.SetFilters)
				articles.POST("/search", articleHandler.Search)
				articles.POST("/sort", articleHandler.Sort)
				articles.POST("/page", articleHandler.SetPage)
				articles.GET("/authors", articleHandler.Authors)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
			}

			dash.GET("/performance", analyticsHandler.Performance)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
