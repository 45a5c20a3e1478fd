package main

import (
	"log"
	"net/http"

	_ "wolfstreet/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"wolfstreet/internal/cache"
	"wolfstreet/internal/config"
	"wolfstreet/internal/db"
	"wolfstreet/internal/handler"
	"wolfstreet/internal/model"
	"wolfstreet/internal/repository"
	"wolfstreet/internal/router"
	"wolfstreet/internal/service"
)

// @title Wolf Street API
// @version 1.0
// @description Trading-copilot backend with session authentication, watchlist, analysis and chat.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.WatchlistItem{},
		&model.ChatMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	watchlistRepo := repository.NewWatchlistRepository(gormDB)
	chatRepo := repository.NewChatRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, cacheClient)
	analysisService := service.NewAnalysisService(cacheClient)
	watchlistService := service.NewWatchlistService(watchlistRepo)
	chatService := service.NewChatService(chatRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	meHandler := handler.NewMeHandler()
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	watchlistHandler := handler.NewWatchlistHandler(watchlistService)
	chatHandler := handler.NewChatHandler(chatService)
	statusHandler := handler.NewStatusHandler(gormDB, cacheClient)

	// Register routes
	router.Register(
		e,
		authService,
		authHandler,
		meHandler,
		analysisHandler,
		watchlistHandler,
		chatHandler,
		statusHandler,
	)

	// Close the underlying connection pool on shutdown.
	defer func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
