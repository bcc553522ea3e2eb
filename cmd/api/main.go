package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talenthub-backend/config"
	v1 "talenthub-backend/internal/delivery/http/v1"
	"talenthub-backend/internal/repository/postgres"
	"talenthub-backend/internal/usecase"
	"talenthub-backend/pkg/database"
	"talenthub-backend/pkg/logger"
	"talenthub-backend/pkg/redis"
	"talenthub-backend/pkg/token"
	"talenthub-backend/pkg/upload"

	"github.com/go-playground/validator/v10"
)

// @title           TalentHub API
// @version         1.0
// @description     Job board backend: postings, applications, and role-based accounts.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting TalentHub backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting degrades to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Upload Store
	uploads, err := upload.NewStore(cfg.UploadDir, cfg.MaxFileSize)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiresIn)
	authUC := usecase.NewAuthUsecase(userRepo, tokens, validate)
	userUC := usecase.NewUserUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		UserRepo:      userRepo,
		Tokens:        tokens,
		Uploads:       uploads,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
