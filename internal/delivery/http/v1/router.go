package v1

import (
	"net/http"
	"time"

	"talenthub-backend/config"
	"talenthub-backend/internal/delivery/http/middleware"
	"talenthub-backend/internal/domain"
	"talenthub-backend/pkg/token"
	"talenthub-backend/pkg/upload"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	UserRepo      domain.UserRepository
	Tokens        *token.Manager
	Uploads       *upload.Store
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Health Check
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "TalentHub API is running"})
	}
	r.GET("/health", health)
	r.GET("/api/health", health)

	// Uploaded documents are served statically by their randomized names.
	r.Static("/uploads", deps.Uploads.Dir())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Credential endpoints take the stricter limit.
	authLimited := api.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.UserRepo))
	{
		NewAuthHandler(authLimited, protected, deps.AuthUC)
		NewUserHandler(protected, deps.UserUC)
		NewJobHandler(api, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC, deps.Uploads)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}
