// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"milldesk/internal/domain/auth"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/domain/catalogs/quality"
	"milldesk/internal/domain/reports"
	"milldesk/internal/domain/worklog"
	"milldesk/internal/infrastructure/http/v1/handlers"
	"milldesk/internal/infrastructure/http/v1/middleware"
	"milldesk/internal/infrastructure/pdf"
	"milldesk/internal/infrastructure/storage/postgres"
	"milldesk/internal/infrastructure/storage/postgres/auth_repo"
	"milldesk/internal/infrastructure/storage/postgres/catalog_repo"
	"milldesk/internal/infrastructure/storage/postgres/worklog_repo"
	"milldesk/pkg/logger"
	"milldesk/pkg/numerator"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (health checks)
	Pool *postgres.Pool

	// TxManager provides context transactions for repositories
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTService issues and validates access tokens
	JWTService *auth.JWTService

	// Numerator for catalog code generation
	Numerator *numerator.Service

	// Development switches Gin to debug mode
	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()

	// Repositories and services
	companyRepo := catalog_repo.NewCompanyRepo(cfg.TxManager)
	qualityRepo := catalog_repo.NewQualityRepo(cfg.TxManager)
	worklogRepo := worklog_repo.NewRepo(cfg.TxManager)

	qualityService := quality.NewService(qualityRepo)
	companyService := company.NewService(companyRepo, qualityRepo, cfg.TxManager, cfg.Numerator)
	worklogService := worklog.NewService(worklogRepo, qualityService, cfg.TxManager)
	reportService := reports.NewService(companyService, qualityRepo, worklogService)

	userRepo := auth_repo.NewUserRepo(cfg.TxManager)
	tokenRepo := auth_repo.NewTokenRepo(cfg.TxManager)
	authService := auth.NewService(userRepo, tokenRepo, cfg.TxManager, cfg.JWTService, auth.DefaultServiceConfig())

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		authHandler := handlers.NewAuthHandler(baseHandler, authService)
		publicAuth := v1.Group("/auth")
		protectedAuth := v1.Group("/auth")
		protectedAuth.Use(middleware.Auth(cfg.JWTService))
		authHandler.RegisterRoutes(publicAuth, protectedAuth)

		// Protected endpoints
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTService))

		// Companies with nested qualities
		companyHandler := handlers.NewCompanyHandler(baseHandler, companyService, worklogService)
		worklogHandler := handlers.NewWorkLogHandler(baseHandler, worklogService, companyService)
		companies := protected.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.POST("", companyHandler.Create)
			companies.GET("/:id", companyHandler.Get)
			companies.PUT("/:id", companyHandler.Update)
			companies.DELETE("/:id", companyHandler.Delete)
			companies.DELETE("/:id/worklogs", worklogHandler.DeleteMonth)
		}

		// Work log entries
		worklogs := protected.Group("/worklogs")
		{
			worklogs.GET("", worklogHandler.List)
			worklogs.POST("", worklogHandler.Create)
			worklogs.GET("/:id", worklogHandler.Get)
			worklogs.DELETE("/:id", worklogHandler.Delete)
		}

		// Reports
		reportsHandler := handlers.NewReportsHandler(baseHandler, reportService, pdf.NewRenderer())
		reportsGroup := protected.Group("/reports")
		{
			reportsGroup.GET("/dashboard", reportsHandler.Dashboard)
			reportsGroup.GET("/companies/:id/stats", reportsHandler.CompanyStats)
			reportsGroup.GET("/companies/:id/worklog.pdf", reportsHandler.ExportMonthly)
		}
	}

	return router
}
