package router

import (
	"time"

	"github.com/Bezziboi/j-app/internal/config"
	"github.com/Bezziboi/j-app/internal/handler"
	"github.com/Bezziboi/j-app/internal/middleware"
	"github.com/Bezziboi/j-app/internal/repository"
	"github.com/Bezziboi/j-app/internal/service"
	"github.com/Bezziboi/j-app/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine along
// with the report service the export worker needs.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, service.ReportService) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	analyticsSvc := service.NewAnalyticsService(reportRepo, rdb)

	// Export jobs are only enqueued when a recipient is configured.
	var exporter service.ReportExporter
	if cfg.ReportEmailTo != "" {
		exporter = worker.NewDispatcher(rdb)
	}
	reportSvc := service.NewReportService(reportRepo, exporter, analyticsSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	reportsH := handler.NewReportsHandler(reportSvc, cfg.PDFStoragePath)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/reports", reportsH.List)
		v1.POST("/reports", reportsH.Save)
		v1.GET("/reports/:date", reportsH.Get)
		v1.PUT("/reports/:date", reportsH.Update)
		v1.GET("/reports/:date/pdf", reportsH.ExportPDF)
		v1.DELETE("/reports/:date", middleware.RequireAdmin(), reportsH.Delete)

		v1.GET("/analytics/summary", analyticsH.Summary)

		users := v1.Group("/users", middleware.RequireAdmin())
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, reportSvc
}
