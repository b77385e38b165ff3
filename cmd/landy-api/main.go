package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/landy-api/api/swagger"
	"github.com/noah-isme/landy-api/internal/compliance"
	"github.com/noah-isme/landy-api/internal/handler"
	"github.com/noah-isme/landy-api/internal/middleware"
	"github.com/noah-isme/landy-api/internal/repository"
	"github.com/noah-isme/landy-api/internal/service"
	"github.com/noah-isme/landy-api/pkg/cache"
	"github.com/noah-isme/landy-api/pkg/config"
	"github.com/noah-isme/landy-api/pkg/database"
	"github.com/noah-isme/landy-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/landy-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/landy-api/pkg/middleware/requestid"
)

// @title Landy Compliance API
// @version 1.0.0
// @description Compliance rules engine for UK residential landlords.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	catalogue, err := compliance.LoadCatalogue(cfg.Compliance.GroundCataloguePath)
	if err != nil {
		logr.Fatal("failed to load ground catalogue", zap.Error(err), zap.String("path", cfg.Compliance.GroundCataloguePath))
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	propertyRepo := repository.NewPropertyRepository(db)
	tenancyRepo := repository.NewTenancyRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	communicationRepo := repository.NewCommunicationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Export.CacheTTL, logr, cfg.Export.CacheEnabled)
	authSvc := service.NewAuthService(service.AuthConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer}, logr)
	policy := service.DashboardServiceConfig{StatementDeadline: cfg.Compliance.StatementDeadline}

	propertySvc := service.NewPropertyService(propertyRepo, cacheSvc, validate, logr)
	tenancySvc := service.NewTenancyService(tenancyRepo, propertyRepo, metrics, validate, logr)
	noticeSvc := service.NewNoticeService(noticeRepo, tenancyRepo, propertyRepo, catalogue, metrics, validate, logr)
	maintenanceSvc := service.NewMaintenanceService(maintenanceRepo, propertyRepo, validate, logr)
	communicationSvc := service.NewCommunicationService(communicationRepo, propertyRepo, maintenanceRepo, validate, logr)
	documentSvc := service.NewDocumentService(documentRepo, propertyRepo, validate, logr)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Properties: propertyRepo,
		Metrics:    metrics,
		Logger:     logr,
		Config:     policy,
	})
	reportSvc := service.NewReportService(service.ReportServiceParams{
		Properties: propertyRepo,
		Cache:      cacheSvc,
		Metrics:    metrics,
		Logger:     logr,
		Config:     policy,
		CacheTTL:   cfg.Export.CacheTTL,
	})

	propertyHandler := handler.NewPropertyHandler(propertySvc)
	tenancyHandler := handler.NewTenancyHandler(tenancySvc)
	noticeHandler := handler.NewNoticeHandler(noticeSvc)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceSvc, communicationSvc)
	documentHandler := handler.NewDocumentHandler(documentSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	metricsHandler := handler.NewMetricsHandler(metrics, map[string]handler.ReadinessCheck{
		"postgres": db.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(authSvc))
	{
		api.GET("/properties", propertyHandler.List)
		api.POST("/properties", propertyHandler.Create)
		api.DELETE("/properties/:id", propertyHandler.Delete)
		api.POST("/properties/:id/compliance/:field/toggle", propertyHandler.ToggleCompliance)
		api.PUT("/properties/:id/compliance/:field/na", propertyHandler.SetNotApplicable)
		api.PUT("/properties/:id/safety", propertyHandler.RecordSafetyCheck)

		api.GET("/properties/:id/tenancies", tenancyHandler.List)
		api.POST("/properties/:id/tenancies", tenancyHandler.Create)
		api.PATCH("/tenancies/:id", tenancyHandler.Update)
		api.POST("/tenancies/:id/end", tenancyHandler.End)
		api.GET("/tenancies/:id/rent-increases", tenancyHandler.ListRentIncreases)
		api.POST("/tenancies/:id/rent-increases", tenancyHandler.ProposeRentIncrease)

		api.GET("/grounds", noticeHandler.Grounds)
		api.GET("/tenancies/:id/notices", noticeHandler.List)
		api.POST("/tenancies/:id/notices", noticeHandler.Draft)
		api.POST("/notices/:id/status", noticeHandler.Advance)

		api.GET("/properties/:id/maintenance", maintenanceHandler.List)
		api.POST("/properties/:id/maintenance", maintenanceHandler.Report)
		api.POST("/maintenance/:id/status", maintenanceHandler.UpdateStatus)
		api.GET("/maintenance/:id/awaabs-timeline", maintenanceHandler.AwaabsTimeline)
		api.GET("/properties/:id/communications", maintenanceHandler.ListCommunications)
		api.POST("/properties/:id/communications", maintenanceHandler.AppendCommunication)

		api.GET("/properties/:id/documents", documentHandler.List)
		api.POST("/properties/:id/documents", documentHandler.Create)
		api.DELETE("/documents/:id", documentHandler.Delete)

		api.GET("/dashboard", dashboardHandler.Get)
		api.GET("/reports/compliance", reportHandler.Compliance)
		api.GET("/metrics/snapshot", metricsHandler.Snapshot)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "ground_catalogue", catalogue.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
