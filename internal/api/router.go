package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	_ "github.com/batoolShene/DentalDiagnose/docs"
	"github.com/batoolShene/DentalDiagnose/internal/api/handler"
	"github.com/batoolShene/DentalDiagnose/internal/api/middleware"
	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/service"
	"github.com/batoolShene/DentalDiagnose/internal/imaging"
	"github.com/batoolShene/DentalDiagnose/internal/infrastructure/db/postgres"
	redisinfra "github.com/batoolShene/DentalDiagnose/internal/infrastructure/db/redis"
	"github.com/batoolShene/DentalDiagnose/internal/infrastructure/storage"
	"github.com/batoolShene/DentalDiagnose/internal/ml"
	"github.com/batoolShene/DentalDiagnose/internal/pkg/config"
)

// Login attempts allowed per client IP.
const (
	loginRateLimit = rate.Limit(1)
	loginRateBurst = 5
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(cfg.Upload.MaxBody))
	e.Use(echoprometheus.NewMiddleware("dental"))

	// --- Dependencies ---
	uploads, err := storage.NewStore(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}

	authRepo := postgres.NewAuthRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	plog := redisinfra.NewLogStore(rdb)

	authService := service.NewAuthService(authRepo, activityRepo, cfg.JWTSecret, time.Hour, log)
	patientService := service.NewPatientService(patientRepo, log)
	reportService := service.NewReportService(reportRepo, log)

	pipeline := imaging.NewPipeline(log)
	classifier := ml.NewClassifier(cfg.Model.Dir, log)
	xrayModel := ml.NewXrayModel(cfg.Model.Dir, log)

	authHandler := handler.NewAuthHandler(authService)
	registerHandler := handler.NewRegisterHandler(authService)
	adminHandler := handler.NewAdminHandler(authService, plog, log)
	processHandler := handler.NewProcessHandler(uploads, pipeline, plog, log)
	detectHandler := handler.NewDetectHandler(uploads, pipeline, xrayModel, plog, log)
	dentalHandler := handler.NewDentalHandler(uploads, classifier, plog, log)
	patientHandler := handler.NewPatientHandler(patientService)
	reportHandler := handler.NewReportHandler(reportService)
	imageHandler := handler.NewImageHandler(uploads, log)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(authService, domain.RoleAdmin)
	clinicalOnly := middleware.RequireRole(authService, domain.RoleAdmin, domain.RoleDoctor)

	// --- Public routes ---
	e.POST("/api/auth/login", authHandler.Login, middleware.RateLimit(loginRateLimit, loginRateBurst))
	e.POST("/api/register", registerHandler.Register)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	apiGroup := e.Group("/api", authMiddleware)

	apiGroup.POST("/auth/update-password", authHandler.UpdatePassword)
	apiGroup.POST("/images/upload", imageHandler.Upload)
	apiGroup.GET("/patients/find", patientHandler.Find)
	apiGroup.GET("/reports/", reportHandler.List)

	process := apiGroup.Group("/process", clinicalOnly)
	process.POST("/enhance", processHandler.Enhance)
	process.POST("/colorize", processHandler.Colorize)

	detect := apiGroup.Group("/detect", clinicalOnly)
	detect.POST("/cavities", detectHandler.Cavities)
	detect.POST("/missing-teeth", detectHandler.MissingTeeth)
	detect.POST("/xray", detectHandler.Xray)

	apiGroup.POST("/dental/analyze", dentalHandler.Analyze, clinicalOnly)

	admin := apiGroup.Group("/admin", adminOnly)
	admin.GET("/logs", adminHandler.ProcessingLogs)
	admin.GET("/users", adminHandler.UsersByStatus)
	admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)
	admin.GET("/admin-data", adminHandler.AdminData)

	return e, nil
}
