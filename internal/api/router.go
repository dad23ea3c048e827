package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carehub/hospital-system/internal/api/handler"
	"github.com/carehub/hospital-system/internal/api/middleware"
	"github.com/carehub/hospital-system/internal/core/domain"
	"github.com/carehub/hospital-system/internal/core/service"
	"github.com/carehub/hospital-system/internal/infrastructure/config"
	mongodb "github.com/carehub/hospital-system/internal/infrastructure/db/mongo"
	redisdb "github.com/carehub/hospital-system/internal/infrastructure/db/redis"
	"github.com/carehub/hospital-system/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the report dispatcher, which the caller must Start.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hospital"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	hospitalRepo := mongodb.NewHospitalRepository(db)
	facilityRepo := mongodb.NewFacilityRepository(db)
	doctorRepo := mongodb.NewDoctorRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	bedRepo := mongodb.NewBedRepository(db)
	recordRepo := mongodb.NewHealthRecordRepository(db)

	// --- Services ---
	codec := service.NewTokenCodec(
		cfg.Auth.AccessTokenSecret, cfg.Auth.RefreshTokenSecret,
		cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL,
	)
	authService := service.NewAuthService(userRepo, codec, redisdb.NewLoginGuard(rdb), log)
	userService := service.NewUserService(userRepo, log)
	hospitalService := service.NewHospitalService(hospitalRepo, log)
	facilityService := service.NewFacilityService(facilityRepo, log)
	doctorService := service.NewDoctorService(doctorRepo, log)
	patientService := service.NewPatientService(patientRepo, log)
	bedService := service.NewBedService(bedRepo, log)
	recordService := service.NewHealthRecordService(recordRepo, patientRepo, redisdb.NewReportDedup(rdb), log)

	dispatcher := queue.NewDispatcher(cfg.ReportWorkers, recordService, log)

	// --- Handlers ---
	cookies := handler.CookiePolicy{
		Production: cfg.IsProduction(),
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
	}
	authHandler := handler.NewAuthHandler(authService, cookies)
	userHandler := handler.NewUserHandler(userService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	facilityHandler := handler.NewFacilityHandler(facilityService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	patientHandler := handler.NewPatientHandler(patientService)
	bedHandler := handler.NewBedHandler(bedService)
	recordHandler := handler.NewHealthRecordHandler(recordService, dispatcher)

	authed := middleware.Auth(codec)

	// --- Auth routes ---
	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout, authed)
	auth.POST("/change-password", authHandler.ChangePassword, authed)

	// --- Users (administrative surface) ---
	users := e.Group("/v1/users", authed, middleware.RBAC(domain.RoleAdmin, domain.RoleHospital))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Hospitals: reads are open to any authenticated role ---
	hospitals := e.Group("/v1/hospitals", authed)
	hospitals.GET("", hospitalHandler.List)
	hospitals.GET("/:id", hospitalHandler.Get)
	hospitals.POST("", hospitalHandler.Create, middleware.RBAC(domain.RoleAdmin))
	hospitals.PATCH("/:id", hospitalHandler.Update, middleware.RBAC(domain.RoleAdmin))
	hospitals.DELETE("/:id", hospitalHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Facilities ---
	facilities := e.Group("/v1/facilities", authed, middleware.RBAC(domain.RoleAdmin, domain.RoleHospital))
	facilities.GET("", facilityHandler.List)
	facilities.GET("/:id", facilityHandler.Get)
	facilities.POST("", facilityHandler.Create)
	facilities.PATCH("/:id", facilityHandler.Update)
	facilities.DELETE("/:id", facilityHandler.Delete)

	// --- Doctors: patients cannot browse the roster ---
	doctors := e.Group("/v1/doctors", authed)
	doctors.GET("", doctorHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleHospital, domain.RoleDoctor))
	doctors.GET("/:id", doctorHandler.Get)
	doctors.POST("", doctorHandler.Create, middleware.RBAC(domain.RoleHospital))
	doctors.PATCH("/:id", doctorHandler.Update, middleware.RBAC(domain.RoleHospital))
	doctors.DELETE("/:id", doctorHandler.Delete, middleware.RBAC(domain.RoleHospital))

	// --- Patients ---
	patients := e.Group("/v1/patients", authed, middleware.RBAC(domain.RoleAdmin, domain.RoleHospital))
	patients.GET("", patientHandler.List)
	patients.GET("/:id", patientHandler.Get)
	patients.POST("", patientHandler.Create)
	patients.PATCH("/:id", patientHandler.Update)
	patients.DELETE("/:id", patientHandler.Delete)

	// --- Beds ---
	beds := e.Group("/v1/beds", authed)
	beds.GET("", bedHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleHospital, domain.RoleDoctor))
	beds.GET("/:id", bedHandler.Get)
	beds.POST("", bedHandler.Create, middleware.RBAC(domain.RoleHospital))
	beds.PATCH("/:id", bedHandler.Update, middleware.RBAC(domain.RoleHospital))
	beds.DELETE("/:id", bedHandler.Delete, middleware.RBAC(domain.RoleHospital))

	// --- Health records ---
	records := e.Group("/v1/health-records", authed)
	records.POST("", recordHandler.Submit, middleware.RBAC(domain.RoleAdmin, domain.RoleHospital, domain.RoleDoctor))
	records.GET("", recordHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleHospital, domain.RoleDoctor))
	records.GET("/:id", recordHandler.Get, middleware.RBAC(domain.RoleAdmin, domain.RoleHospital, domain.RoleDoctor))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readiness := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", readiness.Readiness)    // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler()) // prometheus scrape endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
