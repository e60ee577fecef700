package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devtrail/bootcamp-api/internal/api/handler"
	"github.com/devtrail/bootcamp-api/internal/api/middleware"
	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
	"github.com/devtrail/bootcamp-api/internal/core/service"
	mongodb "github.com/devtrail/bootcamp-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devtrail/bootcamp-api/internal/infrastructure/db/redis"
	"github.com/devtrail/bootcamp-api/internal/infrastructure/geocoder"
	"github.com/devtrail/bootcamp-api/internal/pkg/config"
)

// Dependencies carries everything the router needs that is created at
// startup. Stats is the already-started recompute worker pool.
type Dependencies struct {
	DB    *mongo.Database
	Redis *redis.Client
	Cfg   *config.Config
	Log   zerolog.Logger
	Stats ports.StatsEnqueuer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bootcamp_api"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	bootcampRepo := mongodb.NewBootcampRepository(deps.DB)
	courseRepo := mongodb.NewCourseRepository(deps.DB)
	reviewRepo := mongodb.NewReviewRepository(deps.DB)
	resetTokens := redisdb.NewResetTokenStore(deps.Redis)
	geo := geocoder.New(deps.Cfg.Geocoder.BaseURL)

	// --- Services ---
	tokenTTL := time.Duration(deps.Cfg.JWT.ExpireDays) * 24 * time.Hour
	authService := service.NewAuthService(userRepo, resetTokens, deps.Cfg.JWT.Secret, tokenTTL, deps.Log)
	bootcampService := service.NewBootcampService(bootcampRepo, courseRepo, reviewRepo, geo, deps.Log)
	courseService := service.NewCourseService(courseRepo, bootcampRepo, deps.Stats, deps.Log)
	reviewService := service.NewReviewService(reviewRepo, bootcampRepo, deps.Stats, deps.Log)
	userService := service.NewUserService(userRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, deps.Cfg.JWT.CookieExpireDays, deps.Cfg.Production())
	bootcampHandler := handler.NewBootcampHandler(bootcampService, deps.Cfg.Upload.MaxBytes, deps.Cfg.Upload.Path)
	courseHandler := handler.NewCourseHandler(courseService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	userHandler := handler.NewUserHandler(userService)

	// --- Route guards ---
	protect := middleware.Protect(deps.Cfg.JWT.Secret, userRepo)
	publisherOrAdmin := middleware.Authorize(domain.RolePublisher, domain.RoleAdmin)
	userOrAdmin := middleware.Authorize(domain.RoleUser, domain.RoleAdmin)
	adminOnly := middleware.Authorize(domain.RoleAdmin)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, protect)
	auth.PUT("/updateinfo", authHandler.UpdateDetails, protect)
	auth.PUT("/updatepassword", authHandler.UpdatePassword, protect)
	auth.POST("/forgotpassword", authHandler.ForgotPassword)
	auth.PUT("/resetpassword/:resettoken", authHandler.ResetPassword)

	// --- Bootcamp routes (with nested courses and reviews) ---
	bootcamps := v1.Group("/bootcamps")
	bootcamps.GET("", bootcampHandler.List)
	bootcamps.POST("", bootcampHandler.Create, protect, publisherOrAdmin)
	bootcamps.GET("/radius/:zipcode/:distance", bootcampHandler.WithinRadius)
	bootcamps.GET("/:id", bootcampHandler.Get)
	bootcamps.PUT("/:id", bootcampHandler.Update, protect, publisherOrAdmin)
	bootcamps.DELETE("/:id", bootcampHandler.Delete, protect, publisherOrAdmin)
	bootcamps.PUT("/:id/photo", bootcampHandler.UploadPhoto, protect, publisherOrAdmin)
	bootcamps.GET("/:id/courses", courseHandler.ListForBootcamp)
	bootcamps.POST("/:id/courses", courseHandler.Create, protect, publisherOrAdmin)
	bootcamps.GET("/:id/reviews", reviewHandler.ListForBootcamp)
	bootcamps.POST("/:id/reviews", reviewHandler.Create, protect, userOrAdmin)

	// --- Course routes ---
	courses := v1.Group("/courses")
	courses.GET("", courseHandler.List)
	courses.GET("/:id", courseHandler.Get)
	courses.PUT("/:id", courseHandler.Update, protect, publisherOrAdmin)
	courses.DELETE("/:id", courseHandler.Delete, protect, publisherOrAdmin)

	// --- Review routes ---
	reviews := v1.Group("/reviews")
	reviews.GET("", reviewHandler.List)
	reviews.GET("/:id", reviewHandler.Get)
	reviews.PUT("/:id", reviewHandler.Update, protect, userOrAdmin)
	reviews.DELETE("/:id", reviewHandler.Delete, protect, userOrAdmin)

	// --- User routes (admin only) ---
	users := v1.Group("/users", protect, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Ops endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
