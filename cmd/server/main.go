package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	hrapp "github.com/fiberops/backend/internal/application/hr"
	identityapp "github.com/fiberops/backend/internal/application/identity"
	payrollapp "github.com/fiberops/backend/internal/application/payroll"
	projectapp "github.com/fiberops/backend/internal/application/project"
	"github.com/fiberops/backend/internal/domain/payroll"
	"github.com/fiberops/backend/internal/infrastructure/auth"
	"github.com/fiberops/backend/internal/infrastructure/config"
	"github.com/fiberops/backend/internal/infrastructure/logger"
	"github.com/fiberops/backend/internal/infrastructure/persistence"
	"github.com/fiberops/backend/internal/infrastructure/telemetry"
	"github.com/fiberops/backend/internal/interfaces/http/handler"
	"github.com/fiberops/backend/internal/interfaces/http/middleware"
	"github.com/fiberops/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

//	@title			FiberOps Backend API
//	@version		1.0
//	@description	FTTH back-office platform API with payroll, HR, time tracking, and build project management

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting FiberOps Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize tracing
	ctx := context.Background()
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Initialize token blacklist, falling back to in-memory when Redis is unavailable
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected")
	}

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	orgRepo := persistence.NewGormOrganizationRepository(db.DB)
	memberRepo := persistence.NewGormOrgMemberRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	compensationRepo := persistence.NewGormCompensationRepository(db.DB)
	timeEntryRepo := persistence.NewGormTimeEntryRepository(db.DB)
	payPeriodRepo := persistence.NewGormPayPeriodRepository(db.DB)
	payRunRepo := persistence.NewGormPayRunRepository(db.DB)
	payStubRepo := persistence.NewGormPayStubRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)

	// Build the tax policy from configuration
	taxPolicy, err := payrollapp.PolicyFromConfig(cfg.Payroll)
	if err != nil {
		log.Fatal("Invalid payroll tax configuration", zap.Error(err))
	}
	calculator := payroll.NewCalculator(taxPolicy)

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, orgRepo, memberRepo, jwtService, blacklist, db, log)
	employeeService := hrapp.NewEmployeeService(employeeRepo, log)
	compensationService := hrapp.NewCompensationService(employeeRepo, compensationRepo, db, log)
	timeEntryService := hrapp.NewTimeEntryService(employeeRepo, timeEntryRepo, log)
	payrollService := payrollapp.NewPayrollService(payPeriodRepo, payRunRepo, payStubRepo, employeeRepo, compensationRepo, log)
	calculationService := payrollapp.NewCalculationService(payRunRepo, payPeriodRepo, payStubRepo, employeeRepo, compensationRepo, timeEntryRepo, calculator, db, log)
	projectService := projectapp.NewProjectService(projectRepo, taskRepo, employeeRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	hrHandler := handler.NewHRHandler(employeeService, compensationService, timeEntryService)
	payrollHandler := handler.NewPayrollHandler(payrollService, calculationService)
	projectHandler := handler.NewProjectHandler(projectService)
	healthHandler := handler.NewHealthHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Stricter rate limit for credential endpoints
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRateLimit := middleware.RateLimit(authLimiter)
		engine.Use(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/v1/auth/") {
				authRateLimit(c)
				return
			}
			c.Next()
		})
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}

	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
		log.Info("Tracing enabled", zap.String("endpoint", cfg.Telemetry.CollectorEndpoint))
	}

	// JWT authentication for API routes, with public paths skipped
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Register API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(healthHandler).
		Register(authHandler).
		Register(hrHandler).
		Register(payrollHandler).
		Register(projectHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
