package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	advisorapp "github.com/finsight/backend/internal/application/advisor"
	financeapp "github.com/finsight/backend/internal/application/finance"
	identityapp "github.com/finsight/backend/internal/application/identity"
	infraadvisor "github.com/finsight/backend/internal/infrastructure/advisor"
	"github.com/finsight/backend/internal/infrastructure/auth"
	"github.com/finsight/backend/internal/infrastructure/cache"
	"github.com/finsight/backend/internal/infrastructure/config"
	"github.com/finsight/backend/internal/infrastructure/logger"
	"github.com/finsight/backend/internal/infrastructure/persistence"
	"github.com/finsight/backend/internal/infrastructure/telemetry"
	"github.com/finsight/backend/internal/interfaces/http/handler"
	"github.com/finsight/backend/internal/interfaces/http/middleware"
	"github.com/finsight/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			FinSight API
//	@version		1.0
//	@description	Personal finance tracking API with cached financial recommendations.

//	@contact.name	API Support
//	@contact.url	https://github.com/finsight/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

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
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting FinSight Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
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
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Database query tracing (if enabled)
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DefaultDBTracingConfig(), log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	incomeRepo := persistence.NewGormIncomeRecordRepository(db.DB)
	liabilityRepo := persistence.NewGormLiabilityRepository(db.DB)
	creditCardRepo := persistence.NewGormCreditCardRepository(db.DB)

	// Token blacklist backed by Redis, with an in-process fallback so the
	// API stays usable when Redis is unreachable
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	}

	// Recommendation cache
	cacheOpts := []cache.Option{}
	if cfg.Advisor.CleanupInterval > 0 {
		cacheOpts = append(cacheOpts, cache.WithCleanupInterval(cfg.Advisor.CleanupInterval))
	}
	recCache, err := cache.NewRecommendationCache(cfg.Advisor.CacheTTL, cfg.Advisor.CacheMaxSize, cacheOpts...)
	if err != nil {
		log.Fatal("Failed to initialize recommendation cache", zap.Error(err))
	}
	defer func() {
		if err := recCache.Close(); err != nil {
			log.Error("Error closing recommendation cache", zap.Error(err))
		}
	}()
	log.Info("Recommendation cache initialized",
		zap.Duration("ttl", cfg.Advisor.CacheTTL),
		zap.Int("max_size", cfg.Advisor.CacheMaxSize),
	)

	// Recommendation generator (rules engine or external HTTP service)
	generator := infraadvisor.NewGenerator(cfg.Advisor, log)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, blacklist, log)

	assetService := financeapp.NewAssetService(assetRepo, recCache, log)
	incomeService := financeapp.NewIncomeService(incomeRepo, recCache, log)
	liabilityService := financeapp.NewLiabilityService(liabilityRepo, recCache, log)
	creditCardService := financeapp.NewCreditCardService(creditCardRepo, recCache, log)

	metricsService := advisorapp.NewMetricsService(assetRepo, incomeRepo, liabilityRepo, creditCardRepo, log)
	recommendationService := advisorapp.NewRecommendationService(metricsService, recCache, generator, cfg.Advisor.CacheTTL, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	assetHandler := handler.NewAssetHandler(assetService)
	incomeHandler := handler.NewIncomeHandler(incomeService)
	liabilityHandler := handler.NewLiabilityHandler(liabilityService)
	creditCardHandler := handler.NewCreditCardHandler(creditCardService)
	advisorHandler := handler.NewAdvisorHandler(metricsService, recommendationService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, cfg.App.Version)

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
	// 4. Tracing - Record request spans
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}
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

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain (register/login/refresh are public via JWT skip paths)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.RateLimit(authLimiter))
	}
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)

	// Account profile routes
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.GET("/me", userHandler.Me)
	userRoutes.PUT("/me", userHandler.UpdateProfile)
	userRoutes.PUT("/me/password", userHandler.ChangePassword)
	userRoutes.DELETE("/me", userHandler.DeleteAccount)

	// Financial record routes
	assetRoutes := router.NewDomainGroup("assets", "/assets")
	assetRoutes.POST("", assetHandler.Create)
	assetRoutes.GET("", assetHandler.List)
	assetRoutes.GET("/:id", assetHandler.GetByID)
	assetRoutes.PUT("/:id", assetHandler.Update)
	assetRoutes.DELETE("/:id", assetHandler.Delete)

	incomeRoutes := router.NewDomainGroup("income", "/income")
	incomeRoutes.POST("", incomeHandler.Create)
	incomeRoutes.GET("", incomeHandler.List)
	incomeRoutes.GET("/:id", incomeHandler.GetByID)
	incomeRoutes.PUT("/:id", incomeHandler.Update)
	incomeRoutes.DELETE("/:id", incomeHandler.Delete)

	liabilityRoutes := router.NewDomainGroup("liabilities", "/liabilities")
	liabilityRoutes.POST("", liabilityHandler.Create)
	liabilityRoutes.GET("", liabilityHandler.List)
	liabilityRoutes.GET("/:id", liabilityHandler.GetByID)
	liabilityRoutes.PUT("/:id", liabilityHandler.Update)
	liabilityRoutes.DELETE("/:id", liabilityHandler.Delete)

	creditCardRoutes := router.NewDomainGroup("credit-cards", "/credit-cards")
	creditCardRoutes.POST("", creditCardHandler.Create)
	creditCardRoutes.GET("", creditCardHandler.List)
	creditCardRoutes.GET("/:id", creditCardHandler.GetByID)
	creditCardRoutes.PUT("/:id", creditCardHandler.Update)
	creditCardRoutes.DELETE("/:id", creditCardHandler.Delete)

	// Advisor domain (metrics aggregation and cached recommendations)
	advisorRoutes := router.NewDomainGroup("advisor", "/advisor")
	advisorRoutes.GET("/metrics", advisorHandler.GetMetrics)
	advisorRoutes.POST("/recommendations/:type", advisorHandler.Recommend)

	// Admin cache surface
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.GET("/cache/stats", advisorHandler.CacheStats)
	adminRoutes.DELETE("/cache", advisorHandler.ClearCache)
	adminRoutes.DELETE("/cache/:type", advisorHandler.InvalidateType)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(userRoutes).
		Register(assetRoutes).
		Register(incomeRoutes).
		Register(liabilityRoutes).
		Register(creditCardRoutes).
		Register(advisorRoutes).
		Register(adminRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
