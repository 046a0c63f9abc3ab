package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/pavlenko-transit/pickboard/docs" // swagger docs

	"github.com/pavlenko-transit/pickboard/internal/config"
	"github.com/pavlenko-transit/pickboard/internal/platform/auth"
	"github.com/pavlenko-transit/pickboard/internal/platform/email"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/internal/platform/logger"
	"github.com/pavlenko-transit/pickboard/internal/platform/postgres"
	"github.com/pavlenko-transit/pickboard/internal/platform/redis"

	assignmentHandler "github.com/pavlenko-transit/pickboard/modules/assignments/handler"
	assignmentRepo "github.com/pavlenko-transit/pickboard/modules/assignments/repository"
	assignmentService "github.com/pavlenko-transit/pickboard/modules/assignments/service"

	auditHandler "github.com/pavlenko-transit/pickboard/modules/audit/handler"
	auditRepo "github.com/pavlenko-transit/pickboard/modules/audit/repository"

	authHandler "github.com/pavlenko-transit/pickboard/modules/auth/handler"
	authRepo "github.com/pavlenko-transit/pickboard/modules/auth/repository"
	authService "github.com/pavlenko-transit/pickboard/modules/auth/service"

	employeeHandler "github.com/pavlenko-transit/pickboard/modules/employees/handler"
	employeeRepo "github.com/pavlenko-transit/pickboard/modules/employees/repository"
	employeeService "github.com/pavlenko-transit/pickboard/modules/employees/service"

	notificationHandler "github.com/pavlenko-transit/pickboard/modules/notifications/handler"
	notificationService "github.com/pavlenko-transit/pickboard/modules/notifications/service"

	periodHandler "github.com/pavlenko-transit/pickboard/modules/periods/handler"
	periodRepo "github.com/pavlenko-transit/pickboard/modules/periods/repository"
	periodService "github.com/pavlenko-transit/pickboard/modules/periods/service"

	preferenceHandler "github.com/pavlenko-transit/pickboard/modules/preferences/handler"
	preferenceRepo "github.com/pavlenko-transit/pickboard/modules/preferences/repository"
	preferenceService "github.com/pavlenko-transit/pickboard/modules/preferences/service"

	routeHandler "github.com/pavlenko-transit/pickboard/modules/routes/handler"
	routeRepo "github.com/pavlenko-transit/pickboard/modules/routes/repository"
	routeService "github.com/pavlenko-transit/pickboard/modules/routes/service"

	terminalHandler "github.com/pavlenko-transit/pickboard/modules/terminals/handler"
	terminalRepo "github.com/pavlenko-transit/pickboard/modules/terminals/repository"
	terminalService "github.com/pavlenko-transit/pickboard/modules/terminals/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Pickboard API
// @version 1.0
// @description Bi-annual route-selection and seniority-based assignment service for transportation terminals.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@pickboard.example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting Pickboard API server",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
	)

	ctx := context.Background()

	// Initialize PostgreSQL
	pgClient, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgClient.Close()
	logger.Info("Connected to PostgreSQL")

	// Run database migrations (MANDATORY: must run before HTTP server starts)
	migrationsPath := "./migrations"
	if err := postgres.RunMigrations(ctx, cfg.Database, logger, migrationsPath); err != nil {
		logger.Fatal("Failed to run database migrations",
			zap.Error(err),
			zap.String("migrations_path", migrationsPath),
		)
	}

	// Initialize Redis (backs the Preference Store's confirmation-number counter)
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	logger.Info("Connected to Redis")

	// Initialize the Notification Dispatcher's email transport
	emailSender := email.NewResendSender(cfg.Email.APIKey, cfg.Email.FromAddress)

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpPlatform.RequestIDMiddleware())
	router.Use(httpPlatform.LoggerMiddleware(logger))
	router.Use(httpPlatform.CORSMiddleware())

	// Swagger documentation (available in development)
	if cfg.Server.Env != "production" {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("Swagger UI available at /swagger/index.html")
	}

	// Health check endpoint
	router.GET("/health", healthCheckHandler(ctx, pgClient, redisClient))

	// Ping endpoint
	router.GET("/ping", pingHandler)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Auth middleware
	authMiddleware := auth.AuthMiddleware(jwtManager)

	// Initialize repositories (built against the pool for plain reads;
	// transactional service methods construct their own repository
	// instances bound to the enclosing pgx.Tx via postgres.Executor)
	terminalRepository := terminalRepo.NewTerminalRepository(pgClient.Pool)
	employeeRepository := employeeRepo.NewEmployeeRepository(pgClient.Pool)
	accountRepository := employeeRepo.NewAccountRepository(pgClient.Pool)
	routeRepository := routeRepo.NewRouteRepository(pgClient.Pool)
	periodRepository := periodRepo.NewPeriodRepository(pgClient.Pool)
	preferenceRepository := preferenceRepo.NewPreferenceRepository(pgClient.Pool)
	assignmentRepository := assignmentRepo.NewAssignmentRepository(pgClient.Pool)
	auditRepository := auditRepo.NewAuditRepository(pgClient.Pool)
	refreshTokenRepository := authRepo.NewRefreshTokenRepository(pgClient.Pool)
	confirmationIssuer := preferenceRepo.NewRedisConfirmationIssuer(redisClient)

	// Initialize services
	authSvc := authService.NewAuthService(
		accountRepository,
		employeeRepository,
		refreshTokenRepository,
		jwtManager,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	terminalSvc := terminalService.NewTerminalService(terminalRepository)
	employeeSvc := employeeService.NewEmployeeService(employeeRepository)
	routeSvc := routeService.NewRouteService(routeRepository)
	periodSvc := periodService.NewPeriodService(pgClient, periodRepository, logger)
	preferenceSvc := preferenceService.NewPreferenceService(pgClient, preferenceRepository, confirmationIssuer, logger)
	engine := assignmentService.NewEngine(
		pgClient,
		assignmentRepository,
		periodRepository,
		employeeRepository,
		routeRepository,
		preferenceRepository,
		logger,
	)
	dispatcher := notificationService.NewDispatcher(emailSender, auditRepository, cfg.Dispatch.FanOut, logger)
	notificationSvc := notificationService.NewNotificationService(
		dispatcher,
		periodRepository,
		employeeRepository,
		accountRepository,
		routeRepository,
		assignmentRepository,
		logger,
	)

	// Initialize handlers
	authHdl := authHandler.NewAuthHandler(authSvc)
	terminalHdl := terminalHandler.NewTerminalHandler(terminalSvc)
	employeeHdl := employeeHandler.NewEmployeeHandler(employeeSvc)
	routeHdl := routeHandler.NewRouteHandler(routeSvc)
	periodHdl := periodHandler.NewPeriodHandler(periodSvc)
	preferenceHdl := preferenceHandler.NewPreferenceHandler(preferenceSvc)
	assignmentHdl := assignmentHandler.NewAssignmentHandler(engine)
	notificationHdl := notificationHandler.NewNotificationHandler(notificationSvc)
	auditHdl := auditHandler.NewAuditHandler(auditRepository)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		authHdl.RegisterRoutes(v1, authMiddleware)
		terminalHdl.RegisterRoutes(v1, authMiddleware)
		employeeHdl.RegisterRoutes(v1, authMiddleware)
		routeHdl.RegisterRoutes(v1, authMiddleware)
		periodHdl.RegisterRoutes(v1, authMiddleware)
		preferenceHdl.RegisterRoutes(v1, authMiddleware)
		assignmentHdl.RegisterRoutes(v1, authMiddleware)
		notificationHdl.RegisterRoutes(v1, authMiddleware)
		auditHdl.RegisterRoutes(v1, authMiddleware)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// healthCheckHandler godoc
// @Summary Health Check
// @Description Check the health status of the application and its dependencies
// @Tags system
// @Produce json
// @Success 200 {object} http.HealthResponse
// @Router /health [get]
func healthCheckHandler(ctx context.Context, pgClient *postgres.Client, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		services := make(map[string]string)

		if err := pgClient.Health(ctx); err != nil {
			services["postgres"] = "down"
		} else {
			services["postgres"] = "up"
		}

		if err := redisClient.Health(ctx); err != nil {
			services["redis"] = "down"
		} else {
			services["redis"] = "up"
		}

		httpPlatform.RespondWithHealth(c, services)
	}
}

// pingHandler godoc
// @Summary Ping
// @Description Simple ping endpoint to check if the API is responding
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func pingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
