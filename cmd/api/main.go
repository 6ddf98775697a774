package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/healthcamp-backend/internal/handlers/http"
	"github.com/rafabene/healthcamp-backend/internal/handlers/middleware"
	"github.com/rafabene/healthcamp-backend/internal/infrastructure/config"
	"github.com/rafabene/healthcamp-backend/internal/infrastructure/i18n"
	"github.com/rafabene/healthcamp-backend/internal/infrastructure/logging"
	"github.com/rafabene/healthcamp-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/healthcamp-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting healthcamp backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Garantir o schema (idempotente, roda a cada start)
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, uow, logger, cfg.Auth.BcryptCost)
	authService, err := services.NewAuthService(userRepo, logger, cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	if err != nil {
		logger.Error("failed to initialize auth service", "error", err)
		log.Fatal(err)
	}
	patientService := services.NewPatientService(patientRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(userService, authService)
	userHandler := httphandlers.NewUserHandler(userService)
	patientHandler := httphandlers.NewPatientHandler(patientService, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Correlação de requisições nos logs
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Middleware de autenticação (rotas de prontuário)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/login", authHandler.Login)
		}

		// Users (listagem administrativa)
		users := v1.Group("/users", authMiddleware.RequireAuth())
		{
			users.GET("", userHandler.ListUsers)
		}

		// Patients (escopados pelo usuário autenticado)
		patients := v1.Group("/patients", authMiddleware.RequireAuth())
		{
			patients.POST("", patientHandler.CreatePatient)
			patients.GET("", patientHandler.ListPatients)
			patients.GET("/search", patientHandler.SearchPatients)
			patients.GET("/reports/today", patientHandler.CountToday)
			patients.GET("/reports/today/watch", patientHandler.WatchToday)
			patients.GET("/:id", patientHandler.GetPatient)
			patients.PUT("/:id", patientHandler.UpdatePatient)
			patients.DELETE("/:id", patientHandler.DeletePatient)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// corsConfig monta a configuração de CORS a partir da lista de origens
// separadas por vírgula ("*" libera qualquer origem)
func corsConfig(allowedOrigins string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	cfg.AllowCredentials = true

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}
