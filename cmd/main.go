package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "casting-agency/docs"
	"casting-agency/internal/auth"
	"casting-agency/internal/config"
	"casting-agency/internal/database"
	"casting-agency/internal/handlers"
	"casting-agency/internal/repository"
	"casting-agency/internal/routes"
	"casting-agency/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Casting Agency API
// @version 1.0
// @description Movies, actors and their casts, guarded by Auth0 permission scopes

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Auth0 access token, prefixed with "Bearer "

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	movieRepo := repository.NewMovieRepository(db)
	actorRepo := repository.NewActorRepository(db)
	movieService := services.NewMovieService(movieRepo, actorRepo, log)
	actorService := services.NewActorService(actorRepo, log)

	h := routes.Handlers{
		Movie:  handlers.NewMovieHandler(movieService, log),
		Actor:  handlers.NewActorHandler(actorService, log),
		Health: handlers.Health(db),
	}

	if cfg.MinIO.Enabled() {
		mediaService, err := services.NewMediaService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mediaService.EnsureBucket(ctx); err != nil {
			log.Warnf("MinIO bucket setup failed, uploads may not work: %v", err)
		}
		cancel()
		h.Upload = handlers.NewUploadHandler(mediaService, log)
	} else {
		log.Info("MINIO_ENDPOINT not set, media uploads disabled")
	}

	keySet := auth.NewKeySet(cfg.Auth.KeySetURL(), auth.KeySetOptions{
		TTL:        cfg.Auth.JWKSTTL,
		MinRefresh: cfg.Auth.JWKSMinRefresh,
		HTTPClient: &http.Client{Timeout: cfg.Auth.JWKSHTTPTimeout},
	}, log)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Auth.JWKSHTTPTimeout)
	if err := keySet.Warm(ctx); err != nil {
		log.Warnf("Could not prefetch JWKS, will retry on first request: %v", err)
	}
	cancel()
	guard := auth.NewGuard(cfg.Auth, keySet, log)

	app := fiber.New(fiber.Config{
		AppName:               "Casting Agency API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          handlers.ErrorHandler(log),
	})

	setupMiddleware(app)

	// Setup API routes
	routes.Setup(app, h, guard)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Casting Agency API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
