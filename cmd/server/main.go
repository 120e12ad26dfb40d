package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/database"
	"github.com/campusconnect/backend/internal/handler"
	"github.com/campusconnect/backend/internal/logger"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/internal/router"
	"github.com/campusconnect/backend/internal/seed"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CampusConnect Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Migrate Schema ────────────────────────────────────────────────
	if cfg.AutoMigrate {
		if err := database.MigrateUp(cfg.MigrationsPath, cfg.DatabaseURL, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	tx := database.NewTransactor(pool, log)
	courseRepo := repository.NewCourseRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	billingRepo := repository.NewBillingRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)
	sessionRepo := repository.NewSessionRepository(rdb)

	// ─── Initialize Services ──────────────────────────────────────────
	authService, err := service.NewAuthService(cfg, sessionRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth")
	}
	studentService := service.NewStudentService(studentRepo)
	catalogService := service.NewCatalogService(tx, courseRepo, log)
	billingService := service.NewBillingService(billingRepo)
	registrationService := service.NewRegistrationService(tx, courseRepo, registrationRepo, log)
	paymentService := service.NewPaymentService(tx, paymentRepo, billingService, log)
	adminService := service.NewAdminService(dashboardRepo, courseRepo, registrationRepo)

	// ─── Seed Catalog ──────────────────────────────────────────────────
	if cfg.SeedCatalog {
		courses := seed.DefaultCourses()
		if err := seed.Validate(courses); err != nil {
			log.Fatal().Err(err).Msg("Invalid default catalog")
		}
		if err := catalogService.Seed(ctx, courses); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed catalog")
		}
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:          handler.NewAuthHandler(authService, studentService, log),
		Catalog:       handler.NewCatalogHandler(catalogService, log),
		StudentPortal: handler.NewStudentPortalHandler(registrationService, catalogService, billingService, log),
		Billing:       handler.NewBillingHandler(billingService, paymentService, catalogService, log),
		Admin:         handler.NewAdminHandler(adminService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, router.Deps{
		Sessions:     authService,
		LoginLimiter: middleware.NewRedisLimiter(rdb, cfg.LoginRateLimit, time.Minute),
		Log:          log,
	}, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
