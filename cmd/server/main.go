package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "betak-backend/internal/api/http"
	"betak-backend/internal/config"
	"betak-backend/internal/jobs"
	"betak-backend/internal/logger"
	"betak-backend/internal/policy"
	"betak-backend/internal/repository/postgres"
	"betak-backend/internal/scheduler"
	"betak-backend/internal/security"
	"betak-backend/internal/service"
	"betak-backend/internal/storage"

	_ "github.com/lib/pq"
	"github.com/rs/cors"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Betak Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		logger.Error("Failed to ensure database schema", "error", err)
		log.Fatalf("Failed to ensure database schema: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Storage
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize file storage", "error", err)
		log.Fatalf("Failed to initialize file storage: %v", err)
	}
	logger.Info("Using local file storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.AdminInbox,
	)

	defaultBounds := policy.Bounds{
		MinDays: cfg.Rental.MinDurationDays,
		MaxDays: cfg.Rental.MaxDurationDays,
	}

	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.PropertyRepository)
	propertySvc := service.NewPropertyService(store.PropertyRepository, store.RentalSettingRepository, fileStorage, defaultBounds)
	amenitySvc := service.NewAmenityService(store.AmenityRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.PropertyRepository,
		store.RentalSettingRepository,
		store.UserRepository,
		emailSvc,
		defaultBounds,
	)
	contactSvc := service.NewContactService(store.ContactRepository, emailSvc)
	paymentSvc := service.NewPaymentService(store.TransactionRepository)

	// Initialize Router
	router := httpapi.NewRouter(cfg, httpapi.Services{
		Auth:     authSvc,
		User:     userSvc,
		Property: propertySvc,
		Amenity:  amenitySvc,
		Rental:   rentalSvc,
		Contact:  contactSvc,
		Payment:  paymentSvc,
	}, tokenManager, fileStorage)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Stripe-Signature"},
		AllowCredentials: true,
	}).Handler(router)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Email: emailSvc}, fileStorage, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), corsHandler); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
